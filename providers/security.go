package providers

import (
	"strings"

	"github.com/gobwas/glob"
)

// ISecurityProvider defines host API security provider.
type ISecurityProvider interface {
	IsEnabled() bool
	GetUser(headers map[string][]string) (*AuthenticatedUser, error)
}

// SecVerb describes allowed operation.
type SecVerb string

const (
	// SecVerbGet describes read access to locks.
	SecVerbGet SecVerb = "get"
	// SecVerbCommand describes permission to lock or unlock.
	SecVerbCommand SecVerb = "command"
	// SecVerbAll describes every operation.
	SecVerbAll SecVerb = "all"
)

// SecRole has raw role definition.
type SecRole struct {
	Name  string    `yaml:"name" validate:"required"`
	Users []string  `yaml:"users" validate:"required,min=1"`
	Locks []string  `yaml:"locks"`
	Verbs []SecVerb `yaml:"verbs"`
}

// BakedRule has compiled role rule.
type BakedRule struct {
	Role  string
	Locks []glob.Glob
	Verbs []SecVerb
}

// AuthenticatedUser has user with allowed rules.
type AuthenticatedUser struct {
	Username string
	Rules    []*BakedRule
}

// IsAllowed checks whether user can perform operation on the lock.
func (u *AuthenticatedUser) IsAllowed(verb SecVerb, lockID string) bool {
	for _, r := range u.Rules {
		if !r.hasVerb(verb) {
			continue
		}

		for _, l := range r.Locks {
			if l.Match(strings.ToLower(lockID)) {
				return true
			}
		}
	}

	return false
}

// Checks whether rule allows the verb.
func (r *BakedRule) hasVerb(verb SecVerb) bool {
	for _, v := range r.Verbs {
		if v == verb || v == SecVerbAll {
			return true
		}
	}

	return false
}

// LockGet verifies whether user is allowed to get a lock.
func (u *AuthenticatedUser) LockGet(lockID string) bool {
	return u.IsAllowed(SecVerbGet, lockID)
}

// LockCommand verifies whether user is allowed to lock or unlock.
func (u *AuthenticatedUser) LockCommand(lockID string) bool {
	return u.IsAllowed(SecVerbCommand, lockID)
}
