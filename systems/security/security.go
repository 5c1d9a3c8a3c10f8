// Package security contains host API authentication and authorization.
package security

import (
	"strings"
	"sync"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/gobwas/glob"
	"github.com/patrickmn/go-cache"
)

// Implements security provider.
type provider struct {
	sync.Mutex

	userStorage *basicAuthProvider
	logger      common.ILoggerProvider
	roles       []*bakedRole
	cache       *cache.Cache
}

// ConstructSecurityProvider has all data required for a new security provider.
type ConstructSecurityProvider struct {
	Logger common.ILoggerProvider
	Users  map[string]string
	Roles  []*providers.SecRole
	// UsersFile is htpasswd file, defaults to configs/_users.
	UsersFile string
}

// Helper type for pre-baked role.
type bakedRole struct {
	Name  string
	Rule  *providers.BakedRule
	Users []glob.Glob
}

// NewSecurityProvider constructs new security provider.
// Security is disabled if no users are known.
func NewSecurityProvider(ctor *ConstructSecurityProvider) providers.ISecurityProvider {
	prov := &provider{
		userStorage: newBasicAuthProvider(ctor.Logger, ctor.Users, ctor.UsersFile),
		logger:      ctor.Logger,
		roles:       make([]*bakedRole, 0),
		cache:       cache.New(5*time.Minute, 10*time.Minute),
	}

	prov.processRoles(ctor.Roles)
	if !prov.IsEnabled() {
		prov.logger.Warn("No users are configured, host API is not protected")
	}

	return prov
}

// IsEnabled checks whether authentication is required.
func (p *provider) IsEnabled() bool {
	return p.userStorage.hasUsers()
}

// GetUser returns found user with allowed rules.
// Without configured roles every user has full access.
func (p *provider) GetUser(headers map[string][]string) (*providers.AuthenticatedUser, error) {
	p.Lock()
	defer p.Unlock()

	usr, err := p.userStorage.Authorize(headers)
	if err != nil {
		return nil, err
	}

	authData, ok := p.cache.Get(usr)
	if ok {
		return authData.(*providers.AuthenticatedUser), nil
	}

	authUser := &providers.AuthenticatedUser{
		Username: usr,
		Rules:    make([]*providers.BakedRule, 0),
	}

	if 0 == len(p.roles) {
		authUser.Rules = append(authUser.Rules, &providers.BakedRule{
			Role:  "default",
			Locks: []glob.Glob{glob.MustCompile("*")},
			Verbs: []providers.SecVerb{providers.SecVerbAll},
		})
	}

	for _, v := range p.roles {
		for _, u := range v.Users {
			if u.Match(strings.ToLower(usr)) {
				authUser.Rules = append(authUser.Rules, v.Rule)
				break
			}
		}
	}

	p.cache.Set(usr, authUser, cache.DefaultExpiration)

	return authUser, nil
}

// Processes configured roles and pre-compiles globs.
func (p *provider) processRoles(roles []*providers.SecRole) {
	for _, v := range roles {
		if nil == v {
			continue
		}

		role := &bakedRole{
			Name:  v.Name,
			Users: p.compile(v.Users, v.Name),
			Rule: &providers.BakedRule{
				Role:  v.Name,
				Verbs: v.Verbs,
			},
		}

		if 0 == len(role.Users) {
			p.logger.Warn("Skipping role since users are empty", common.LogRoleNameToken, v.Name)
			continue
		}

		locks := v.Locks
		if 0 == len(locks) {
			locks = []string{"*"}
		}

		role.Rule.Locks = p.compile(locks, v.Name)
		if 0 == len(role.Rule.Locks) || 0 == len(role.Rule.Verbs) {
			p.logger.Warn("Skipping role since rules are empty", common.LogRoleNameToken, v.Name)
			continue
		}

		p.roles = append(p.roles, role)
	}
}

// Compiles list of globs, skipping incorrect ones.
func (p *provider) compile(patterns []string, roleName string) []glob.Glob {
	globs := make([]glob.Glob, 0)
	for _, o := range patterns {
		reg, err := glob.Compile(strings.ToLower(o))
		if err != nil {
			p.logger.Warn("Failed to compile role's glob", "glob", o, common.LogRoleNameToken, roleName)
			continue
		}

		globs = append(globs, reg)
	}

	return globs
}
