package worker

import (
	"strings"

	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/gobwas/glob"
)

// Selects served locks by id or name.
type lockFilter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// Compiles include and exclude globs.
func newLockFilter(include []string, exclude []string) (*lockFilter, error) {
	f := &lockFilter{}
	var err error

	if f.include, err = compileGlobs(include); err != nil {
		return nil, err
	}

	if f.exclude, err = compileGlobs(exclude); err != nil {
		return nil, err
	}

	return f, nil
}

// Match checks whether lock should be served.
// Empty include list allows all locks.
func (f *lockFilter) Match(l *device.Lock) bool {
	id := strings.ToLower(l.ID)
	name := strings.ToLower(l.Description)

	if matchAny(f.exclude, id, name) {
		return false
	}

	return 0 == len(f.include) || matchAny(f.include, id, name)
}

// Checks whether any glob matches any value.
func matchAny(globs []glob.Glob, values ...string) bool {
	for _, g := range globs {
		for _, v := range values {
			if g.Match(v) {
				return true
			}
		}
	}

	return false
}

// Compiles lower-cased globs.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, v := range patterns {
		g, err := glob.Compile(strings.ToLower(v))
		if err != nil {
			return nil, &ErrWrongFilter{Pattern: v}
		}

		globs = append(globs, g)
	}

	return globs, nil
}
