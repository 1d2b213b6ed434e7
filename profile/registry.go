// Package profile holds the device profiles: factories that build a fully
// populated controller for one physical game controller model.
package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Alia5/padwatch/controller"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Factory builds a new controller for one device model. Every call returns
// a fresh controller with no callbacks registered.
type Factory func(opts ...controller.Option) (*controller.Controller, error)

type registration struct {
	name    string
	factory Factory
}

var (
	profileRegistry   = make(map[string]registration)
	profileRegistryMu sync.RWMutex
)

// Register registers a profile factory.
// This should be called from profile package init() functions.
// The name is case-insensitive for lookups but listed as given.
func Register(name string, f Factory) {
	profileRegistryMu.Lock()
	defer profileRegistryMu.Unlock()
	profileRegistry[strings.ToLower(name)] = registration{name: name, factory: f}
}

// Lookup retrieves a registered factory by name. Name lookup is case-insensitive.
func Lookup(name string) (Factory, bool) {
	profileRegistryMu.RLock()
	defer profileRegistryMu.RUnlock()
	reg, ok := profileRegistry[strings.ToLower(name)]
	return reg.factory, ok
}

// Names returns the registered profile names, sorted.
func Names() []string {
	profileRegistryMu.RLock()
	defer profileRegistryMu.RUnlock()
	names := make([]string, 0, len(profileRegistry))
	for _, reg := range profileRegistry {
		names = append(names, reg.name)
	}
	sort.Strings(names)
	return names
}

// New builds a controller from the named profile.
func New(name string, opts ...controller.Option) (*controller.Controller, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProfile, name, strings.Join(Names(), ", "))
	}
	return f(opts...)
}
