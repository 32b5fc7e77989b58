package config

import "os"

// Provider looks up named settings. The boolean reports whether the name is set
// at all, so an empty value can be told apart from a missing one.
type Provider interface {
	Lookup(name string) (string, bool)
}

type osProvider struct{}

func (osProvider) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OSProvider returns a Provider backed by the process environment.
func OSProvider() Provider {
	return osProvider{}
}

// MapProvider serves settings from a map. Handy in tests.
type MapProvider map[string]string

// Lookup reports the value stored under name and whether it is present.
func (m MapProvider) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func lookupOr(p Provider, name, defaultValue string) string {
	if v, ok := p.Lookup(name); ok {
		return v
	}
	return defaultValue
}
