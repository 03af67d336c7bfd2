package effects

import (
	"log"
	"sort"
)

// Factory builds an effect instance bound to env.
type Factory func(env Env) Instance

// Registry maps effect keys to factories. It holds no state of its own;
// adding an effect is one entry here plus one generator.
type Registry map[Key]Factory

// DefaultRegistry returns the eight built-in generators.
func DefaultRegistry() Registry {
	return Registry{
		KeyLightning: func(env Env) Instance { return NewLightning(env) },
		KeyFire:      func(env Env) Instance { return NewFire(env) },
		KeyWater:     func(env Env) Instance { return NewWater(env) },
		KeyEarth:     func(env Env) Instance { return NewEarth(env) },
		KeyWind:      func(env Env) Instance { return NewWind(env) },
		KeyPoison:    func(env Env) Instance { return NewPoison(env) },
		KeyJoker:     func(env Env) Instance { return NewJoker(env) },
		KeyFoggy:     func(env Env) Instance { return NewFoggy(env) },
	}
}

// Build constructs the instance for key, or returns nil for "none" and
// unknown keys.
func (r Registry) Build(key Key, env Env) Instance {
	if key == KeyNone || key == "" {
		return nil
	}
	factory, ok := r[key]
	if !ok {
		log.Printf("[Effects] Unknown effect key %q, rendering nothing", key)
		return nil
	}
	return factory(env)
}

// Has reports whether key has a generator.
func (r Registry) Has(key Key) bool {
	_, ok := r[key]
	return ok
}

// Keys returns the registered keys sorted alphabetically.
func (r Registry) Keys() []Key {
	keys := make([]Key, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
