package layout

import "sort"

// Factory builds a backend.
type Factory func() Querier

type registration struct {
	priority int
	factory  Factory
}

var registry = map[string]registration{}

// Register adds a backend. Lower priorities are tried first by default.
func Register(name string, priority int, f Factory) {
	registry[name] = registration{priority: priority, factory: f}
}

// Names lists the backends registered on this platform in default order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := registry[names[i]].priority, registry[names[j]].priority
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}

// New builds a registered backend by name.
func New(name string) (Querier, error) {
	r, ok := registry[name]
	if !ok {
		return nil, ErrUnknownBackend{name: name}
	}
	return r.factory(), nil
}
