package service

// Registry holds the registered services keyed by ID. It is built once at
// startup and treated as read-only afterwards.
type Registry struct {
	services map[ID]Service
	order    []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[ID]Service)}
}

// Register adds svc under its metadata ID. Registering the same ID twice
// replaces the earlier service but keeps its registration position.
func (r *Registry) Register(svc Service) {
	id := svc.Metadata().ID
	if _, exists := r.services[id]; !exists {
		r.order = append(r.order, id)
	}
	r.services[id] = svc
}

// Get returns the service registered under id.
func (r *Registry) Get(id ID) (Service, bool) {
	svc, ok := r.services[id]
	return svc, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.services[id]
	return ok
}

// ByCommand resolves a typed command alias to its service. Registries are
// small and static, so a linear scan over registration order is fine; the
// first match wins.
func (r *Registry) ByCommand(command string) (ID, Service, bool) {
	for _, id := range r.order {
		svc := r.services[id]
		if svc.Metadata().Command == command {
			return id, svc, true
		}
	}
	return "", nil, false
}

// Metadata returns the metadata of every registered service in registration
// order, for help and listing surfaces.
func (r *Registry) Metadata() []Metadata {
	out := make([]Metadata, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.services[id].Metadata())
	}
	return out
}

// IDs returns the registered service IDs in registration order.
func (r *Registry) IDs() []ID {
	return append([]ID(nil), r.order...)
}
