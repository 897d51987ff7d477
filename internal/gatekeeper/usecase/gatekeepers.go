package usecase

import (
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
)

type gatekeepers struct {
	registry *domain.Registry
	byName   map[string]GatekeeperUseCase
}

// NewGatekeepers builds one GatekeeperUseCase per catalog in registry using build.
// build is where callers add decorators such as metrics.
func NewGatekeepers(registry *domain.Registry, build func(*domain.Catalog) GatekeeperUseCase) Gatekeepers {
	g := &gatekeepers{
		registry: registry,
		byName:   make(map[string]GatekeeperUseCase),
	}
	for _, name := range registry.Names() {
		catalog, _ := registry.Get(name)
		g.byName[name] = build(catalog)
	}
	return g
}

func (g *gatekeepers) Get(catalog string) (GatekeeperUseCase, error) {
	if _, err := g.registry.Get(catalog); err != nil {
		return nil, err
	}
	return g.byName[catalog], nil
}

func (g *gatekeepers) Names() []string {
	return g.registry.Names()
}
