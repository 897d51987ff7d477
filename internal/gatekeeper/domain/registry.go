package domain

import (
	"slices"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// Registry maps catalog names to catalogs.
type Registry struct {
	catalogs map[string]*Catalog
}

// NewRegistry creates a registry holding the given catalogs. Later catalogs with
// the same name replace earlier ones.
func NewRegistry(catalogs ...*Catalog) *Registry {
	r := &Registry{catalogs: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		if c != nil {
			r.catalogs[c.Name()] = c
		}
	}
	return r
}

// DefaultRegistry returns a registry with the built-in monday and slack catalogs.
func DefaultRegistry() *Registry {
	return NewRegistry(MondayCatalog, SlackCatalog)
}

// Get returns the catalog registered under name or ErrCatalogNotFound.
func (r *Registry) Get(name string) (*Catalog, error) {
	c, ok := r.catalogs[name]
	if !ok {
		return nil, apperrors.Wrapf(ErrCatalogNotFound, "catalog %q", name)
	}
	return c, nil
}

// Names returns the registered catalog names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.catalogs))
	for name := range r.catalogs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
