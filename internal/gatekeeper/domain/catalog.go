package domain

import (
	"slices"
	"strings"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// Catalog is a named, immutable pair of operation sets: reads that are allowed and
// writes that are blocked. Any name absent from both sets is unknown and denied.
//
// A Catalog is never modified after construction, so it is safe for concurrent use.
type Catalog struct {
	name  string
	read  map[string]struct{}
	write map[string]struct{}
}

// NewCatalog builds a catalog from the given read and write operation names.
// Returns ErrInvalidCatalog when either set is empty, a name is blank, or a name
// appears in both sets.
func NewCatalog(name string, read, write []string) (*Catalog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Wrap(ErrInvalidCatalog, "catalog name is blank")
	}
	if len(read) == 0 {
		return nil, apperrors.Wrapf(ErrInvalidCatalog, "catalog %s has no read operations", name)
	}
	if len(write) == 0 {
		return nil, apperrors.Wrapf(ErrInvalidCatalog, "catalog %s has no write operations", name)
	}

	c := &Catalog{
		name:  name,
		read:  make(map[string]struct{}, len(read)),
		write: make(map[string]struct{}, len(write)),
	}

	for _, op := range read {
		if strings.TrimSpace(op) == "" {
			return nil, apperrors.Wrapf(ErrInvalidCatalog, "catalog %s has a blank read operation", name)
		}
		c.read[op] = struct{}{}
	}

	for _, op := range write {
		if strings.TrimSpace(op) == "" {
			return nil, apperrors.Wrapf(ErrInvalidCatalog, "catalog %s has a blank write operation", name)
		}
		if _, ok := c.read[op]; ok {
			return nil, apperrors.Wrapf(ErrInvalidCatalog, "catalog %s lists %q as both read and write", name, op)
		}
		c.write[op] = struct{}{}
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Used for built-in catalogs.
func MustCatalog(name string, read, write []string) *Catalog {
	c, err := NewCatalog(name, read, write)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// IsRead reports whether the operation is in the read set.
func (c *Catalog) IsRead(operation string) bool {
	_, ok := c.read[operation]
	return ok
}

// IsWrite reports whether the operation is in the write set.
func (c *Catalog) IsWrite(operation string) bool {
	_, ok := c.write[operation]
	return ok
}

// Classify returns the kind of the operation.
func (c *Catalog) Classify(operation string) Kind {
	switch {
	case c.IsRead(operation):
		return KindRead
	case c.IsWrite(operation):
		return KindWrite
	default:
		return KindUnknown
	}
}

// Validate returns nil for read operations and a *ReadOnlyViolation otherwise.
func (c *Catalog) Validate(operation string) error {
	switch c.Classify(operation) {
	case KindRead:
		return nil
	case KindWrite:
		return NewReadOnlyViolation(operation, ReasonWriteOperation)
	default:
		return NewReadOnlyViolation(operation, ReasonUnknownOperation)
	}
}

// ReadOperations returns a sorted copy of the read set.
func (c *Catalog) ReadOperations() []string {
	return sortedKeys(c.read)
}

// WriteOperations returns a sorted copy of the write set.
func (c *Catalog) WriteOperations() []string {
	return sortedKeys(c.write)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
