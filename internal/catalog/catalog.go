package catalog

import (
	"fmt"
	"strings"
)

// Service describes one optional service the setup workflow can stand up.
type Service struct {
	// ID is the service identifier used on the command line and in the
	// deployment backend's project.
	ID string
	// Description is the human-readable summary shown during selection.
	Description string
}

// Catalog is an ordered registry of installable services. It is fixed at
// startup and never mutated; insertion order is the presentation order.
type Catalog []Service

// Default returns the built-in service catalog.
func Default() Catalog {
	return Catalog{
		{ID: "traefik", Description: "Reverse proxy with automatic SSL certificates"},
		{ID: "qdrant", Description: "Vector database for AI/ML workflows"},
		{ID: "nginx", Description: "Web server for static files and additional routing"},
		{ID: "postgres", Description: "PostgreSQL database for n8n data persistence"},
		{ID: "monitoring", Description: "Portainer for container management"},
	}
}

// Get returns the service with the given id, if present.
func (c Catalog) Get(id string) (Service, bool) {
	for _, svc := range c {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// IDs returns the service identifiers in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, svc := range c {
		ids = append(ids, svc.ID)
	}
	return ids
}

// Selection is the set of chosen service ids for one workflow run.
// Order is not significant; an empty selection is valid.
type Selection []string

// Contains reports whether id is part of the selection.
func (s Selection) Contains(id string) bool {
	for _, member := range s {
		if member == id {
			return true
		}
	}
	return false
}

// Normalize collapses duplicate ids, keeping the first occurrence.
func (s Selection) Normalize() Selection {
	seen := make(map[string]bool, len(s))
	out := make(Selection, 0, len(s))
	for _, id := range s {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// UnknownServiceError indicates a supplied service id that is not part of
// the catalog. It is a configuration error: the workflow aborts before any
// confirmation or step execution.
type UnknownServiceError struct {
	// ID is the offending service identifier.
	ID string
	// Known lists the valid identifiers, in catalog order.
	Known []string
}

// Error returns a user-friendly message listing the valid service ids.
func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service %q (available: %s)", e.ID, strings.Join(e.Known, ", "))
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UnknownServiceError) Is(target error) bool {
	_, ok := target.(*UnknownServiceError)
	return ok
}

// Validate checks that every member of the selection is a catalog id.
// It returns an *UnknownServiceError for the first id that is not.
func (c Catalog) Validate(sel Selection) error {
	for _, id := range sel {
		if _, ok := c.Get(id); !ok {
			return &UnknownServiceError{ID: id, Known: c.IDs()}
		}
	}
	return nil
}
