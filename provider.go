// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"fmt"
	"sort"
	"strings"
)

// Provider resolves type identifiers into schema trees.
type Provider interface {
	// ResolveSchema returns schema for identifier accepted by TypeExists.
	ResolveSchema(id string) (Schema, error)
	// TypeExists reports whether identifier has resolvable schema.
	TypeExists(id string) bool
}

// Registry is in-memory Provider filled by explicit registration.
type Registry struct {
	schemas map[string]Schema
}

// NewRegistry returns empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register binds schema to identifier, replacing previous binding.
func (registry *Registry) Register(id string, schema Schema) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty type identifier", ErrInvalidRegistration)
	}

	if isNilSchema(schema) {
		return fmt.Errorf("%w: nil schema for %q", ErrInvalidRegistration, id)
	}

	registry.schemas[id] = schema
	return nil
}

// ResolveSchema implements Provider.
func (registry *Registry) ResolveSchema(id string) (Schema, error) {
	schema, ok := registry.schemas[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, id)
	}

	return schema, nil
}

// TypeExists implements Provider.
func (registry *Registry) TypeExists(id string) bool {
	_, ok := registry.schemas[id]
	return ok
}

// IDs returns registered identifiers sorted.
func (registry *Registry) IDs() []string {
	out := make([]string, 0, len(registry.schemas))
	for id := range registry.schemas {
		out = append(out, id)
	}

	sort.Strings(out)
	return out
}
