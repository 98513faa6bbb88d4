// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	schema := &LiteralStringSchema{Meta: Meta{Name: "Name"}}
	mustRegister(t, registry, "Name", schema)

	if !registry.TypeExists("Name") {
		t.Fatal("TypeExists(Name) = false")
	}

	got, err := registry.ResolveSchema("Name")
	if err != nil {
		t.Fatalf("ResolveSchema: %v", err)
	}

	if got != Schema(schema) {
		t.Fatalf("ResolveSchema returned %v, want registered schema", got)
	}

	if _, err := registry.ResolveSchema("Other"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ResolveSchema(Other) error = %v, want %v", err, ErrUnknownType)
	}
}

func TestRegistryRejectsInvalidRegistration(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register(" ", &LiteralStringSchema{}); !errors.Is(err, ErrInvalidRegistration) {
		t.Fatalf("Register(empty id) error = %v, want %v", err, ErrInvalidRegistration)
	}

	if err := registry.Register("Nil", nil); !errors.Is(err, ErrInvalidRegistration) {
		t.Fatalf("Register(nil schema) error = %v, want %v", err, ErrInvalidRegistration)
	}

	if err := registry.Register("TypedNil", (*ShapeSchema)(nil)); !errors.Is(err, ErrInvalidRegistration) {
		t.Fatalf("Register(typed nil schema) error = %v, want %v", err, ErrInvalidRegistration)
	}

	if ids := registry.IDs(); len(ids) != 0 {
		t.Fatalf("IDs = %v, want none", ids)
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, id := range []string{"Zulu", "Alpha", "Mike"} {
		mustRegister(t, registry, id, &LiteralIntegerSchema{Meta: Meta{Name: id}})
	}

	if diff := cmp.Diff([]string{"Alpha", "Mike", "Zulu"}, registry.IDs()); diff != "" {
		t.Fatalf("IDs mismatch (-want +got):\n%s", diff)
	}
}
