// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"fmt"
	"slices"
	"strings"
)

// Generator assembles glossary document from grouped type registrations.
// Registration is not safe for concurrent use.
type Generator struct {
	provider    Provider
	groupOrder  []string
	typesByName map[string][]string
}

// NewGenerator returns generator resolving schemas through provider.
func NewGenerator(provider Provider) *Generator {
	return &Generator{
		provider:    provider,
		typesByName: make(map[string][]string),
	}
}

// RegisterTypes appends type identifiers to group, creating group on first
// use. Duplicates are kept. When any identifier is unknown nothing is registered.
func (generator *Generator) RegisterTypes(group string, ids ...string) error {
	for _, id := range ids {
		if !generator.provider.TypeExists(id) {
			return fmt.Errorf("%w %q in group %q", ErrUnknownType, id, group)
		}
	}

	if _, ok := generator.typesByName[group]; !ok {
		generator.groupOrder = append(generator.groupOrder, group)
	}

	generator.typesByName[group] = append(generator.typesByName[group], ids...)
	return nil
}

// Groups returns registered group names in registration order.
func (generator *Generator) Groups() []string {
	return slices.Clone(generator.groupOrder)
}

// Generate renders all registered groups. Output is all-or-nothing: any
// resolve or render failure returns empty document.
func (generator *Generator) Generate() (string, error) {
	var out strings.Builder
	for _, group := range generator.groupOrder {
		out.WriteString("# " + group + "\n\n")

		for _, id := range generator.typesByName[group] {
			section, err := generator.typeSection(id)
			if err != nil {
				return "", fmt.Errorf("group %q: %w", group, err)
			}

			out.WriteString(section)
		}
	}

	return out.String(), nil
}

// typeSection renders one top-level type section.
func (generator *Generator) typeSection(id string) (string, error) {
	schema, err := generator.provider.ResolveSchema(id)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", id, err)
	}

	if isNilSchema(schema) {
		return "", fmt.Errorf("resolve %q: %w", id, ErrUnknownType)
	}

	rendered, err := RenderSchema(schema)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", id, err)
	}

	var out strings.Builder
	out.WriteString("## " + TypeLabel(schema.SchemaName()) + "\n\n")
	if description := schema.SchemaDescription(); description != "" {
		out.WriteString("_" + description + "_\n\n")
	}

	out.WriteString("### Schema\n\n")
	out.WriteString(rendered)
	return out.String(), nil
}
