// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

/*
Package typesglossary renders a Markdown glossary from data-type schemas.

Schemas form a closed set of kinds (literals, string, integer, float, enum,
list, shape) described by the Schema interface. A Provider resolves type
identifiers into schemas; Registry is an in-memory provider and Catalog builds
one from a YAML or JSON type-description document. Nested schemas are never
inlined: list items and shape properties render as in-document links.

Render glossary from explicit registrations:

	registry := typesglossary.NewRegistry()
	minimum, maximum := int64(3), int64(20)
	err := registry.Register("SomeNumber", &typesglossary.IntegerSchema{
		Meta:    typesglossary.Meta{Name: "SomeNumber", Description: "d"},
		Minimum: &minimum,
		Maximum: &maximum,
	})
	if err != nil {
		return err
	}

	generator := typesglossary.NewGenerator(registry)
	if err := generator.RegisterTypes("G", "SomeNumber"); err != nil {
		return err
	}

	md, err := generator.Generate()
	if err != nil {
		return err
	}

	fmt.Print(md)

Render glossary from catalog file:

	catalog, err := typesglossary.LoadCatalogFile("types.yaml")
	if err != nil {
		return err
	}

	generator := typesglossary.NewGenerator(catalog.Registry())
	if err := catalog.RegisterGroups(generator); err != nil {
		return err
	}

	md, err := generator.Generate()
	if err != nil {
		return err
	}

	fmt.Print(md)

Build labels and links:

	fmt.Println(typesglossary.TypeLabel("SomeNumber"))  // Some Number
	fmt.Println(typesglossary.AnchorSlug("SomeNumber")) // some-number
*/
package typesglossary
