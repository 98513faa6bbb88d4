// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Built-in primitive type references usable without catalog definition.
const (
	builtinBoolean = "boolean"
	builtinInt     = "int"
	builtinString  = "string"
)

// CatalogGroup is one named, ordered glossary section declared in catalog.
type CatalogGroup struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`
}

// Catalog is decoded type-description document: schemas plus optional groups.
type Catalog struct {
	registry *Registry
	groups   []CatalogGroup
	order    []string
}

// catalogDocument is raw catalog YAML/JSON layout.
type catalogDocument struct {
	Groups []CatalogGroup `yaml:"groups"`
	Types  catalogTypes   `yaml:"types"`
}

// catalogTypes keeps type definitions in declaration order.
type catalogTypes []catalogTypeEntry

type catalogTypeEntry struct {
	ID         string
	Definition catalogType
	// Fields lists keys written in definition mapping, in document order.
	Fields []string
}

// catalogType is one raw type definition.
type catalogType struct {
	Kind        string            `yaml:"kind"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Minimum     yaml.Node         `yaml:"minimum"`
	Maximum     yaml.Node         `yaml:"maximum"`
	MinLength   *int              `yaml:"minLength"`
	MaxLength   *int              `yaml:"maxLength"`
	Pattern     string            `yaml:"pattern"`
	Format      string            `yaml:"format"`
	BackingType string            `yaml:"backingType"`
	Cases       []catalogEnumCase `yaml:"cases"`
	Items       string            `yaml:"items"`
	MinCount    *int              `yaml:"minCount"`
	MaxCount    *int              `yaml:"maxCount"`
	Properties  catalogProperties `yaml:"properties"`
}

// Allowed mapping keys of nested catalog nodes. Decoder KnownFields does not
// reach nodes decoded from custom unmarshalers.
var (
	catalogTypeKeys = []string{
		"kind", "name", "description", "minimum", "maximum", "minLength", "maxLength",
		"pattern", "format", "backingType", "cases", "items", "minCount", "maxCount", "properties",
	}
	catalogPropertyKeys = []string{"type", "optional", "description"}

	// catalogKindKeys lists type definition keys allowed per kind on top of
	// kind, name and description.
	catalogKindKeys = map[Kind][]string{
		KindLiteralBoolean: nil,
		KindLiteralString:  nil,
		KindLiteralInteger: nil,
		KindString:         {"minLength", "maxLength", "pattern", "format"},
		KindInteger:        {"minimum", "maximum"},
		KindFloat:          {"minimum", "maximum"},
		KindEnum:           {"backingType", "cases"},
		KindList:           {"items", "minCount", "maxCount"},
		KindShape:          {"properties"},
	}
	catalogEnumCaseKeys = []string{"name", "description"}
)

// catalogEnumCase is enum case written either as scalar name or name/description mapping.
type catalogEnumCase struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// catalogProperties keeps shape properties in declaration order.
type catalogProperties []catalogProperty

// catalogProperty is shape property written either as scalar type reference or mapping.
type catalogProperty struct {
	Name        string
	Type        string
	Optional    bool
	Description string
}

// LoadCatalogFile reads catalog from YAML or JSON file.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadCatalog, err)
	}

	return LoadCatalog(data)
}

// LoadCatalog decodes catalog YAML (or JSON) and builds schema registry.
// Type references are resolved after all definitions are known, so
// recursive shapes are allowed.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecodeCatalog)
		}

		return nil, fmt.Errorf("%w: %w", ErrDecodeCatalog, err)
	}

	builder := catalogBuilder{
		schemas: make(map[string]Schema, len(doc.Types)),
	}

	if err := builder.declare(doc.Types); err != nil {
		return nil, err
	}

	if err := builder.resolve(doc.Types); err != nil {
		return nil, err
	}

	registry := NewRegistry()
	order := make([]string, 0, len(doc.Types))
	for _, entry := range doc.Types {
		if err := registry.Register(entry.ID, builder.schemas[entry.ID]); err != nil {
			return nil, err
		}

		order = append(order, entry.ID)
	}

	groups := make([]CatalogGroup, 0, len(doc.Groups))
	for _, group := range doc.Groups {
		group.Name = strings.TrimSpace(group.Name)
		if group.Name == "" {
			return nil, fmt.Errorf("%w: group without name", ErrDecodeCatalog)
		}

		groups = append(groups, group)
	}

	return &Catalog{registry: registry, groups: groups, order: order}, nil
}

// Registry returns schema provider built from catalog.
func (catalog *Catalog) Registry() *Registry {
	return catalog.registry
}

// Groups returns declared groups in document order.
func (catalog *Catalog) Groups() []CatalogGroup {
	return slices.Clone(catalog.groups)
}

// TypeIDs returns type identifiers in declaration order.
func (catalog *Catalog) TypeIDs() []string {
	return slices.Clone(catalog.order)
}

// RegisterGroups registers every declared group in generator.
func (catalog *Catalog) RegisterGroups(generator *Generator) error {
	for _, group := range catalog.groups {
		if err := generator.RegisterTypes(group.Name, group.Types...); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalYAML decodes types mapping preserving key order.
func (types *catalogTypes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: types must be a mapping", node.Line)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	out := make(catalogTypes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		id := strings.TrimSpace(keyNode.Value)
		if id == "" {
			return fmt.Errorf("line %d: empty type identifier", keyNode.Line)
		}

		if _, ok := seen[id]; ok {
			return fmt.Errorf("line %d: duplicate type %q", keyNode.Line, id)
		}

		seen[id] = struct{}{}

		if err := checkKnownKeys(valueNode, catalogTypeKeys); err != nil {
			return fmt.Errorf("type %q: %w", id, err)
		}

		var definition catalogType
		if err := valueNode.Decode(&definition); err != nil {
			return fmt.Errorf("type %q: %w", id, err)
		}

		out = append(out, catalogTypeEntry{ID: id, Definition: definition, Fields: mappingKeys(valueNode)})
	}

	*types = out
	return nil
}

// UnmarshalYAML decodes properties mapping preserving key order.
func (properties *catalogProperties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	out := make(catalogProperties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		name := strings.TrimSpace(keyNode.Value)
		if name == "" {
			return fmt.Errorf("line %d: empty property name", keyNode.Line)
		}

		if _, ok := seen[name]; ok {
			return fmt.Errorf("line %d: duplicate property %q", keyNode.Line, name)
		}

		seen[name] = struct{}{}

		property := catalogProperty{Name: name}
		switch valueNode.Kind {
		case yaml.ScalarNode:
			property.Type = valueNode.Value
		case yaml.MappingNode:
			if err := checkKnownKeys(valueNode, catalogPropertyKeys); err != nil {
				return fmt.Errorf("property %q: %w", name, err)
			}

			var raw struct {
				Type        string `yaml:"type"`
				Optional    bool   `yaml:"optional"`
				Description string `yaml:"description"`
			}

			if err := valueNode.Decode(&raw); err != nil {
				return fmt.Errorf("property %q: %w", name, err)
			}

			property.Type = raw.Type
			property.Optional = raw.Optional
			property.Description = raw.Description
		default:
			return fmt.Errorf("line %d: property %q must be a type name or mapping", valueNode.Line, name)
		}

		out = append(out, property)
	}

	*properties = out
	return nil
}

// UnmarshalYAML accepts enum case as scalar name or mapping.
func (enumCase *catalogEnumCase) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		enumCase.Name = node.Value
		return nil
	}

	if err := checkKnownKeys(node, catalogEnumCaseKeys); err != nil {
		return fmt.Errorf("enum case: %w", err)
	}

	type plain catalogEnumCase
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*enumCase = catalogEnumCase(raw)
	return nil
}

// checkKnownKeys rejects mapping keys outside allowed set. Non-mapping nodes
// are left to the decoder.
func checkKnownKeys(node *yaml.Node, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: field %s not found", key.Line, key.Value)
		}
	}

	return nil
}

// mappingKeys returns keys of mapping node in document order.
func mappingKeys(node *yaml.Node) []string {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}

	return keys
}

// catalogBuilder turns raw definitions into linked schema values.
type catalogBuilder struct {
	schemas map[string]Schema
}

// declare allocates schema values for every definition without resolving references.
func (builder *catalogBuilder) declare(types catalogTypes) error {
	for _, entry := range types {
		schema, err := declareSchema(entry)
		if err != nil {
			return err
		}

		builder.schemas[entry.ID] = schema
	}

	return nil
}

// resolve fills list items and shape properties with declared or built-in schemas.
func (builder *catalogBuilder) resolve(types catalogTypes) error {
	for _, entry := range types {
		switch schema := builder.schemas[entry.ID].(type) {
		case *ListSchema:
			item, err := builder.reference(entry.Definition.Items)
			if err != nil {
				return fmt.Errorf("%w %q: items: %w", ErrInvalidCatalogType, entry.ID, err)
			}

			schema.Item = item
		case *ShapeSchema:
			schema.Properties = make([]Property, 0, len(entry.Definition.Properties))
			for _, raw := range entry.Definition.Properties {
				target, err := builder.reference(raw.Type)
				if err != nil {
					return fmt.Errorf("%w %q: property %q: %w", ErrInvalidCatalogType, entry.ID, raw.Name, err)
				}

				if raw.Optional {
					target = Optional(target)
				}

				schema.Properties = append(schema.Properties, Property{
					Name:        raw.Name,
					Schema:      target,
					Description: sanitizeText(raw.Description),
				})
			}
		}
	}

	return nil
}

// reference resolves type name to catalog schema or built-in primitive.
func (builder *catalogBuilder) reference(name string) (Schema, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("missing type reference")
	}

	if schema, ok := builder.schemas[name]; ok {
		return schema, nil
	}

	switch name {
	case builtinBoolean:
		return &LiteralBooleanSchema{Meta: Meta{Name: builtinBoolean}}, nil
	case builtinInt:
		return &LiteralIntegerSchema{Meta: Meta{Name: builtinInt}}, nil
	case builtinString:
		return &LiteralStringSchema{Meta: Meta{Name: builtinString}}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
	}
}

// declareSchema builds schema value of definition kind with scalar attributes set.
func declareSchema(entry catalogTypeEntry) (Schema, error) {
	id, definition := entry.ID, entry.Definition
	name := strings.TrimSpace(definition.Name)
	if name == "" {
		name = id
	}

	meta := Meta{Name: name, Description: sanitizeText(definition.Description)}
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidCatalogType, id, fmt.Sprintf(format, args...))
	}

	kindName := normalizeKindName(definition.Kind)
	if kind, ok := catalogKindByName(kindName); ok {
		if field, ok := foreignKindField(kind, entry.Fields); ok {
			return nil, invalid("field %s not allowed for kind %s", field, kind)
		}
	}

	switch kindName {
	case KindLiteralBoolean.String():
		return &LiteralBooleanSchema{Meta: meta}, nil
	case KindLiteralString.String():
		return &LiteralStringSchema{Meta: meta}, nil
	case KindLiteralInteger.String():
		return &LiteralIntegerSchema{Meta: meta}, nil
	case KindString.String():
		if err := checkCountRange(definition.MinLength, definition.MaxLength); err != nil {
			return nil, invalid("length: %v", err)
		}

		schema := &StringSchema{
			Meta:      meta,
			MinLength: definition.MinLength,
			MaxLength: definition.MaxLength,
			Pattern:   definition.Pattern,
		}

		if raw := strings.TrimSpace(definition.Format); raw != "" {
			format, ok := ParseStringFormat(raw)
			if !ok {
				return nil, fmt.Errorf("%w %q in type %q", ErrUnknownStringFormat, raw, id)
			}

			schema.Format = format
		}

		return schema, nil
	case KindInteger.String():
		minimum, err := integerBound(&definition.Minimum)
		if err != nil {
			return nil, invalid("minimum: %v", err)
		}

		maximum, err := integerBound(&definition.Maximum)
		if err != nil {
			return nil, invalid("maximum: %v", err)
		}

		if minimum != nil && maximum != nil && *minimum > *maximum {
			return nil, invalid("minimum %d exceeds maximum %d", *minimum, *maximum)
		}

		return &IntegerSchema{Meta: meta, Minimum: minimum, Maximum: maximum}, nil
	case KindFloat.String():
		minimum, err := floatBound(&definition.Minimum)
		if err != nil {
			return nil, invalid("minimum: %v", err)
		}

		maximum, err := floatBound(&definition.Maximum)
		if err != nil {
			return nil, invalid("maximum: %v", err)
		}

		if minimum != nil && maximum != nil && *minimum > *maximum {
			return nil, invalid("minimum %s exceeds maximum %s", formatNumber(*minimum), formatNumber(*maximum))
		}

		return &FloatSchema{Meta: meta, Minimum: minimum, Maximum: maximum}, nil
	case KindEnum.String():
		backingType := strings.TrimSpace(definition.BackingType)
		if backingType == "" {
			backingType = defaultEnumBackingType
		}

		cases := make([]EnumCase, 0, len(definition.Cases))
		for _, raw := range definition.Cases {
			caseName := strings.TrimSpace(raw.Name)
			if caseName == "" {
				return nil, invalid("enum case without name")
			}

			cases = append(cases, EnumCase{Name: caseName, Description: sanitizeText(raw.Description)})
		}

		return &EnumSchema{Meta: meta, BackingType: backingType, Cases: cases}, nil
	case KindList.String():
		if err := checkCountRange(definition.MinCount, definition.MaxCount); err != nil {
			return nil, invalid("count: %v", err)
		}

		return &ListSchema{Meta: meta, MinCount: definition.MinCount, MaxCount: definition.MaxCount}, nil
	case KindShape.String():
		return &ShapeSchema{Meta: meta}, nil
	case "":
		return nil, invalid("missing kind")
	default:
		return nil, invalid("unknown kind %q", definition.Kind)
	}
}

// normalizeKindName normalizes catalog kind identifiers.
func normalizeKindName(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// catalogKindByName returns kind for catalog kind identifier.
func catalogKindByName(name string) (Kind, bool) {
	for kind := range catalogKindKeys {
		if kind.String() == name {
			return kind, true
		}
	}

	return 0, false
}

// foreignKindField returns first definition key not applicable to kind.
func foreignKindField(kind Kind, fields []string) (string, bool) {
	for _, field := range fields {
		switch field {
		case "kind", "name", "description":
			continue
		}

		if !slices.Contains(catalogKindKeys[kind], field) {
			return field, true
		}
	}

	return "", false
}

// integerBound parses bound scalar as int64 without float round trip.
func integerBound(node *yaml.Node) (*int64, error) {
	raw, err := numericScalar(node)
	if err != nil || raw == "" {
		return nil, err
	}

	if node.ShortTag() != "!!int" {
		return nil, fmt.Errorf("%s is not an integer", raw)
	}

	bound, err := strconv.ParseInt(strings.ReplaceAll(raw, "_", ""), 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%s is not an int64 integer", raw)
	}

	return &bound, nil
}

// floatBound parses finite float bound scalar.
func floatBound(node *yaml.Node) (*float64, error) {
	raw, err := numericScalar(node)
	if err != nil || raw == "" {
		return nil, err
	}

	var bound float64
	switch node.ShortTag() {
	case "!!int":
		integer, parseErr := strconv.ParseInt(strings.ReplaceAll(raw, "_", ""), 0, 64)
		bound, err = float64(integer), parseErr
	case "!!float":
		bound, err = strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
	default:
		return nil, fmt.Errorf("%s is not a number", raw)
	}

	if err != nil || math.IsInf(bound, 0) || math.IsNaN(bound) {
		return nil, fmt.Errorf("%s is not a finite number", raw)
	}

	return &bound, nil
}

// numericScalar returns raw bound text; empty for absent or null bound.
func numericScalar(node *yaml.Node) (string, error) {
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return "", nil
	}

	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: bound must be a number", node.Line)
	}

	return strings.TrimSpace(node.Value), nil
}

// checkCountRange validates non-negative min/max pair.
func checkCountRange(minimum, maximum *int) error {
	if minimum != nil && *minimum < 0 {
		return fmt.Errorf("negative minimum %d", *minimum)
	}

	if maximum != nil && *maximum < 0 {
		return fmt.Errorf("negative maximum %d", *maximum)
	}

	if minimum != nil && maximum != nil && *minimum > *maximum {
		return fmt.Errorf("minimum %d exceeds maximum %d", *minimum, *maximum)
	}

	return nil
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}
