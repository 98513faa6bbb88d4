// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import "strconv"

// Kind identifies one schema variant of the closed schema model.
type Kind int

const (
	// KindLiteralBoolean is a fixed boolean primitive.
	KindLiteralBoolean Kind = iota + 1
	// KindLiteralString is a fixed string primitive.
	KindLiteralString
	// KindLiteralInteger is a fixed integer primitive.
	KindLiteralInteger
	// KindString is a constrained string type.
	KindString
	// KindInteger is a constrained integer type.
	KindInteger
	// KindFloat is a constrained floating point type.
	KindFloat
	// KindEnum is an enumeration with ordered cases.
	KindEnum
	// KindList is a collection of one item type.
	KindList
	// KindShape is an object with ordered named properties.
	KindShape
	// KindOptional wraps a shape property schema that may be omitted.
	KindOptional
)

// kindNames maps kinds to stable identifiers used in errors and catalogs.
var kindNames = map[Kind]string{
	KindLiteralBoolean: "literal_boolean",
	KindLiteralString:  "literal_string",
	KindLiteralInteger: "literal_integer",
	KindString:         "string",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindEnum:           "enum",
	KindList:           "list",
	KindShape:          "shape",
	KindOptional:       "optional",
}

// String returns kind identifier.
func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return "kind(" + strconv.Itoa(int(kind)) + ")"
}

// Schema is a structural description of one data type.
type Schema interface {
	Kind() Kind
	SchemaName() string
	SchemaDescription() string
}

// Meta carries identity shared by all schema kinds.
type Meta struct {
	// Name identifies the type; labels and anchors derive from it.
	Name string
	// Description is optional; empty means absent.
	Description string
}

// SchemaName returns type name.
func (meta Meta) SchemaName() string { return meta.Name }

// SchemaDescription returns type description.
func (meta Meta) SchemaDescription() string { return meta.Description }

// LiteralBooleanSchema describes a plain boolean.
type LiteralBooleanSchema struct {
	Meta
}

// Kind implements Schema.
func (*LiteralBooleanSchema) Kind() Kind { return KindLiteralBoolean }

// LiteralStringSchema describes a plain string.
type LiteralStringSchema struct {
	Meta
}

// Kind implements Schema.
func (*LiteralStringSchema) Kind() Kind { return KindLiteralString }

// LiteralIntegerSchema describes a plain integer.
type LiteralIntegerSchema struct {
	Meta
}

// Kind implements Schema.
func (*LiteralIntegerSchema) Kind() Kind { return KindLiteralInteger }

// StringSchema describes a string with optional constraints.
type StringSchema struct {
	Meta
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    StringFormat
}

// Kind implements Schema.
func (*StringSchema) Kind() Kind { return KindString }

// IntegerSchema describes an integer with optional bounds.
type IntegerSchema struct {
	Meta
	Minimum *int64
	Maximum *int64
}

// Kind implements Schema.
func (*IntegerSchema) Kind() Kind { return KindInteger }

// FloatSchema describes a floating point number with optional bounds.
type FloatSchema struct {
	Meta
	Minimum *float64
	Maximum *float64
}

// Kind implements Schema.
func (*FloatSchema) Kind() Kind { return KindFloat }

// EnumCase is one declared enumeration case.
type EnumCase struct {
	Name        string
	Description string
}

// EnumSchema describes an enumeration. BackingType "int" renders as integer,
// empty renders as string, any other backing type is rendered verbatim.
type EnumSchema struct {
	Meta
	BackingType string
	Cases       []EnumCase
}

// Kind implements Schema.
func (*EnumSchema) Kind() Kind { return KindEnum }

// ListSchema describes a collection of items of one type.
type ListSchema struct {
	Meta
	Item     Schema
	MinCount *int
	MaxCount *int
}

// Kind implements Schema.
func (*ListSchema) Kind() Kind { return KindList }

// Property is one named shape member.
type Property struct {
	Name   string
	Schema Schema
	// Description overrides the property type description when not empty.
	Description string
}

// ShapeSchema describes an object; Properties keep declaration order.
type ShapeSchema struct {
	Meta
	Properties []Property
}

// Kind implements Schema.
func (*ShapeSchema) Kind() Kind { return KindShape }

// OverriddenPropertyDescription returns description registered for property name.
func (schema *ShapeSchema) OverriddenPropertyDescription(name string) (string, bool) {
	for _, property := range schema.Properties {
		if property.Name != name {
			continue
		}

		if property.Description == "" {
			return "", false
		}

		return property.Description, true
	}

	return "", false
}

// OptionalSchema marks a shape property as optional.
type OptionalSchema struct {
	Inner Schema
}

// Kind implements Schema.
func (*OptionalSchema) Kind() Kind { return KindOptional }

// SchemaName returns wrapped schema name.
func (schema *OptionalSchema) SchemaName() string {
	if schema.Inner == nil {
		return ""
	}

	return schema.Inner.SchemaName()
}

// SchemaDescription returns wrapped schema description.
func (schema *OptionalSchema) SchemaDescription() string {
	if schema.Inner == nil {
		return ""
	}

	return schema.Inner.SchemaDescription()
}

// isNilSchema reports nil interface or typed nil payload of closed kind set.
func isNilSchema(schema Schema) bool {
	switch typed := schema.(type) {
	case nil:
		return true
	case *LiteralBooleanSchema:
		return typed == nil
	case *LiteralStringSchema:
		return typed == nil
	case *LiteralIntegerSchema:
		return typed == nil
	case *StringSchema:
		return typed == nil
	case *IntegerSchema:
		return typed == nil
	case *FloatSchema:
		return typed == nil
	case *EnumSchema:
		return typed == nil
	case *ListSchema:
		return typed == nil
	case *ShapeSchema:
		return typed == nil
	case *OptionalSchema:
		return typed == nil
	default:
		return false
	}
}

// Optional wraps schema into OptionalSchema.
func Optional(schema Schema) *OptionalSchema {
	return &OptionalSchema{Inner: schema}
}

// unwrapOptional returns inner schema and reports whether schema was optional.
func unwrapOptional(schema Schema) (Schema, bool) {
	optional, ok := schema.(*OptionalSchema)
	if !ok || optional == nil {
		return schema, false
	}

	return optional.Inner, true
}

// StringFormat is a named string format.
type StringFormat string

// Supported string formats.
const (
	StringFormatDate                StringFormat = "date"
	StringFormatDateTime            StringFormat = "date_time"
	StringFormatDuration            StringFormat = "duration"
	StringFormatEmail               StringFormat = "email"
	StringFormatHostname            StringFormat = "hostname"
	StringFormatIDNEmail            StringFormat = "idn_email"
	StringFormatIDNHostname         StringFormat = "idn_hostname"
	StringFormatIPv4                StringFormat = "ipv4"
	StringFormatIPv6                StringFormat = "ipv6"
	StringFormatIRI                 StringFormat = "iri"
	StringFormatIRIReference        StringFormat = "iri_reference"
	StringFormatJSONPointer         StringFormat = "json_pointer"
	StringFormatRegex               StringFormat = "regex"
	StringFormatRelativeJSONPointer StringFormat = "relative_json_pointer"
	StringFormatTime                StringFormat = "time"
	StringFormatURI                 StringFormat = "uri"
	StringFormatURIReference        StringFormat = "uri_reference"
	StringFormatURITemplate         StringFormat = "uri_template"
	StringFormatUUID                StringFormat = "uuid"
)

// knownStringFormats lists all formats accepted by ParseStringFormat.
var knownStringFormats = map[StringFormat]struct{}{
	StringFormatDate:                {},
	StringFormatDateTime:            {},
	StringFormatDuration:            {},
	StringFormatEmail:               {},
	StringFormatHostname:            {},
	StringFormatIDNEmail:            {},
	StringFormatIDNHostname:         {},
	StringFormatIPv4:                {},
	StringFormatIPv6:                {},
	StringFormatIRI:                 {},
	StringFormatIRIReference:        {},
	StringFormatJSONPointer:         {},
	StringFormatRegex:               {},
	StringFormatRelativeJSONPointer: {},
	StringFormatTime:                {},
	StringFormatURI:                 {},
	StringFormatURIReference:        {},
	StringFormatURITemplate:         {},
	StringFormatUUID:                {},
}

// ParseStringFormat validates format name. Hyphenated JSON Schema spelling
// ("date-time") is accepted as alias of the canonical name.
func ParseStringFormat(name string) (StringFormat, bool) {
	format := StringFormat(hyphenToUnderscore(name))
	if _, ok := knownStringFormats[format]; !ok {
		return "", false
	}

	return format, true
}

func hyphenToUnderscore(value string) string {
	out := []byte(value)
	for i := range out {
		if out[i] == '-' {
			out[i] = '_'
		}
	}

	return string(out)
}
