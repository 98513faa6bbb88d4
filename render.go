// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// enumCaseIndent is nested bullet indentation for enum cases.
	enumCaseIndent = "    "
	// propertiesHeading opens shape property list.
	propertiesHeading = "#### Properties"
	// intBackingType is enum backing type rendered as "integer".
	intBackingType = "int"
	// defaultEnumBackingType is rendered when enum backing type is empty.
	defaultEnumBackingType = "string"
)

// RenderSchema renders one schema node into markdown fragment: type line,
// kind specific details and trailing blank line. Referenced schemas are
// rendered as links, never inlined.
func RenderSchema(schema Schema) (string, error) {
	typeName, err := schemaTypeKeyword(schema)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(" * **type**: " + typeName + "\n")

	if err := writeSchemaDetails(&out, schema); err != nil {
		return "", err
	}

	out.WriteByte('\n')
	return out.String(), nil
}

// schemaTypeKeyword maps schema kind to rendered type keyword.
func schemaTypeKeyword(schema Schema) (string, error) {
	if isNilSchema(schema) {
		return "", fmt.Errorf("%w %q", ErrUnsupportedSchemaKind, "nil")
	}

	switch typed := schema.(type) {
	case *LiteralBooleanSchema:
		return "boolean", nil
	case *LiteralStringSchema, *StringSchema:
		return "string", nil
	case *LiteralIntegerSchema, *IntegerSchema:
		return "integer", nil
	case *FloatSchema:
		return "float", nil
	case *EnumSchema:
		switch typed.BackingType {
		case intBackingType:
			return "integer", nil
		case "":
			return defaultEnumBackingType, nil
		default:
			return typed.BackingType, nil
		}
	case *ListSchema:
		return "array", nil
	case *ShapeSchema:
		return "object", nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedSchemaKind, schemaKindIdentifier(schema))
	}
}

// writeSchemaDetails writes kind specific detail lines.
func writeSchemaDetails(out *strings.Builder, schema Schema) error {
	switch typed := schema.(type) {
	case *LiteralBooleanSchema, *LiteralStringSchema, *LiteralIntegerSchema:
		return nil
	case *EnumSchema:
		writeEnumDetails(out, typed)
		return nil
	case *IntegerSchema:
		writeIntegerDetails(out, typed)
		return nil
	case *FloatSchema:
		writeFloatDetails(out, typed)
		return nil
	case *ListSchema:
		return writeListDetails(out, typed)
	case *ShapeSchema:
		return writeShapeDetails(out, typed)
	case *StringSchema:
		writeStringDetails(out, typed)
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedSchemaKind, schemaKindIdentifier(schema))
	}
}

func writeEnumDetails(out *strings.Builder, schema *EnumSchema) {
	out.WriteString(" * **enum**:\n")
	for _, enumCase := range schema.Cases {
		out.WriteString(enumCaseIndent + "* " + enumCase.Name)
		if enumCase.Description != "" {
			out.WriteString(" _– " + enumCase.Description + "_")
		}

		out.WriteByte('\n')
	}
}

func writeIntegerDetails(out *strings.Builder, schema *IntegerSchema) {
	if schema.Minimum != nil {
		writeAttribute(out, "minimum", strconv.FormatInt(*schema.Minimum, 10))
	}

	if schema.Maximum != nil {
		writeAttribute(out, "maximum", strconv.FormatInt(*schema.Maximum, 10))
	}
}

func writeFloatDetails(out *strings.Builder, schema *FloatSchema) {
	if schema.Minimum != nil {
		writeAttribute(out, "minimum", formatNumber(*schema.Minimum))
	}

	if schema.Maximum != nil {
		writeAttribute(out, "maximum", formatNumber(*schema.Maximum))
	}
}

func writeListDetails(out *strings.Builder, schema *ListSchema) error {
	itemLink, err := LinkType(schema.Item)
	if err != nil {
		return fmt.Errorf("list %q items: %w", schema.Name, err)
	}

	writeAttribute(out, "items.type", itemLink)
	if schema.MinCount != nil {
		writeAttribute(out, "minItems", strconv.Itoa(*schema.MinCount))
	}

	if schema.MaxCount != nil {
		writeAttribute(out, "maxItems", strconv.Itoa(*schema.MaxCount))
	}

	return nil
}

// writeShapeDetails writes property list in declaration order. Optional
// wrappers are unwrapped before linking.
func writeShapeDetails(out *strings.Builder, schema *ShapeSchema) error {
	out.WriteString("\n" + propertiesHeading + "\n\n")
	for _, property := range schema.Properties {
		target, optional := unwrapOptional(property.Schema)
		link, err := LinkType(target)
		if err != nil {
			return fmt.Errorf("shape %q property %q: %w", schema.Name, property.Name, err)
		}

		out.WriteString("* " + property.Name + " (" + link + ")")
		if optional {
			out.WriteString(" (optional)")
		}

		if description, ok := schema.OverriddenPropertyDescription(property.Name); ok {
			out.WriteString(" – _" + description + "_")
		}

		out.WriteByte('\n')
	}

	return nil
}

func writeStringDetails(out *strings.Builder, schema *StringSchema) {
	if schema.MinLength != nil {
		writeAttribute(out, "minLength", strconv.Itoa(*schema.MinLength))
	}

	if schema.MaxLength != nil {
		writeAttribute(out, "maxLength", strconv.Itoa(*schema.MaxLength))
	}

	if schema.Pattern != "" {
		writeAttribute(out, "pattern", "`"+schema.Pattern+"`")
	}

	if schema.Format != "" {
		writeAttribute(out, "format", "`"+string(schema.Format)+"`")
	}
}

// writeAttribute writes one " * **name**: value" line.
func writeAttribute(out *strings.Builder, name, value string) {
	out.WriteString(" * **" + name + "**: " + value + "\n")
}

// formatNumber prints float without forced decimal places (-180, 180.5).
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// schemaKindIdentifier describes schema kind for error messages.
func schemaKindIdentifier(schema Schema) string {
	if isNilSchema(schema) {
		return "nil"
	}

	switch schema.(type) {
	case *LiteralBooleanSchema, *LiteralStringSchema, *LiteralIntegerSchema,
		*StringSchema, *IntegerSchema, *FloatSchema, *EnumSchema,
		*ListSchema, *ShapeSchema, *OptionalSchema:
		return schema.Kind().String()
	default:
		return fmt.Sprintf("%T", schema)
	}
}
