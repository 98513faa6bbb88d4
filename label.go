// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"fmt"
	"strings"
)

// TypeLabel converts PascalCase or camelCase type name into space separated
// words, preserving original casing ("SomeNumber" -> "Some Number").
func TypeLabel(name string) string {
	return splitUpper(name, ' ')
}

// AnchorSlug converts type name into lower-case markdown heading anchor
// ("SomeNumber" -> "some-number"). The leading "#" is not included.
func AnchorSlug(name string) string {
	return strings.ToLower(splitUpper(name, '-'))
}

// LinkType renders in-document markdown link to schema section. Target section
// may be absent from the document; such dangling links are accepted.
func LinkType(schema Schema) (string, error) {
	if err := checkLinkable(schema); err != nil {
		return "", err
	}

	name := schema.SchemaName()
	return "[" + TypeLabel(name) + "](#" + AnchorSlug(name) + ")", nil
}

// checkLinkable rejects nil, optional and foreign schemas referenced from parent schemas.
func checkLinkable(schema Schema) error {
	if isNilSchema(schema) {
		return fmt.Errorf("%w %q", ErrUnsupportedSchemaKind, schemaKindIdentifier(schema))
	}

	switch schema.(type) {
	case *LiteralBooleanSchema, *LiteralStringSchema, *LiteralIntegerSchema,
		*StringSchema, *IntegerSchema, *FloatSchema, *EnumSchema,
		*ListSchema, *ShapeSchema:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedSchemaKind, schemaKindIdentifier(schema))
	}
}

// splitUpper inserts separator before every ASCII uppercase letter except the first character.
func splitUpper(name string, separator byte) string {
	var out strings.Builder
	out.Grow(len(name) + len(name)/4)

	for i := 0; i < len(name); i++ {
		c := name[i]
		if i > 0 && c >= 'A' && c <= 'Z' {
			out.WriteByte(separator)
		}

		out.WriteByte(c)
	}

	return out.String()
}
