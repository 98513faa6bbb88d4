// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// foreignSchema is Schema implementation outside the closed kind set.
type foreignSchema struct {
	Meta
}

func (*foreignSchema) Kind() Kind { return Kind(99) }

func TestRenderSchemaTypeKeyword(t *testing.T) {
	t.Parallel()

	number := &IntegerSchema{Meta: Meta{Name: "SomeNumber"}}
	cases := []struct {
		name   string
		schema Schema
		want   string
	}{
		{name: "literal boolean", schema: &LiteralBooleanSchema{Meta: Meta{Name: "boolean"}}, want: "boolean"},
		{name: "literal string", schema: &LiteralStringSchema{Meta: Meta{Name: "string"}}, want: "string"},
		{name: "literal integer", schema: &LiteralIntegerSchema{Meta: Meta{Name: "int"}}, want: "integer"},
		{name: "string", schema: &StringSchema{Meta: Meta{Name: "Date"}}, want: "string"},
		{name: "integer", schema: number, want: "integer"},
		{name: "float", schema: &FloatSchema{Meta: Meta{Name: "Longitude"}}, want: "float"},
		{name: "int enum", schema: &EnumSchema{Meta: Meta{Name: "Severity"}, BackingType: "int"}, want: "integer"},
		{name: "string enum", schema: &EnumSchema{Meta: Meta{Name: "Title"}, BackingType: "string"}, want: "string"},
		{name: "float enum", schema: &EnumSchema{Meta: Meta{Name: "Ratio"}, BackingType: "float"}, want: "float"},
		{name: "list", schema: &ListSchema{Meta: Meta{Name: "SomeNumbers"}, Item: number}, want: "array"},
		{name: "shape", schema: &ShapeSchema{Meta: Meta{Name: "SomeShape"}}, want: "object"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderSchema(tc.schema)
			if err != nil {
				t.Fatalf("RenderSchema: %v", err)
			}

			prefix := " * **type**: " + tc.want + "\n"
			if !strings.HasPrefix(got, prefix) {
				t.Fatalf("RenderSchema = %q, want prefix %q", got, prefix)
			}

			if strings.Count(got, "**type**") != 1 {
				t.Fatalf("RenderSchema = %q, want exactly one type line", got)
			}

			if !strings.HasSuffix(got, "\n\n") {
				t.Fatalf("RenderSchema = %q, want trailing blank line", got)
			}
		})
	}
}

func TestRenderSchemaLiteralHasNoDetails(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&LiteralBooleanSchema{Meta: Meta{Name: "boolean"}})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: boolean\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}
}

func TestRenderSchemaIntegerBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema *IntegerSchema
		want   string
	}{
		{
			name:   "both",
			schema: &IntegerSchema{Meta: Meta{Name: "SomeNumber"}, Minimum: int64Ptr(3), Maximum: int64Ptr(20)},
			want:   " * **type**: integer\n * **minimum**: 3\n * **maximum**: 20\n\n",
		},
		{
			name:   "maximum only",
			schema: &IntegerSchema{Meta: Meta{Name: "Port"}, Maximum: int64Ptr(65535)},
			want:   " * **type**: integer\n * **maximum**: 65535\n\n",
		},
		{
			name:   "negative minimum",
			schema: &IntegerSchema{Meta: Meta{Name: "Offset"}, Minimum: int64Ptr(-7)},
			want:   " * **type**: integer\n * **minimum**: -7\n\n",
		},
		{
			name:   "none",
			schema: &IntegerSchema{Meta: Meta{Name: "Count"}},
			want:   " * **type**: integer\n\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderSchema(tc.schema)
			if err != nil {
				t.Fatalf("RenderSchema: %v", err)
			}

			if got != tc.want {
				t.Fatalf("RenderSchema = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderSchemaFloatBoundsNaturalForm(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&FloatSchema{
		Meta:    Meta{Name: "Longitude"},
		Minimum: float64Ptr(-180.0),
		Maximum: float64Ptr(180.5),
	})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: float\n * **minimum**: -180\n * **maximum**: 180.5\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}
}

func TestRenderSchemaStringConstraintsOrder(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&StringSchema{
		Meta:      Meta{Name: "Date"},
		MinLength: intPtr(3),
		MaxLength: intPtr(10),
		Pattern:   `\d{4}-\d{2}-\d{2}`,
		Format:    StringFormatDate,
	})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := strings.Join([]string{
		" * **type**: string",
		" * **minLength**: 3",
		" * **maxLength**: 10",
		" * **pattern**: `\\d{4}-\\d{2}-\\d{2}`",
		" * **format**: `date`",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSchemaStringFormatOnly(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&StringSchema{Meta: Meta{Name: "EmailAddress"}, Format: StringFormatEmail})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: string\n * **format**: `email`\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}
}

func TestRenderSchemaEnumCases(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&EnumSchema{
		Meta:        Meta{Name: "Severity"},
		BackingType: "int",
		Cases: []EnumCase{
			{Name: "LOW"},
			{Name: "MEDIUM"},
			{Name: "HIGH", Description: "Highest severity"},
		},
	})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: integer\n * **enum**:\n    * LOW\n    * MEDIUM\n    * HIGH _– Highest severity_\n\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSchemaEnumWithoutCases(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&EnumSchema{Meta: Meta{Name: "Empty"}, BackingType: "string"})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: string\n * **enum**:\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}
}

func TestRenderSchemaEnumEmptyBackingTypeRendersString(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&EnumSchema{
		Meta:  Meta{Name: "Title"},
		Cases: []EnumCase{{Name: "MR"}, {Name: "MRS"}},
	})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: string\n * **enum**:\n    * MR\n    * MRS\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}
}

func TestRenderSchemaListLinksItem(t *testing.T) {
	t.Parallel()

	got, err := RenderSchema(&ListSchema{
		Meta:     Meta{Name: "SomeNumbers"},
		Item:     &IntegerSchema{Meta: Meta{Name: "SomeNumber"}, Minimum: int64Ptr(3)},
		MinCount: intPtr(1),
		MaxCount: intPtr(5),
	})
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := " * **type**: array\n * **items.type**: [Some Number](#some-number)\n * **minItems**: 1\n * **maxItems**: 5\n\n"
	if got != want {
		t.Fatalf("RenderSchema = %q, want %q", got, want)
	}

	assertNotContains(t, got, "minimum")
}

func TestRenderSchemaShapeProperties(t *testing.T) {
	t.Parallel()

	number := &IntegerSchema{Meta: Meta{Name: "SomeNumber"}}
	shape := &ShapeSchema{
		Meta: Meta{Name: "SomeShape"},
		Properties: []Property{
			{Name: "number", Schema: number},
			{Name: "flag", Schema: Optional(&LiteralBooleanSchema{Meta: Meta{Name: "boolean"}})},
			{Name: "int", Schema: Optional(&LiteralIntegerSchema{Meta: Meta{Name: "int"}}), Description: "Overridden description"},
			{Name: "count", Schema: number, Description: "How many"},
		},
	}

	got, err := RenderSchema(shape)
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	want := strings.Join([]string{
		" * **type**: object",
		"",
		"#### Properties",
		"",
		"* number ([Some Number](#some-number))",
		"* flag ([boolean](#boolean)) (optional)",
		"* int ([int](#int)) (optional) – _Overridden description_",
		"* count ([Some Number](#some-number)) – _How many_",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSchemaShapeKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	names := []string{"zulu", "alpha", "mike", "bravo"}
	shape := &ShapeSchema{Meta: Meta{Name: "Ordered"}}
	for _, name := range names {
		shape.Properties = append(shape.Properties, Property{Name: name, Schema: &LiteralStringSchema{Meta: Meta{Name: "string"}}})
	}

	got, err := RenderSchema(shape)
	if err != nil {
		t.Fatalf("RenderSchema: %v", err)
	}

	last := -1
	for _, name := range names {
		index := strings.Index(got, "* "+name+" ")
		if index <= last {
			t.Fatalf("property %q out of order in:\n%s", name, got)
		}

		last = index
	}
}

func TestRenderSchemaUnsupportedKind(t *testing.T) {
	t.Parallel()

	foreign := &foreignSchema{Meta: Meta{Name: "Foreign"}}
	cases := []struct {
		name   string
		schema Schema
		want   string
	}{
		{name: "nil", schema: nil, want: "nil"},
		{name: "top-level optional", schema: Optional(&LiteralBooleanSchema{Meta: Meta{Name: "boolean"}}), want: "optional"},
		{name: "foreign", schema: foreign, want: "foreignSchema"},
		{name: "foreign list item", schema: &ListSchema{Meta: Meta{Name: "Foreigners"}, Item: foreign}, want: "foreignSchema"},
		{name: "missing list item", schema: &ListSchema{Meta: Meta{Name: "Nothing"}}, want: "nil"},
		{name: "typed nil shape", schema: (*ShapeSchema)(nil), want: "nil"},
		{name: "typed nil list item", schema: &ListSchema{Meta: Meta{Name: "Shapes"}, Item: (*ShapeSchema)(nil)}, want: "nil"},
		{
			name: "typed nil property",
			schema: &ShapeSchema{Meta: Meta{Name: "Holder"}, Properties: []Property{
				{Name: "plain", Schema: (*IntegerSchema)(nil)},
			}},
			want: "nil",
		},
		{
			name: "optional over typed nil",
			schema: &ShapeSchema{Meta: Meta{Name: "Holder"}, Properties: []Property{
				{Name: "maybe", Schema: Optional((*EnumSchema)(nil))},
			}},
			want: "nil",
		},
		{
			name: "foreign shape property",
			schema: &ShapeSchema{Meta: Meta{Name: "Holder"}, Properties: []Property{
				{Name: "ok", Schema: &LiteralStringSchema{Meta: Meta{Name: "string"}}},
				{Name: "bad", Schema: Optional(foreign)},
			}},
			want: "foreignSchema",
		},
		{
			name: "nested optional property",
			schema: &ShapeSchema{Meta: Meta{Name: "Holder"}, Properties: []Property{
				{Name: "twice", Schema: Optional(Optional(&LiteralStringSchema{Meta: Meta{Name: "string"}}))},
			}},
			want: "optional",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderSchema(tc.schema)
			if !errors.Is(err, ErrUnsupportedSchemaKind) {
				t.Fatalf("RenderSchema error = %v, want %v", err, ErrUnsupportedSchemaKind)
			}

			if got != "" {
				t.Fatalf("RenderSchema returned partial output %q", got)
			}

			assertContains(t, err.Error(), tc.want)
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := KindShape.String(); got != "shape" {
		t.Fatalf("KindShape.String() = %q, want %q", got, "shape")
	}

	if got := Kind(42).String(); got != "kind(42)" {
		t.Fatalf("Kind(42).String() = %q, want %q", got, "kind(42)")
	}
}

func TestShapeOverriddenPropertyDescription(t *testing.T) {
	t.Parallel()

	shape := &ShapeSchema{Properties: []Property{
		{Name: "a", Description: "first"},
		{Name: "b"},
	}}

	if got, ok := shape.OverriddenPropertyDescription("a"); !ok || got != "first" {
		t.Fatalf("OverriddenPropertyDescription(a) = %q, %v", got, ok)
	}

	if _, ok := shape.OverriddenPropertyDescription("b"); ok {
		t.Fatal("OverriddenPropertyDescription(b) reported description")
	}

	if _, ok := shape.OverriddenPropertyDescription("missing"); ok {
		t.Fatal("OverriddenPropertyDescription(missing) reported description")
	}
}

func TestParseStringFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]StringFormat{
		"date":      StringFormatDate,
		"date-time": StringFormatDateTime,
		"date_time": StringFormatDateTime,
		"uuid":      StringFormatUUID,
	}

	for input, want := range cases {
		got, ok := ParseStringFormat(input)
		if !ok || got != want {
			t.Fatalf("ParseStringFormat(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}

	if _, ok := ParseStringFormat("color"); ok {
		t.Fatal("ParseStringFormat accepted unknown format")
	}
}

func intPtr(value int) *int { return &value }

func int64Ptr(value int64) *int64 { return &value }

func float64Ptr(value float64) *float64 { return &value }

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
