// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

package typesglossary

import "errors"

var (
	// ErrUnknownType is returned when type identifier has no resolvable schema.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnsupportedSchemaKind is returned when rendering meets schema kind outside the closed set.
	ErrUnsupportedSchemaKind = errors.New("unsupported schema kind")
	// ErrInvalidRegistration is returned when registry receives empty identifier or nil schema.
	ErrInvalidRegistration = errors.New("invalid schema registration")
	// ErrReadCatalog is returned when catalog file loading fails.
	ErrReadCatalog = errors.New("read catalog file")
	// ErrDecodeCatalog is returned when catalog YAML/JSON decoding fails.
	ErrDecodeCatalog = errors.New("decode catalog")
	// ErrInvalidCatalogType is returned when catalog type definition is malformed.
	ErrInvalidCatalogType = errors.New("invalid catalog type")
	// ErrUnknownStringFormat is returned when string format name is not supported.
	ErrUnknownStringFormat = errors.New("unknown string format")
)
