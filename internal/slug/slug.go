// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// including Persian category and file names, which are transliterated.
package slug

import (
	"path/filepath"
	"strings"

	gslug "github.com/gosimple/slug"
)

// maxLength caps generated slugs; object keys and URLs stay readable.
const maxLength = 60

// fallback is used when nothing survives slugification.
const fallback = "file"

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := gslug.Make(s)
	if len(result) > maxLength {
		result = strings.TrimRight(result[:maxLength], "-")
	}
	return result
}

// FileName slugifies the base of an uploaded file name and keeps its
// lower-cased extension: "My Photo.JPG" → "my-photo.jpg".
func FileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	ext := strings.ToLower(filepath.Ext(name))
	base := Generate(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = fallback
	}
	if !gslug.IsSlug(strings.TrimPrefix(ext, ".")) {
		ext = ""
	}
	return base + ext
}
