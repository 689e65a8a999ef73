package utils

import (
	"path"
	"regexp"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphens  = regexp.MustCompile(`-+`)
	nonFileChars  = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	multiUnderbar = regexp.MustCompile(`_+`)
)

// GenerateSlug lowercases input and keeps only a-z, 0-9 and single hyphens.
// "Structural Steel Fabrication!" → "structural-steel-fabrication"
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := multiHyphens.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// SafeFilename reduces an uploaded file name to a storage-safe base name.
// The extension is kept and lowercased; an empty result becomes "file".
func SafeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	stem := strings.TrimSuffix(base, path.Ext(base))

	stem = nonFileChars.ReplaceAllString(stem, "_")
	stem = multiUnderbar.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "_.")
	if stem == "" {
		stem = "file"
	}
	ext = nonFileChars.ReplaceAllString(ext, "")
	return stem + ext
}

// DispositionName replaces whitespace with underscores for Content-Disposition filenames.
func DispositionName(name string) string {
	fields := strings.Fields(name)
	joined := strings.Join(fields, "_")
	return strings.ReplaceAll(joined, `"`, "")
}
