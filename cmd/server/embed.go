package main

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode"
)

//go:embed embed/version.txt
var embeddedVersion string

//go:embed embed/template
var embeddedTemplateFS embed.FS

//go:embed embed/static
var embeddedStaticFS embed.FS

// embedParameters are the files that are bundled into the server.
type embedParameters struct {
	Version    string
	StaticFS   fs.FS
	TemplateFS fs.FS
}

// newEmbedParameters validates the version and unembeds the file systems.
func newEmbedParameters(version string, staticFS, templateFS fs.FS) (*embedParameters, error) {
	version, err := cleanVersion(version)
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	staticFS, err = unembedFS(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("reading static files: %w", err)
	}
	templateFS, err = unembedFS(templateFS, "template")
	if err != nil {
		return nil, fmt.Errorf("reading template files: %w", err)
	}
	e := embedParameters{
		Version:    version,
		StaticFS:   staticFS,
		TemplateFS: templateFS,
	}
	return &e, nil
}

// unembedFS returns the embed/subdirectory subdirectory of the file system.
func unembedFS(fsys fs.FS, subdirectory string) (fs.FS, error) {
	dir := path.Join("embed", subdirectory)
	return fs.Sub(fsys, dir)
}

// cleanVersion trims the whitespace around the version.  The version must only contain letters and digits.
func cleanVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return "", fmt.Errorf("empty version")
	}
	for i, r := range v {
		if !unicode.In(r, unicode.Letter, unicode.Digit) {
			return "", fmt.Errorf("invalid rune at index %v of version %q: %q", i, v, r)
		}
	}
	return v, nil
}
