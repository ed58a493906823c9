package source

import (
	"net/url"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// URIToPath converts a file:// uri (or a bare path) to an absolute OS path.
// Non-file schemes yield "".
func URIToPath(uri protocol.DocumentUri) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = uri
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	path = filepath.FromSlash(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// PathToURI converts a path to a file:// uri.
func PathToURI(path string) protocol.DocumentUri {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// ResolveInclude resolves an include operand against the directory of the
// including document. Surrounding quotes or angle brackets are dropped.
func ResolveInclude(from protocol.DocumentUri, operand string) (protocol.DocumentUri, bool) {
	name := strings.TrimSpace(operand)
	name = strings.TrimPrefix(name, "<")
	name = strings.TrimSuffix(name, ">")
	name = strings.Trim(name, `"'`)
	if name == "" {
		return "", false
	}
	name = filepath.FromSlash(name)
	if !filepath.IsAbs(name) {
		base := URIToPath(from)
		if base == "" {
			return "", false
		}
		name = filepath.Join(filepath.Dir(base), name)
	}
	return PathToURI(name), true
}
