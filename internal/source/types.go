package source

import (
	"crypto/sha256"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Flags encodes how a file's content was obtained and normalized.
type Flags uint8

const (
	// FileVirtual marks content that did not come from disk (open buffer, test, stdin).
	FileVirtual Flags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is the normalized content of one document.
type File struct {
	URI     protocol.DocumentUri
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   Flags
}

// NewFile wraps already normalized content.
func NewFile(uri protocol.DocumentUri, content []byte, flags Flags) *File {
	return &File{
		URI:     uri,
		Path:    URIToPath(uri),
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// Lines splits the content on '\n'. A trailing newline does not produce an
// extra empty line.
func (f *File) Lines() []string {
	text := string(f.Content)
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
