package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed legal/*.md
var legalFS embed.FS

// ErrUnknownDocument is returned for a legal document name outside the allowlist.
var ErrUnknownDocument = errors.New("content: unknown legal document")

// LegalDocuments is the allowlist of legal document names linked from the footer.
var LegalDocuments = []string{"privacy", "terms", "license"}

func knownDocument(name string) bool {
	for _, d := range LegalDocuments {
		if d == name {
			return true
		}
	}
	return false
}

// LegalDocument returns the Markdown for name. A file <name>.md in dir takes
// precedence over the built-in copy; dir may be empty.
func LegalDocument(dir, name string) ([]byte, error) {
	if !knownDocument(name) {
		return nil, ErrUnknownDocument
	}
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name+".md"))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
	}
	return legalFS.ReadFile("legal/" + name + ".md")
}
