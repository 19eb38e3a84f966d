package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pharmapos/internal/core/apperror"
)

// Store writes rendered invoices to the output directory. The filename is
// derived from the buyer name and the numerator-issued invoice number, which
// is unique — two invoices generated within the same second cannot collide
// the way the old timestamp-named files could.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Filename derives the artifact name for a document.
func Filename(buyer, number string) string {
	return fmt.Sprintf("invoice_%s_%s.pdf", sanitize(buyer), sanitize(number))
}

// Save writes the rendered PDF and returns its path.
func (s *Store) Save(doc Document, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}

	path := filepath.Join(s.dir, Filename(doc.Buyer, doc.Number))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return path, nil
}

// Open returns the stored PDF for an invoice number, matching any buyer.
func (s *Store) Open(number string) (string, []byte, error) {
	pattern := filepath.Join(s.dir, fmt.Sprintf("invoice_*_%s.pdf", sanitize(number)))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", nil, apperror.NewNotFound("invoice", number)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		return "", nil, fmt.Errorf("read invoice: %w", err)
	}
	return filepath.Base(matches[0]), data, nil
}

// sanitize keeps filenames portable: anything outside [A-Za-z0-9._-]
// becomes an underscore.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
