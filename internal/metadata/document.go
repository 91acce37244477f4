package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is the scratch metadata file shared by the file-consuming
// strategies. The file is materialized lazily on first use and removed by
// the chain driver on every exit path, so no stray document survives an
// attempt. Its name is a pure function of the mint, which lets a later run
// detect or overwrite anything leaked by an abnormal abort.
type Document struct {
	path    string
	payload []byte
	written bool
}

// NewDocument serializes the request eagerly and binds the scratch path.
func NewDocument(scratchDir string, req Request) (*Document, error) {
	payload, err := req.documentJSON()
	if err != nil {
		return nil, fmt.Errorf("serialize metadata document: %w", err)
	}
	return &Document{
		path:    DocumentPath(scratchDir, req.Mint),
		payload: payload,
	}, nil
}

// DocumentPath derives the scratch file location for a mint. Separator and
// other path-unsafe characters are normalized so the name is always a single
// filesystem-safe component.
func DocumentPath(scratchDir, mint string) string {
	replacer := strings.NewReplacer(".", "_", "/", "_", "\\", "_", ":", "_")
	return filepath.Join(scratchDir, "solana_token_metadata_"+replacer.Replace(mint)+".json")
}

// JSON returns the serialized document contents.
func (d *Document) JSON() []byte {
	return d.payload
}

// Materialize writes the document to its scratch path if not already
// present, returning the path.
func (d *Document) Materialize() (string, error) {
	if d.written {
		return d.path, nil
	}
	if err := os.WriteFile(d.path, d.payload, 0o644); err != nil {
		return "", fmt.Errorf("write metadata document: %w", err)
	}
	d.written = true
	return d.path, nil
}

// Remove deletes the materialized file. Safe to call multiple times and
// when the document was never written.
func (d *Document) Remove() {
	if !d.written {
		return
	}
	_ = os.Remove(d.path)
	d.written = false
}
