// Package upload handles case-document ingestion: picking candidate files
// from a local inbox directory and posting them to the extraction endpoint,
// which creates a case from the document's contents.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

const (
	// Path is the ingestion endpoint. It lives outside the /api prefix.
	Path = "/admin/cases/upload"

	// MaxUploadBytes caps documents at 10 MB, matching the server limit.
	MaxUploadBytes = 10 << 20
)

// AcceptedExtensions are the document types the extractor understands.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx"}

// Poster is the transport subset an upload needs.
type Poster interface {
	Post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error)
}

// Result is the server's response to a successful ingestion: the created
// case plus whatever fields the extractor pulled out of the document.
type Result struct {
	CaseID        v1.ID                  `json:"case_id"`
	ExtractedData map[string]interface{} `json:"extracted_data"`
}

func Accepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AcceptedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// Validate rejects a file before any bytes leave the machine.
func Validate(path string) error {
	if !Accepted(path) {
		return fmt.Errorf("%s: only %s documents are accepted", filepath.Base(path), strings.Join(AcceptedExtensions, ", "))
	}

	finfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("unable to stat %s: %w", path, err)
	}
	if finfo.Size() > MaxUploadBytes {
		return fmt.Errorf("%s is %d bytes, over the %d byte limit", filepath.Base(path), finfo.Size(), MaxUploadBytes)
	}
	return nil
}

// Send posts one document and decodes the extraction result.
func Send(ctx context.Context, p Poster, path string) (*Result, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	body, contentType, err := encodeMultipart(filepath.Base(path), f)
	if err != nil {
		return nil, err
	}

	raw, err := p.Post(ctx, Path, contentType, body)
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("unable to decode upload result: %w", err)
	}
	return &res, nil
}

func encodeMultipart(filename string, r io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("unable to buffer %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
