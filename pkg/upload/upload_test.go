package upload

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	path        string
	contentType string
	body        []byte

	response []byte
	err      error
}

func (f *fakePoster) Post(_ context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	f.path = path
	f.contentType = contentType
	f.body, _ = io.ReadAll(body)
	return f.response, f.err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestAccepted(t *testing.T) {
	assert.True(t, Accepted("ruling.pdf"))
	assert.True(t, Accepted("Ruling.PDF"))
	assert.True(t, Accepted("filing.docx"))
	assert.False(t, Accepted("notes.txt"))
	assert.False(t, Accepted("archive.pdf.zip"))
}

func TestValidateRejectsExtension(t *testing.T) {
	path := writeDoc(t, "notes.txt", "hi")

	err := Validate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pdf, .doc, .docx")
}

func TestValidateRejectsOversize(t *testing.T) {
	path := writeDoc(t, "huge.pdf", strings.Repeat("x", MaxUploadBytes+1))

	err := Validate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "over the")
}

func TestValidateMissingFile(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "gone.pdf"))
	assert.Error(t, err)
}

func TestSendPostsMultipart(t *testing.T) {
	path := writeDoc(t, "ruling.pdf", "%PDF-1.4 fake")
	poster := &fakePoster{response: []byte(`{
		"case_id": 88,
		"extracted_data": {"title": "Mwangi v Republic", "year": 2021}
	}`)}

	res, err := Send(context.Background(), poster, path)
	require.NoError(t, err)

	assert.Equal(t, Path, poster.path)
	assert.True(t, strings.HasPrefix(poster.contentType, "multipart/form-data; boundary="))
	assert.True(t, bytes.Contains(poster.body, []byte(`filename="ruling.pdf"`)))
	assert.True(t, bytes.Contains(poster.body, []byte(`name="file"`)))
	assert.True(t, bytes.Contains(poster.body, []byte("%PDF-1.4 fake")))

	assert.EqualValues(t, 88, res.CaseID)
	assert.Equal(t, "Mwangi v Republic", res.ExtractedData["title"])
}

func TestSendSkipsNetworkOnInvalidFile(t *testing.T) {
	path := writeDoc(t, "notes.txt", "hi")
	poster := &fakePoster{}

	_, err := Send(context.Background(), poster, path)
	require.Error(t, err)
	assert.Empty(t, poster.path, "a rejected file must not be posted")
}
