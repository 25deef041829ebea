// Package workflow drives the modal create/edit/delete lifecycle of one
// management screen. At most one workflow is open per screen; it owns the
// draft being edited and refuses to build a request while the draft fails
// local validation.
//
// Mutating methods belong on the update loop. Submission and Delete
// execute off it, so they read only the immutable schema and client and
// touch no workflow state; the caller closes the workflow when the result
// message lands.
package workflow

import (
	"context"
	"fmt"

	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
	ModeConfirmDelete
)

func (m Mode) String() string {
	return map[Mode]string{
		ModeClosed:        "closed",
		ModeCreate:        "create",
		ModeEdit:          "edit",
		ModeConfirmDelete: "confirm delete",
	}[m]
}

// API is the mutation subset of the admin client the workflow needs.
type API interface {
	Create(ctx context.Context, path string, body interface{}) ([]byte, error)
	Update(ctx context.Context, path string, id v1.ID, body interface{}) ([]byte, error)
	Remove(ctx context.Context, path string, id v1.ID) error
}

// Submission is a validated mutation ready to issue.
type Submission struct {
	Path string
	Body map[string]interface{}

	// ID is set for updates; zero means create.
	ID v1.ID
}

// Deletion is a confirmed delete ready to issue.
type Deletion struct {
	Path string
	ID   v1.ID
}

type Workflow struct {
	schema *schema.Schema
	api    API

	mode    Mode
	subject v1.Record
	draft   map[string]string

	// issued guards the delete confirmation: a second confirm on the same
	// open prompt must not fire a second request.
	issued bool
}

func New(s *schema.Schema, api API) *Workflow {
	return &Workflow{schema: s, api: api}
}

func (w *Workflow) Mode() Mode         { return w.mode }
func (w *Workflow) IsOpen() bool       { return w.mode != ModeClosed }
func (w *Workflow) Subject() v1.Record { return w.subject }

func (w *Workflow) Draft() map[string]string { return w.draft }

func (w *Workflow) Field(key string) string { return w.draft[key] }

// OpenCreate opens the form with every field at its declared default.
func (w *Workflow) OpenCreate() {
	w.mode = ModeCreate
	w.subject = nil
	w.draft = w.schema.NewDraft()
	w.issued = false
}

// OpenEdit opens the form seeded from the selected record.
func (w *Workflow) OpenEdit(rec v1.Record) {
	w.mode = ModeEdit
	w.subject = rec
	w.draft = w.schema.DraftFrom(rec)
	w.issued = false
}

// OpenDelete opens the confirmation prompt for the selected record.
func (w *Workflow) OpenDelete(rec v1.Record) {
	w.mode = ModeConfirmDelete
	w.subject = rec
	w.draft = nil
	w.issued = false
}

// Close dismisses the workflow, discarding the draft.
func (w *Workflow) Close() {
	w.mode = ModeClosed
	w.subject = nil
	w.draft = nil
	w.issued = false
}

func (w *Workflow) SetField(key, value string) {
	if w.draft == nil {
		return
	}
	w.draft[key] = value
}

// CycleField advances a select field to its next option.
func (w *Workflow) CycleField(key string) {
	f := w.schema.Field(key)
	if f == nil || f.Type != schema.FieldSelect || w.draft == nil {
		return
	}
	w.draft[key] = f.NextOption(w.draft[key])
}

// BuildSubmission validates the draft and describes the request to issue.
// Validation failures return before any request exists, with the draft
// intact so nothing typed is lost.
func (w *Workflow) BuildSubmission() (Submission, error) {
	if w.mode != ModeCreate && w.mode != ModeEdit {
		return Submission{}, fmt.Errorf("no form open")
	}

	body, err := w.schema.Body(w.draft)
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{Path: w.schema.Path, Body: body}
	if w.mode == ModeEdit {
		sub.ID = w.subject.Identifier()
	}
	return sub, nil
}

// ConfirmDelete arms the pending delete exactly once. The second return is
// false when no prompt is open or the prompt already fired.
func (w *Workflow) ConfirmDelete() (Deletion, bool) {
	if w.mode != ModeConfirmDelete || w.issued {
		return Deletion{}, false
	}
	w.issued = true
	return Deletion{Path: w.schema.Path, ID: w.subject.Identifier()}, true
}

// Submit issues a prepared submission and decodes the resulting record.
func (w *Workflow) Submit(ctx context.Context, sub Submission) (v1.Record, error) {
	var (
		raw []byte
		err error
	)
	if sub.ID == 0 {
		raw, err = w.api.Create(ctx, sub.Path, sub.Body)
	} else {
		raw, err = w.api.Update(ctx, sub.Path, sub.ID, sub.Body)
	}
	if err != nil {
		return nil, err
	}
	return w.schema.ParseItem(raw)
}

// Delete issues a confirmed deletion.
func (w *Workflow) Delete(ctx context.Context, del Deletion) error {
	return w.api.Remove(ctx, del.Path, del.ID)
}
