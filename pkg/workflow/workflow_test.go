package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

// fakeAPI counts mutations so tests can assert a call never happened.
type fakeAPI struct {
	creates int
	updates int
	removes int

	lastPath string
	lastID   v1.ID
	lastBody interface{}

	response []byte
	err      error
}

func (f *fakeAPI) Create(_ context.Context, path string, body interface{}) ([]byte, error) {
	f.creates++
	f.lastPath = path
	f.lastBody = body
	return f.response, f.err
}

func (f *fakeAPI) Update(_ context.Context, path string, id v1.ID, body interface{}) ([]byte, error) {
	f.updates++
	f.lastPath = path
	f.lastID = id
	f.lastBody = body
	return f.response, f.err
}

func (f *fakeAPI) Remove(_ context.Context, path string, id v1.ID) error {
	f.removes++
	f.lastPath = path
	f.lastID = id
	return f.err
}

func TestInvalidDraftNeverReachesNetwork(t *testing.T) {
	api := &fakeAPI{}
	w := New(schema.Banks, api)

	w.OpenCreate()
	w.SetField("swift_code", "EQBLKENA")
	// name stays empty, so the draft is invalid.

	_, err := w.BuildSubmission()
	require.Error(t, err)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	assert.Zero(t, api.creates+api.updates+api.removes)
	assert.Equal(t, "EQBLKENA", w.Field("swift_code"), "a rejected draft keeps what was typed")
	assert.Equal(t, ModeCreate, w.Mode(), "the form stays open for correction")
}

func TestSubmitRoutesCreateAndUpdate(t *testing.T) {
	api := &fakeAPI{response: []byte(`{"id": 9, "name": "Equity", "status": "ACTIVE"}`)}
	w := New(schema.Banks, api)

	w.OpenCreate()
	w.SetField("name", "Equity")
	sub, err := w.BuildSubmission()
	require.NoError(t, err)
	assert.Equal(t, v1.ID(0), sub.ID)

	rec, err := w.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 0, api.updates)
	assert.Equal(t, "/api/admin/banks", api.lastPath)
	assert.Equal(t, v1.ID(9), rec.Identifier())

	w.OpenEdit(rec)
	w.SetField("name", "Equity Group")
	sub, err = w.BuildSubmission()
	require.NoError(t, err)
	assert.Equal(t, v1.ID(9), sub.ID)

	_, err = w.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 1, api.updates)
	assert.Equal(t, v1.ID(9), api.lastID)
}

func TestConfirmDeleteFiresOnce(t *testing.T) {
	api := &fakeAPI{}
	w := New(schema.Banks, api)

	w.OpenDelete(&v1.Bank{ID: 4, Name: "KCB"})

	del, ok := w.ConfirmDelete()
	require.True(t, ok)
	assert.Equal(t, v1.ID(4), del.ID)
	assert.Equal(t, "/api/admin/banks", del.Path)

	_, ok = w.ConfirmDelete()
	assert.False(t, ok, "a second confirm on the same prompt must not arm again")

	require.NoError(t, w.Delete(context.Background(), del))
	assert.Equal(t, 1, api.removes)
	assert.Equal(t, v1.ID(4), api.lastID)
}

func TestConfirmDeleteRequiresOpenPrompt(t *testing.T) {
	w := New(schema.Banks, &fakeAPI{})

	_, ok := w.ConfirmDelete()
	assert.False(t, ok)

	w.OpenCreate()
	_, ok = w.ConfirmDelete()
	assert.False(t, ok, "an open form is not a delete prompt")
}

func TestOpenEditSeedsDraftFromRecord(t *testing.T) {
	w := New(schema.Banks, &fakeAPI{})

	w.OpenEdit(&v1.Bank{ID: 2, Name: "Absa", ShortName: "ABSA", Status: "INACTIVE"})

	assert.Equal(t, "Absa", w.Field("name"))
	assert.Equal(t, "ABSA", w.Field("short_name"))
	assert.Equal(t, "INACTIVE", w.Field("status"))
}

func TestCycleFieldOnlyTouchesSelects(t *testing.T) {
	w := New(schema.Banks, &fakeAPI{})
	w.OpenCreate()

	w.CycleField("status")
	assert.Equal(t, "INACTIVE", w.Field("status"))
	w.CycleField("status")
	assert.Equal(t, "ACTIVE", w.Field("status"))

	w.SetField("name", "Stanbic")
	w.CycleField("name")
	assert.Equal(t, "Stanbic", w.Field("name"), "text fields never cycle")
}

func TestSubmitSurfacesServerError(t *testing.T) {
	api := &fakeAPI{err: errors.New("409 duplicate swift code")}
	w := New(schema.Banks, api)

	w.OpenCreate()
	w.SetField("name", "Equity")
	sub, err := w.BuildSubmission()
	require.NoError(t, err)

	_, err = w.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Equal(t, ModeCreate, w.Mode(), "server failures leave the form open")
	assert.Equal(t, "Equity", w.Field("name"))
}

func TestCloseDiscardsDraft(t *testing.T) {
	w := New(schema.Banks, &fakeAPI{})
	w.OpenCreate()
	w.SetField("name", "Equity")

	w.Close()

	assert.Equal(t, ModeClosed, w.Mode())
	assert.Nil(t, w.Draft())
	assert.Nil(t, w.Subject())
}
