package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexhub-io/lexadmin/pkg/controller"
	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
	"github.com/lexhub-io/lexadmin/pkg/upload"
	"github.com/lexhub-io/lexadmin/pkg/workflow"
)

// Navigation messages.
type backToHomeMsg struct{}
type openDetailMsg struct {
	schema *schema.Schema
	record v1.Record
}
type closeDetailMsg struct{}
type openUploadMsg struct{}
type closeUploadMsg struct{}

// listResultMsg resolves one stamped fetch. The epoch travels with the
// result so the controller can discard responses that arrive out of order.
type listResultMsg struct {
	resource string
	epoch    uint64
	records  []v1.Record
	meta     v1.ListMeta
	err      error
}

type statsResultMsg struct {
	resource string
	stats    map[string]interface{}
	err      error
}

// debounceSettledMsg fires when search input has been quiet for the
// debounce window. The token identifies which edit scheduled it.
type debounceSettledMsg struct {
	resource string
	token    int
}

type savedMsg struct {
	resource string
	record   v1.Record
	created  bool
}

type deletedMsg struct {
	resource string
	id       v1.ID
}

type mutationFailedMsg struct {
	resource string
	err      error
}

type uploadResultMsg struct {
	path   string
	result *upload.Result
	err    error
}

type statusMessageTimeoutMsg string

func (m *commonModel) fetchList(sch *schema.Schema, fetch controller.Fetch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
		defer cancel()

		raw, err := m.client.List(ctx, sch.Path, fetch.Params)
		if err != nil {
			return listResultMsg{resource: sch.Resource, epoch: fetch.Epoch, err: err}
		}

		records, meta, err := sch.ParseList(raw)
		return listResultMsg{
			resource: sch.Resource,
			epoch:    fetch.Epoch,
			records:  records,
			meta:     meta,
			err:      err,
		}
	}
}

func (m *commonModel) fetchStats(sch *schema.Schema) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
		defer cancel()

		stats, err := m.client.Stats(ctx, sch.StatsPath)
		return statsResultMsg{resource: sch.Resource, stats: stats, err: err}
	}
}

func settleCmd(resource string, token int, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return debounceSettledMsg{resource: resource, token: token}
	})
}

func (m *commonModel) submit(wf *workflow.Workflow, resource string, sub workflow.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
		defer cancel()

		rec, err := wf.Submit(ctx, sub)
		if err != nil {
			return mutationFailedMsg{resource: resource, err: err}
		}
		return savedMsg{resource: resource, record: rec, created: sub.ID == 0}
	}
}

func (m *commonModel) delete(wf *workflow.Workflow, resource string, del workflow.Deletion) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
		defer cancel()

		if err := wf.Delete(ctx, del); err != nil {
			return mutationFailedMsg{resource: resource, err: err}
		}
		return deletedMsg{resource: resource, id: del.ID}
	}
}

func (m *commonModel) uploadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
		defer cancel()

		res, err := upload.Send(ctx, m.client, path)
		return uploadResultMsg{path: path, result: res, err: err}
	}
}

func waitForStatusMessageTimeout(resource string, t *time.Timer) tea.Cmd {
	return func() tea.Msg {
		<-t.C
		return statusMessageTimeoutMsg(resource)
	}
}
