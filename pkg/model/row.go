package model

import (
	"fmt"
	"strings"

	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/lexhub-io/lexadmin/pkg/text"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
	"github.com/lexhub-io/lexadmin/pkg/ui"
	"github.com/lexhub-io/lexadmin/pkg/workflow"
)

const (
	verticalLine = "│"
)

// colorizedStatus styles the record's lifecycle status, when it has one.
func colorizedStatus(rec v1.Record, focused bool) string {
	status := rec.Fields()["status"]
	if status == "" {
		return ""
	}
	if !focused {
		return dimBrightGrayFg(status)
	}
	return ui.StatusFg(status)(status)
}

func rowView(b *strings.Builder, m *browserModel, index int, rec v1.Record) {
	var (
		truncateTo = uint(m.common.width - browserHorizontalPadding*2)
		gutter     string
		title      = truncate.StringWithTail(rec.Display(), truncateTo, ellipsis)
		summary    = truncate.StringWithTail(rec.Summary(), truncateTo, ellipsis)
		status     = colorizedStatus(rec, true)
	)

	isSelected := index == m.cursor
	isSearching := m.searching
	searchText := m.searchInput.Value()

	if isSelected && !isSearching {
		// Selected item

		if m.wf.Mode() == workflow.ModeConfirmDelete && m.wf.Subject() == rec {
			gutter = faintRedFg(verticalLine)
			title = redFg(title)
			summary = faintRedFg(summary)
			status = faintRedFg(rec.Fields()["status"])
		} else {
			gutter = dullFuchsiaFg(verticalLine)
			if m.ctrl.Query().Search() != "" {
				s := termenv.Style{}.Foreground(lib.Fuschia.Color())
				title = text.StyleFilteredText(title, m.ctrl.Query().Search(), s)
			} else {
				title = fuchsiaFg(title)
			}
			summary = dullFuchsiaFg(summary)
		}
	} else {
		// Regular (non-selected) items

		gutter = " "

		if isSearching && searchText == "" {
			title = dimNormalFg(title)
			summary = dimBrightGrayFg(summary)
			status = colorizedStatus(rec, false)
		} else {
			s := termenv.Style{}.Foreground(lib.NewColorPair("#dddddd", "#1a1a1a").Color())
			title = text.StyleFilteredText(title, searchText, s)
			summary = dimBrightGrayFg(summary)
		}
	}

	fmt.Fprintf(b, "%s %s\n", gutter, title)
	if status != "" {
		fmt.Fprintf(b, "%s %s %s", gutter, status, summary)
	} else {
		fmt.Fprintf(b, "%s %s", gutter, summary)
	}
}
