package views

import (
	"fmt"
	"strings"

	"termviz/internal/dataset"
	"termviz/internal/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Series         []*dataset.Series
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Selector       *selection.Selector[*dataset.Series]
	Loading        bool
	StatusMessage  string
	ResizeCount    int
	ShowEventLog   bool
	LogLines       []string
	ShowLegend     bool
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	seriesRender *SeriesRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		seriesRender: NewSeriesRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("termviz")
	if state.Loading {
		title += " " + r.styles.Dim.Render("(loading…)")
	}
	content.WriteString(title)
	content.WriteString("\n\n")

	content.WriteString(r.renderSeriesList(state))

	if state.ShowEventLog && len(state.LogLines) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderEventLog(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state))

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(content.String())
}

// renderSeriesList renders the visible window of series rows.
func (r *Renderer) renderSeriesList(state ViewState) string {
	if len(state.Series) == 0 {
		return r.styles.Dim.Render("No series yet.")
	}

	multiSelect := state.Selector != nil && state.Selector.Mode() == selection.Multiple

	start := state.ViewportOffset
	if start > len(state.Series) {
		start = len(state.Series)
	}
	end := start + state.ViewportHeight
	if end > len(state.Series) || state.ViewportHeight <= 0 {
		end = len(state.Series)
	}

	var rows []string
	for i := start; i < end; i++ {
		s := state.Series[i]
		isSelected := state.Selector != nil && state.Selector.Contains(s)
		rows = append(rows, r.seriesRender.RenderSeries(s, state.Width, i == state.Cursor, isSelected, multiSelect))
	}

	if start > 0 && len(rows) > 0 {
		rows[0] = r.styles.Dim.Render("↑ more")
	}
	if end < len(state.Series) && len(rows) > 0 {
		rows[len(rows)-1] = r.styles.Dim.Render("↓ more")
	}

	return strings.Join(rows, "\n")
}

// renderEventLog renders the recent-notifications side panel.
func (r *Renderer) renderEventLog(state ViewState) string {
	var lines []string
	for _, l := range state.LogLines {
		lines = append(lines, r.styles.LogEvent.Render(l))
	}
	width := state.Width - 6
	if width < 20 {
		width = 20
	}
	return r.styles.LogBox.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatusBar renders the selection summary and transient messages.
func (r *Renderer) renderStatusBar(state ViewState) string {
	parts := []string{}

	if state.Selector != nil {
		parts = append(parts, fmt.Sprintf("%d/%d selected", state.Selector.Count(), len(state.Series)))
		parts = append(parts, fmt.Sprintf("mode: %s", state.Selector.Mode()))
	}
	if state.ResizeCount > 0 {
		parts = append(parts, fmt.Sprintf("resizes: %d", state.ResizeCount))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	bar := r.styles.Status.Render(strings.Join(parts, " • "))
	if state.ShowLegend {
		legend := r.styles.Legend.Render("space toggle • a all • esc clear • m mode • l log • L pager • ? help • q quit")
		return bar + "\n" + legend
	}
	return bar
}
