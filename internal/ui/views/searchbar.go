package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"scooper/internal/config"
	"scooper/internal/ui/filter"
	"scooper/internal/ui/input/types"
)

const (
	minSelectorWidth = 6
	gap              = 1
	maxDropdownRows  = 8
)

// searchBar is the rendered search row plus the columns of its parts
type searchBar struct {
	line     string
	selector Span
	field    Span
	button   Span
}

// selectorWidth returns the width of the bucket selector in cells
func selectorWidth(ui config.UISettings) int {
	if ui.SelectorWidth < minSelectorWidth {
		return minSelectorWidth
	}
	return ui.SelectorWidth
}

// fieldWidth sizes the query field between the selector and the button
func fieldWidth(ui config.UISettings, total, selW, btnW int) int {
	w := int(float64(total) * ui.QueryWidthRatio)
	if w < ui.QueryMinWidth {
		w = ui.QueryMinWidth
	}
	if remaining := total - selW - btnW - 2*gap; w > remaining {
		w = remaining
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (r *Renderer) renderSearchBar(state ViewState) searchBar {
	ui := r.ui
	selW := selectorWidth(ui)

	label := ui.SearchLabel
	if label == "" {
		label = "Search"
	}
	btnText := " " + label + " "
	btnW := runewidth.StringWidth(btnText)
	fieldW := fieldWidth(ui, state.Width, selW, btnW)

	// Selector: " label…▾ "
	labelW := selW - 3
	text := " " + runewidth.FillRight(runewidth.Truncate(state.BucketLabel, labelW, "…"), labelW) + "▾ "
	selStyle := r.styles.Selector
	switch {
	case state.BucketStale:
		selStyle = r.styles.Stale
	case state.Focus == types.FocusSelector || state.Dropdown.Open:
		selStyle = r.styles.SelectorFocus
	}

	fieldStyle := r.styles.Field
	if state.Focus == types.FocusQuery {
		fieldStyle = r.styles.FieldFocus
	}
	query := ""
	if state.QueryView != nil {
		// The cursor takes one cell past the text width
		query = state.QueryView(fieldW - 1)
	}

	btnStyle := r.styles.Button
	if state.Focus == types.FocusButton {
		btnStyle = r.styles.ButtonFocus
	}

	spacer := strings.Repeat(" ", gap)
	bar := searchBar{
		selector: Span{X: 0, Width: selW},
		field:    Span{X: selW + gap, Width: fieldW},
		button:   Span{X: selW + gap + fieldW + gap, Width: btnW},
	}
	bar.line = selStyle.Render(text) +
		spacer +
		fieldStyle.Width(fieldW).MaxWidth(fieldW).Render(query) +
		spacer +
		btnStyle.Render(btnText)
	return bar
}

// renderDropdown returns the visible option lines and the option index of each row
func (r *Renderer) renderDropdown(state ViewState) ([]string, []int) {
	if !state.Dropdown.Open || len(state.OptionLabels) == 0 {
		return nil, nil
	}

	selW := selectorWidth(r.ui)
	rows := len(state.OptionLabels)
	if rows > maxDropdownRows {
		rows = maxDropdownRows
	}

	// Keep the hovered option in view
	start := 0
	if state.Dropdown.Hover >= rows {
		start = state.Dropdown.Hover - rows + 1
	}

	lines := make([]string, 0, rows)
	indexes := make([]int, 0, rows)
	for i := start; i < start+rows && i < len(state.OptionLabels); i++ {
		marker := " "
		if i == state.Checked {
			marker = "✓"
		}
		textW := selW - 2
		text := marker + runewidth.FillRight(runewidth.Truncate(state.OptionLabels[i], textW, "…"), textW) + " "

		style := r.styles.Option
		switch {
		case i == state.Dropdown.Hover:
			style = r.styles.OptionHover
		case i == state.Checked:
			style = r.styles.OptionSelected
		}
		lines = append(lines, style.Render(text))
		indexes = append(indexes, i)
	}
	return lines, indexes
}

// OptionLabels returns the display labels of every option in c
func OptionLabels(c *filter.Control) []string {
	labels := make([]string, len(c.Options()))
	for i := range labels {
		labels[i] = c.OptionLabel(i)
	}
	return labels
}
