package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"scooper/internal/config"
	"scooper/internal/domain"
	"scooper/internal/layout"
	"scooper/internal/ui/filter"
	"scooper/internal/ui/input/types"
)

// Fallback terminal size used before the first WindowSizeMsg
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Focus         types.Focus
	BucketLabel   string
	BucketStale   bool
	Dropdown      filter.DropdownState
	Checked       int // option holding the chosen bucket, filter.NoIndex if none
	OptionLabels  []string
	QueryView     func(width int) string
	Results       []domain.App
	Total         int
	Applied       domain.FilterQuery
	Scanning      bool
	Buckets       int
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
}

// Frame is one rendered screen and the clickable areas in it
type Frame struct {
	Content string
	Hits    Hits
	Layout  layout.Result
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	ui      config.UISettings
	results *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(ui config.UISettings) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		ui:      ui,
		results: NewResultRenderer(styles, ui.ShowDescriptions),
	}
}

// Render produces the complete view.
// The panel parts are stacked top to bottom and clipped to the terminal.
func (r *Renderer) Render(state ViewState) Frame {
	if state.Width <= 0 {
		state.Width = defaultWidth
	}
	if state.Height <= 0 {
		state.Height = defaultHeight
	}

	title := NewBlock(r.renderTitle(state))
	bar := r.renderSearchBar(state)
	barBlock := NewBlock(bar.line)
	optionLines, optionIndexes := r.renderDropdown(state)
	dropdown := NewBlock(optionLines...)
	status := NewBlock(r.renderStatus(state))
	footer := NewBlock(state.HelpModel.View(types.Keys))

	// The result list gets whatever rows the other parts leave over
	rows := state.Height - len(title.Lines) - len(barBlock.Lines) - len(dropdown.Lines) -
		len(status.Lines) - len(footer.Lines)
	results := NewBlock(r.renderResults(state, rows)...)

	children := []layout.Measurable{title, barBlock, dropdown, status, results, footer}
	res := layout.Stack(layout.Loose(state.Width, state.Height), children)

	canvas := make([]string, state.Height)
	clip := lipgloss.NewStyle().MaxWidth(state.Width)
	for _, b := range []*Block{title, barBlock, dropdown, status, results, footer} {
		rect := b.Rect()
		for i := 0; i < rect.Height && i < len(b.Lines); i++ {
			y := rect.Y + i
			if y >= state.Height {
				break
			}
			canvas[y] = clip.Render(b.Lines[i])
		}
	}

	barY := barBlock.Rect().Y
	hits := Hits{
		Selector: bar.selector.At(barY),
		Field:    bar.field.At(barY),
		Button:   bar.button.At(barY),
		Dropdown: dropdown.Rect(),
	}
	selW := selectorWidth(r.ui)
	for row, idx := range optionIndexes {
		rect := layout.Rect{X: 0, Y: dropdown.Rect().Y + row, Width: selW, Height: 1}
		if rect.Y >= state.Height {
			break
		}
		hits.Options = append(hits.Options, OptionHit{Index: idx, Rect: rect})
	}
	hits.Dropdown.Width = selW

	return Frame{
		Content: strings.Join(canvas, "\n"),
		Hits:    hits,
		Layout:  res,
	}
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("scooper")

	var indicators []string
	if state.Scanning {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%s Scanning", spinner[frame])))
	}
	if state.Total > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d of %d apps", len(state.Results), state.Total)))
	}
	if state.Buckets > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d buckets", state.Buckets)))
	}
	if filterText := describeQuery(state.Applied); filterText != "" {
		indicators = append(indicators, r.styles.Filter.Render("["+filterText+"]"))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// describeQuery summarises an applied query for the title line
func describeQuery(q domain.FilterQuery) string {
	var parts []string
	if !q.IsAll() {
		parts = append(parts, "bucket: "+q.Bucket)
	}
	if text := strings.TrimSpace(q.Text); text != "" {
		parts = append(parts, "query: "+text)
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) renderStatus(state ViewState) string {
	switch {
	case state.StatusMessage != "" && state.StatusIsError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case state.StatusMessage != "":
		return r.styles.Status.Render(state.StatusMessage)
	case state.BucketStale:
		return r.styles.StatusError.Render(fmt.Sprintf("bucket %q is no longer available", state.BucketLabel))
	}
	return ""
}

func (r *Renderer) renderResults(state ViewState, rows int) []string {
	if rows <= 0 {
		return nil
	}
	switch {
	case state.Scanning && state.Total == 0:
		return []string{r.styles.Dim.Render("Reading buckets...")}
	case state.Total == 0:
		return []string{r.styles.Dim.Render("No apps found. Press ctrl+r to rescan.")}
	case len(state.Results) == 0:
		return []string{r.styles.Dim.Render("No apps match.")}
	}
	return r.results.RenderList(state.Results, state.Width, rows, state.Applied.Text)
}
