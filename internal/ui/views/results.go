package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scooper/internal/domain"
	"scooper/internal/logic"
)

// Result list column widths
const (
	markerWidth  = 2
	nameWidth    = 24
	versionWidth = 14
	bucketWidth  = 12
)

// ResultRenderer renders rows of the result list
type ResultRenderer struct {
	styles           *Styles
	showDescriptions bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, showDescriptions bool) *ResultRenderer {
	return &ResultRenderer{
		styles:           styles,
		showDescriptions: showDescriptions,
	}
}

// RenderApp renders one app as a single line at most width cells wide
func (r *ResultRenderer) RenderApp(app domain.App, width int, searchText string) string {
	var parts []string

	// Installed marker
	if app.Installed {
		parts = append(parts, r.styles.Installed.Render("●")+" ")
	} else {
		parts = append(parts, strings.Repeat(" ", markerWidth))
	}

	name := runewidth.FillRight(runewidth.Truncate(app.Name, nameWidth-1, "…"), nameWidth)
	parts = append(parts, r.highlight(name, searchText))

	version := runewidth.FillRight(runewidth.Truncate(app.Version, versionWidth-1, "…"), versionWidth)
	parts = append(parts, r.styles.Version.Render(version))

	bucket := app.Bucket
	if bucket == "" {
		bucket = "?"
	}
	bucketText := runewidth.FillRight(runewidth.Truncate(bucket, bucketWidth-1, "…"), bucketWidth)
	parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(BucketColor(app.Bucket))).Render(bucketText))

	if r.showDescriptions {
		used := markerWidth + nameWidth + versionWidth + bucketWidth
		if rest := width - used; rest > 1 && app.Description != "" {
			parts = append(parts, r.styles.Dim.Render(runewidth.Truncate(app.Description, rest, "…")))
		}
	}

	return strings.Join(parts, "")
}

// RenderList renders at most rows lines of apps
func (r *ResultRenderer) RenderList(apps []domain.App, width, rows int, searchText string) []string {
	if rows <= 0 || len(apps) == 0 {
		return nil
	}

	shown := apps
	more := 0
	if len(apps) > rows {
		shown = apps[:rows-1]
		more = len(apps) - len(shown)
	}

	lines := make([]string, 0, len(shown)+1)
	for _, app := range shown {
		lines = append(lines, r.RenderApp(app, width, searchText))
	}
	if more > 0 {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("  … and %d more", more)))
	}
	return lines
}

// highlight marks the first case-insensitive match of the search term in s
func (r *ResultRenderer) highlight(s, queryText string) string {
	term, _ := logic.SearchTerm(queryText)
	if term == "" {
		return s
	}
	lower := strings.ToLower(s)
	if len(lower) != len(s) {
		return s
	}
	idx := strings.Index(lower, term)
	if idx < 0 {
		return s
	}
	end := idx + len(term)
	return s[:idx] + r.styles.Highlight.Render(s[idx:end]) + s[end:]
}
