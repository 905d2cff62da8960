package logic

import (
	"sort"
	"strings"

	"scooper/internal/domain"
)

// Query prefixes restricting results to installed or available apps
const (
	prefixInstalled = "installed:"
	prefixAvailable = "available:"
)

// Scope restricts a search to installed or available apps
type Scope int

const (
	ScopeAll Scope = iota
	ScopeInstalled
	ScopeAvailable
)

// SearchTerm splits query text into its lowercase search term and scope prefix
func SearchTerm(text string) (string, Scope) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(text, prefixInstalled):
		return strings.TrimSpace(strings.TrimPrefix(text, prefixInstalled)), ScopeInstalled
	case strings.HasPrefix(text, prefixAvailable):
		return strings.TrimSpace(strings.TrimPrefix(text, prefixAvailable)), ScopeAvailable
	}
	return text, ScopeAll
}

// MatchesFilter checks if an app matches the given filter query
func MatchesFilter(app domain.App, query domain.FilterQuery) bool {
	if !query.IsAll() && app.Bucket != query.Bucket {
		return false
	}

	text, scope := SearchTerm(query.Text)
	switch scope {
	case ScopeInstalled:
		if !app.Installed {
			return false
		}
	case ScopeAvailable:
		if app.Installed {
			return false
		}
	}

	if text == "" {
		return true
	}

	return strings.Contains(strings.ToLower(app.Name), text) ||
		strings.Contains(strings.ToLower(app.Description), text)
}

// FilterApps returns the apps matching query, installed apps first, then by name
func FilterApps(apps []domain.App, query domain.FilterQuery) []domain.App {
	result := make([]domain.App, 0, len(apps))
	for _, app := range apps {
		if MatchesFilter(app, query) {
			result = append(result, app)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Installed != result[j].Installed {
			return result[i].Installed
		}
		ni, nj := strings.ToLower(result[i].Name), strings.ToLower(result[j].Name)
		if ni != nj {
			return ni < nj
		}
		return result[i].Bucket < result[j].Bucket
	})

	return result
}
