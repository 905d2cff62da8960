package logic

import "scooper/internal/domain"

// FilterApplier accepts filter requests from the search panel
type FilterApplier interface {
	ApplyFilters(query domain.FilterQuery)
}
