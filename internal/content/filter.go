package content

import "strings"

// FacetAll disables a facet filter.
const FacetAll = "all"

// Filterable is implemented by catalog entries that can be searched and faceted.
type Filterable interface {
	// SearchFields are matched by free-text search.
	SearchFields() []string
	// TagValues must contain every selected tag.
	TagValues() []string
	// FacetValue returns the entry's value for a named facet, or "" if it has none.
	FacetValue(name string) string
}

// Query selects entries from a catalog. The zero value matches everything.
type Query struct {
	Search string
	Tags   []string
	Facets map[string]string
}

// Filter returns the items matching every part of q, preserving input order:
// the search text must appear (case-insensitively) in at least one search field,
// every selected tag must be present, and each facet must match exactly unless
// it is empty or "all".
func Filter[T Filterable](items []T, q Query) []T {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	tags := normalizeAll(q.Tags)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesSearch(item, search) && hasAllTags(item, tags) && matchesFacets(item, q.Facets) {
			out = append(out, item)
		}
	}
	return out
}

func matchesSearch(item Filterable, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func hasAllTags(item Filterable, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	have := make(map[string]struct{})
	for _, tag := range item.TagValues() {
		have[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	for _, tag := range selected {
		if _, ok := have[tag]; !ok {
			return false
		}
	}
	return true
}

func matchesFacets(item Filterable, facets map[string]string) bool {
	for name, want := range facets {
		want = strings.TrimSpace(want)
		if want == "" || strings.EqualFold(want, FacetAll) {
			continue
		}
		if !strings.EqualFold(item.FacetValue(name), want) {
			return false
		}
	}
	return true
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// distinct collects the non-empty values of a facet in first-seen order.
func distinct[T Filterable](items []T, facet string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		v := item.FacetValue(facet)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// distinctTags collects every tag in first-seen order.
func distinctTags[T Filterable](items []T) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		for _, tag := range item.TagValues() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
