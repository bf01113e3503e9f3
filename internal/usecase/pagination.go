package usecase

import (
	"fmt"
	"strings"
)

// PageMeta is the pagination metadata carried by every page envelope.
type PageMeta struct {
	Count        int
	CountTotal   int
	Page         int
	PageTotal    int
	ItemsPerPage int
}

// PageBoundPolicy selects which metadata field bounds the page loop 1..=N.
//
// PageBoundItemsPerPage reads N from items_per_page. That field is a page
// size, not a page count, so the loop can fetch too few or too many pages;
// it is still the default because it is what the job has always done.
// PageBoundPageTotal reads N from page_total. PageBoundCountTotal derives N
// as ceil(count_total / items_per_page).
type PageBoundPolicy string

const (
	PageBoundItemsPerPage PageBoundPolicy = "items_per_page"
	PageBoundPageTotal    PageBoundPolicy = "page_total"
	PageBoundCountTotal   PageBoundPolicy = "count_total"
)

const DefaultPageBoundPolicy = PageBoundItemsPerPage

func ParsePageBoundPolicy(raw string) (PageBoundPolicy, error) {
	value := PageBoundPolicy(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case "":
		return DefaultPageBoundPolicy, nil
	case PageBoundItemsPerPage, PageBoundPageTotal, PageBoundCountTotal:
		return value, nil
	default:
		return "", fmt.Errorf("invalid page bound policy %q: valid values are %s, %s, %s", raw, PageBoundItemsPerPage, PageBoundPageTotal, PageBoundCountTotal)
	}
}

// Bound returns the last page number to fetch. Unknown policies fall back
// to the default.
func (p PageBoundPolicy) Bound(meta PageMeta) int {
	var bound int
	switch p {
	case PageBoundPageTotal:
		bound = meta.PageTotal
	case PageBoundCountTotal:
		if meta.ItemsPerPage <= 0 {
			return 0
		}
		bound = (meta.CountTotal + meta.ItemsPerPage - 1) / meta.ItemsPerPage
	default:
		bound = meta.ItemsPerPage
	}
	if bound < 0 {
		return 0
	}
	return bound
}

func (p PageBoundPolicy) String() string {
	if p == "" {
		return string(DefaultPageBoundPolicy)
	}
	return string(p)
}
