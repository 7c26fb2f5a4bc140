package store

import "github.com/l423r/mealrush-mobile-v2-sub001/internal/types"

// MergeMode selects how a fetched page lands in a collection.
type MergeMode int

const (
	// Replace discards the existing items and installs the page.
	Replace MergeMode = iota
	// Append concatenates the page's items after the existing ones
	// (infinite scroll).
	Append
)

// Paginated is a locally-held view over a server-paginated collection.
// HasMore always mirrors the server's "last page" flag; it is never
// derived from local counts.
type Paginated[T any] struct {
	Items         []T
	Page          int
	PageSize      int
	TotalElements int
	TotalPages    int
	HasMore       bool
}

func (p *Paginated[T]) merge(pg *types.Page[T], mode MergeMode) {
	if mode == Replace {
		p.Items = append([]T(nil), pg.Content...)
	} else {
		p.Items = append(p.Items, pg.Content...)
	}
	p.Page = pg.Page
	p.PageSize = pg.Size
	p.TotalElements = pg.TotalElements
	p.TotalPages = pg.TotalPages
	p.HasMore = !pg.Last
}

func (p *Paginated[T]) clear() {
	*p = Paginated[T]{}
}

// snapshot returns a copy whose Items slice is independent of the store's.
func (p *Paginated[T]) snapshot() Paginated[T] {
	out := *p
	out.Items = append([]T(nil), p.Items...)
	return out
}
