package store

import (
	"context"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// defaultPageSize matches the page size the rendering layer requests.
const defaultPageSize = 20

// Products holds the user's product catalog: their own products, the
// current name-search results, favorites, and categories. The own-product
// and search collections paginate independently.
type Products struct {
	state
	root *Root
	deps Deps

	mine          Paginated[types.Product]
	searchResults Paginated[types.Product]
	searchQuery   string
	favorites     []types.Product
	categories    []types.ProductCategory
	loading       bool
	lastError     string
}

func newProducts(root *Root, deps Deps) *Products {
	return &Products{root: root, deps: deps}
}

// ProductsSnapshot is an atomic copy of the catalog state.
type ProductsSnapshot struct {
	Mine          Paginated[types.Product]
	SearchResults Paginated[types.Product]
	SearchQuery   string
	Favorites     []types.Product
	Categories    []types.ProductCategory
	Loading       bool
	LastError     string
}

func (s *Products) Snapshot() ProductsSnapshot {
	var snap ProductsSnapshot
	s.read(func() {
		snap.Mine = s.mine.snapshot()
		snap.SearchResults = s.searchResults.snapshot()
		snap.SearchQuery = s.searchQuery
		snap.Favorites = append([]types.Product(nil), s.favorites...)
		snap.Categories = append([]types.ProductCategory(nil), s.categories...)
		snap.Loading = s.loading
		snap.LastError = s.lastError
	})
	return snap
}

// Load fetches one page of the user's products. Replace installs the page
// as the whole list; Append concatenates for infinite scroll. Overlapping
// loads on the same collection are a caller hazard: gate on Loading.
func (s *Products) Load(ctx context.Context, page int, mode MergeMode) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	pg, err := api.ListProducts(ctx, s.deps.Transport, page, defaultPageSize)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load products")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.mine.merge(pg, mode)
	})
	return nil
}

// LoadNextPage appends the next page of the user's products; no-op when
// the server already reported the last page.
func (s *Products) LoadNextPage(ctx context.Context) error {
	var next int
	var more bool
	s.read(func() {
		next = s.mine.Page + 1
		more = s.mine.HasMore
	})
	if !more {
		return nil
	}
	return s.Load(ctx, next, Append)
}

// Search fetches one page of name-search results for query.
func (s *Products) Search(ctx context.Context, query string, page int, mode MergeMode) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
		s.searchQuery = query
	})

	pg, err := api.SearchProductsByName(ctx, s.deps.Transport, query, page, defaultPageSize)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Search failed")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.searchResults.merge(pg, mode)
	})
	return nil
}

// SearchNextPage appends the next page of results for the current query.
func (s *Products) SearchNextPage(ctx context.Context) error {
	var query string
	var next int
	var more bool
	s.read(func() {
		query = s.searchQuery
		next = s.searchResults.Page + 1
		more = s.searchResults.HasMore
	})
	if !more || query == "" {
		return nil
	}
	return s.Search(ctx, query, next, Append)
}

// ClearSearch drops the search results and query.
func (s *Products) ClearSearch() {
	s.mutate(func() {
		s.searchResults.clear()
		s.searchQuery = ""
	})
}

// LookupBarcode resolves a scanned barcode to a product. An unknown code
// returns nil, not an error.
func (s *Products) LookupBarcode(ctx context.Context, code string) (*types.Product, error) {
	pg, err := api.SearchProductsByBarcode(ctx, s.deps.Transport, code)
	if httperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(pg.Content) == 0 {
		return nil, nil
	}
	p := pg.Content[0]
	return &p, nil
}

// Create adds a product and prepends it to the local list.
func (s *Products) Create(ctx context.Context, req types.CreateProductRequest) (*types.Product, error) {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.CreateProduct(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not create the product")
		})
		return nil, err
	}
	s.commit(ep, func() {
		s.loading = false
		s.mine.Items = append([]types.Product{*p}, s.mine.Items...)
		s.mine.TotalElements++
	})
	return p, nil
}

// Update applies a partial product change and patches every local list
// that holds the product.
func (s *Products) Update(ctx context.Context, id int64, req types.UpdateProductRequest) (*types.Product, error) {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.UpdateProduct(ctx, s.deps.Transport, id, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not update the product")
		})
		return nil, err
	}
	s.commit(ep, func() {
		s.loading = false
		replaceProduct(s.mine.Items, *p)
		replaceProduct(s.searchResults.Items, *p)
		replaceProduct(s.favorites, *p)
	})
	return p, nil
}

// Delete removes a product from the server and every local list.
func (s *Products) Delete(ctx context.Context, id int64) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	if err := api.DeleteProduct(ctx, s.deps.Transport, id); err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not delete the product")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.mine.Items = removeProduct(s.mine.Items, id)
		s.searchResults.Items = removeProduct(s.searchResults.Items, id)
		s.favorites = removeProduct(s.favorites, id)
		if s.mine.TotalElements > 0 {
			s.mine.TotalElements--
		}
	})
	return nil
}

// LoadCategories fetches the category reference list.
func (s *Products) LoadCategories(ctx context.Context) error {
	ep := s.begin(func() { s.lastError = "" })

	cats, err := api.ListCategories(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not load categories") })
		return err
	}
	s.commit(ep, func() { s.categories = cats })
	return nil
}

// LoadFavorites fetches the favorites list.
func (s *Products) LoadFavorites(ctx context.Context) error {
	ep := s.begin(func() { s.lastError = "" })

	favs, err := api.ListFavorites(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not load favorites") })
		return err
	}
	s.commit(ep, func() { s.favorites = favs })
	return nil
}

// AddFavorite marks p as a favorite and appends it locally.
func (s *Products) AddFavorite(ctx context.Context, p types.Product) error {
	ep := s.begin(func() { s.lastError = "" })

	if err := api.AddFavorite(ctx, s.deps.Transport, p.ID); err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not add to favorites") })
		return err
	}
	s.commit(ep, func() {
		for _, f := range s.favorites {
			if f.ID == p.ID {
				return
			}
		}
		s.favorites = append(s.favorites, p)
	})
	return nil
}

// RemoveFavorite unmarks a favorite and removes it locally.
func (s *Products) RemoveFavorite(ctx context.Context, id int64) error {
	ep := s.begin(func() { s.lastError = "" })

	if err := api.RemoveFavorite(ctx, s.deps.Transport, id); err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not remove from favorites") })
		return err
	}
	s.commit(ep, func() { s.favorites = removeProduct(s.favorites, id) })
	return nil
}

func (s *Products) resetState() {
	s.reset(func() {
		s.mine.clear()
		s.searchResults.clear()
		s.searchQuery = ""
		s.favorites = nil
		s.categories = nil
		s.loading = false
		s.lastError = ""
	})
}

func replaceProduct(items []types.Product, p types.Product) {
	for i := range items {
		if items[i].ID == p.ID {
			items[i] = p
		}
	}
}

func removeProduct(items []types.Product, id int64) []types.Product {
	out := items[:0]
	for _, p := range items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
