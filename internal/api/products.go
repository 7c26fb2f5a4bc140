package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// ListProducts returns one page of the user's products.
func ListProducts(ctx context.Context, tc *transport.Client, page, size int) (*types.Page[types.Product], error) {
	var out types.Page[types.Product]
	if err := tc.Get(ctx, "list products", epProducts, pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchProductsByName returns one page of name matches.
func SearchProductsByName(ctx context.Context, tc *transport.Client, name string, page, size int) (*types.Page[types.Product], error) {
	q := pageQuery(page, size)
	q.Set("name", name)
	var out types.Page[types.Product]
	if err := tc.Get(ctx, "search products", epProductsByName, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchProductsByBarcode looks a product up by its EAN/UPC code.
func SearchProductsByBarcode(ctx context.Context, tc *transport.Client, code string) (*types.Page[types.Product], error) {
	q := url.Values{}
	q.Set("barcode", code)
	var out types.Page[types.Product]
	if err := tc.Get(ctx, "search by barcode", epProductBarcode, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct adds a user-defined product.
func CreateProduct(ctx context.Context, tc *transport.Client, req types.CreateProductRequest) (*types.Product, error) {
	var out types.Product
	if err := tc.Post(ctx, "create product", epProducts, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct applies a partial update to a product.
func UpdateProduct(ctx context.Context, tc *transport.Client, id int64, req types.UpdateProductRequest) (*types.Product, error) {
	var out types.Product
	if err := tc.Put(ctx, "update product", fmt.Sprintf("%s/%d", epProducts, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a user-defined product.
func DeleteProduct(ctx context.Context, tc *transport.Client, id int64) error {
	return tc.Delete(ctx, "delete product", fmt.Sprintf("%s/%d", epProducts, id))
}

// ListCategories returns the server's product categories.
func ListCategories(ctx context.Context, tc *transport.Client) ([]types.ProductCategory, error) {
	var out types.Page[types.ProductCategory]
	if err := tc.Get(ctx, "list categories", epCategories, nil, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

// ListFavorites returns the user's favorite products.
func ListFavorites(ctx context.Context, tc *transport.Client) ([]types.Product, error) {
	var out types.Page[types.Product]
	if err := tc.Get(ctx, "list favorites", epFavorites, nil, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

// AddFavorite marks a product as favorite.
func AddFavorite(ctx context.Context, tc *transport.Client, productID int64) error {
	return tc.Post(ctx, "add favorite", fmt.Sprintf("%s/%d", epFavorites, productID), nil, nil)
}

// RemoveFavorite unmarks a favorite product.
func RemoveFavorite(ctx context.Context, tc *transport.Client, productID int64) error {
	return tc.Delete(ctx, "remove favorite", fmt.Sprintf("%s/%d", epFavorites, productID))
}
