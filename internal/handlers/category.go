package handlers

import (
	"context"

	"github.com/serroba/marketplace-routes/internal/category"
)

// ListCategories returns every listing category with its icon.
func ListCategories(_ context.Context, _ *struct{}) (*ListCategoriesResponse, error) {
	all := category.All()

	resp := &ListCategoriesResponse{}
	resp.Body.Categories = make([]CategoryItem, 0, len(all))

	for _, c := range all {
		resp.Body.Categories = append(resp.Body.Categories, CategoryItem{
			Key:  string(c.Key),
			Icon: string(c.Icon),
		})
	}

	return resp, nil
}
