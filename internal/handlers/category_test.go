package handlers_test

import (
	"context"
	"testing"

	"github.com/serroba/marketplace-routes/internal/category"
	"github.com/serroba/marketplace-routes/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	resp, err := handlers.ListCategories(context.Background(), &struct{}{})

	require.NoError(t, err)
	require.Len(t, resp.Body.Categories, len(category.All()))
	assert.Equal(t, "electronics", resp.Body.Categories[0].Key)
	assert.Equal(t, "icons/smartphone.svg", resp.Body.Categories[0].Icon)
	assert.Equal(t, "other", resp.Body.Categories[len(resp.Body.Categories)-1].Key)
}
