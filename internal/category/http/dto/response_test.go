package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
)

func TestMapCategoriesToResponse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		body, err := json.Marshal(MapCategoriesToResponse(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("WithCategories", func(t *testing.T) {
		body, err := json.Marshal(MapCategoriesToResponse([]*categoryDomain.Category{
			{ID: 2, Name: "Tools"},
		}))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":2,"nombre":"Tools"}]`, string(body))
	})
}
