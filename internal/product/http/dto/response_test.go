package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

func TestMapProductsToResponse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		body, err := json.Marshal(MapProductsToResponse(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("WithProducts", func(t *testing.T) {
		categoryID := int64(2)
		body, err := json.Marshal(MapProductsToResponse([]*productDomain.Product{
			{ID: 1, Name: "Widget", CategoryID: &categoryID},
			{ID: 2, Name: "Suelto"},
		}))
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"id":1,"nombre":"Widget","categoria_id":2},{"id":2,"nombre":"Suelto","categoria_id":null}]`,
			string(body),
		)
	})
}
