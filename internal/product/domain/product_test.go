package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/inventory/internal/errors"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewProduct(t *testing.T) {
	t.Run("Success_WithCategory", func(t *testing.T) {
		product, err := NewProduct(" Martillo ", int64Ptr(2))

		require.NoError(t, err)
		assert.Equal(t, "Martillo", product.Name)
		assert.Equal(t, int64(2), *product.CategoryID)
	})

	t.Run("Success_WithoutCategory", func(t *testing.T) {
		product, err := NewProduct("Martillo", nil)

		require.NoError(t, err)
		assert.Nil(t, product.CategoryID)
	})

	tests := []struct {
		name       string
		inputName  string
		categoryID *int64
		wantMsg    string
	}{
		{name: "MissingName", inputName: "", wantMsg: "nombre: el nombre es requerido."},
		{name: "BlankName", inputName: "  ", wantMsg: "nombre: el nombre es requerido."},
		{name: "ZeroCategory", inputName: "Martillo", categoryID: int64Ptr(0), wantMsg: "categoria_id: debe ser un entero positivo."},
		{
			name:       "BothInvalid",
			inputName:  "",
			categoryID: int64Ptr(-1),
			wantMsg:    "categoria_id: debe ser un entero positivo; nombre: el nombre es requerido.",
		},
	}

	for _, tt := range tests {
		t.Run("Error_"+tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.inputName, tt.categoryID)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.wantMsg+": invalid input", err.Error())
		})
	}
}

func TestErrCategoryNotFound(t *testing.T) {
	assert.ErrorIs(t, ErrCategoryNotFound, apperrors.ErrInvalidInput)
}
