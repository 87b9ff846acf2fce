package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "Valid", body: `{"nombre":"Herramientas"}`},
		{name: "MissingNombre", body: `{}`, wantErr: "nombre: el nombre es requerido."},
		{name: "NullNombre", body: `{"nombre":null}`, wantErr: "nombre: el nombre es requerido."},
		{name: "EmptyNombre", body: `{"nombre":""}`, wantErr: "nombre: el nombre es requerido."},
		{name: "BlankNombre", body: `{"nombre":"   "}`, wantErr: "nombre: el nombre es requerido."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CategoryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCategoryRequest_Name(t *testing.T) {
	assert.Empty(t, (&CategoryRequest{}).Name())

	name := "Pinturas"
	assert.Equal(t, "Pinturas", (&CategoryRequest{Nombre: &name}).Name())
}
