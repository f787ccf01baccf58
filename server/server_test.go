package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func productRequest(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(GenerateRequest{
		Entities: []model.EntityModel{
			{
				Name: "Product",
				Properties: []model.PropertyModel{
					{Name: "Id", Type: model.TypeInt, IsKey: true},
					{Name: "Name", Type: model.TypeString, IsRequired: true},
				},
			},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestGenerateEndpoint(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", productRequest(t)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Artifacts []model.GeneratedArtifact `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Artifacts)

	var paths []string
	for _, a := range resp.Artifacts {
		paths = append(paths, a.RelativePath)
		assert.Equal(t, len(a.Content), a.SizeBytes)
	}
	assert.Contains(t, paths, "Domain/Entities/Product.go")
	assert.Contains(t, paths, "Api/Controllers/ProductsController.go")
}

func TestGenerateEndpointRejectsBadInput(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"entities": []}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArchiveEndpoint(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate/archive", productRequest(t)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["Domain/Entities/Product.go"])
	assert.True(t, names["go.mod"])
}

func TestHealthEndpoint(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
