package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog-backend/internal/domain/catalog"
)

type stubSKUGenerator struct {
	sku string
	err error
}

func (s *stubSKUGenerator) Generate(context.Context) (string, error) {
	return s.sku, s.err
}

func skuTestRouter(gen catalog.SKUGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(nil, nil, gen, nil, nil)
	router := gin.New()
	router.POST("/api/products/sku", h.GenerateSKU)
	return router
}

func TestGenerateSKUEndpoint(t *testing.T) {
	router := skuTestRouter(&stubSKUGenerator{sku: "PRD-20260831-ABC234"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/products/sku", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		InternalSKU string `json:"internal_sku"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.InternalSKU != "PRD-20260831-ABC234" {
		t.Fatalf("internal_sku: %q", body.InternalSKU)
	}
}

func TestGenerateSKUEndpointExhausted(t *testing.T) {
	gen := &stubSKUGenerator{
		err: catalog.NewError(catalog.CodeExhausted, "sku.generate", "sku generation exhausted after 10 attempts", nil),
	}
	router := skuTestRouter(gen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/products/sku", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", w.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Code != string(catalog.CodeExhausted) {
		t.Fatalf("error code: %q", envelope.Error.Code)
	}
}
