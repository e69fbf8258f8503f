package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/http/response"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

type ProductHandler struct {
	products catalog.ProductAggregate
	linkage  catalog.LinkageAggregate
	skus     catalog.SKUGenerator

	productRepo repos.ProductRepo
	itemRepo    repos.SupplierItemRepo
}

func NewProductHandler(
	products catalog.ProductAggregate,
	linkage catalog.LinkageAggregate,
	skus catalog.SKUGenerator,
	productRepo repos.ProductRepo,
	itemRepo repos.SupplierItemRepo,
) *ProductHandler {
	return &ProductHandler{
		products:    products,
		linkage:     linkage,
		skus:        skus,
		productRepo: productRepo,
		itemRepo:    itemRepo,
	}
}

type createProductRequest struct {
	Name           string     `json:"name"`
	InternalSKU    *string    `json:"internal_sku"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Status         *string    `json:"status"`
	SupplierItemID *uuid.UUID `json:"supplier_item_id"`
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	res, err := h.products.CreateProduct(c.Request.Context(), catalog.CreateProductInput{
		Name:           req.Name,
		InternalSKU:    req.InternalSKU,
		CategoryID:     req.CategoryID,
		Status:         req.Status,
		SupplierItemID: req.SupplierItemID,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"product":      res.Product,
		"linked_items": res.LinkedItems,
	})
}

type matchRequest struct {
	SupplierItemID uuid.UUID `json:"supplier_item_id"`
	Action         string    `json:"action"`
}

// POST /api/products/:id/match
func (h *ProductHandler) Match(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	res, err := h.linkage.Match(c.Request.Context(), catalog.MatchInput{
		ProductID:      productID,
		SupplierItemID: req.SupplierItemID,
		Action:         catalog.MatchAction(req.Action),
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"product":      res.Product,
		"linked_items": res.LinkedItems,
	})
}

// POST /api/products/sku
func (h *ProductHandler) GenerateSKU(c *gin.Context) {
	sku, err := h.skus.Generate(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"internal_sku": sku})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	p, err := h.productRepo.GetByID(dbc, productID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	if p == nil {
		response.RespondError(c, http.StatusNotFound, "product_not_found", nil)
		return
	}
	items, err := h.itemRepo.ListByProductID(dbc, p.ID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"product":      p,
		"linked_items": items,
	})
}
