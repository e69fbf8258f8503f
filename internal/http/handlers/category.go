package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/http/response"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

type CategoryHandler struct {
	categories   catalog.CategoryAggregate
	categoryRepo repos.CategoryRepo
}

func NewCategoryHandler(categories catalog.CategoryAggregate, categoryRepo repos.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{categories: categories, categoryRepo: categoryRepo}
}

// GET /api/categories/pending
func (h *CategoryHandler) ListPendingReview(c *gin.Context) {
	limit := 100
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	rows, err := h.categoryRepo.ListPendingReview(dbctx.Context{Ctx: c.Request.Context()}, limit)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": rows})
}

// POST /api/categories/:id/approve
func (h *CategoryHandler) Approve(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}
	res, err := h.categories.Approve(c.Request.Context(), catalog.ApproveCategoryInput{CategoryID: categoryID})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": res.Category})
}

type bulkApproveRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// POST /api/categories/approve
func (h *CategoryHandler) BulkApprove(c *gin.Context) {
	var req bulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	res, err := h.categories.BulkApprove(c.Request.Context(), catalog.BulkApproveCategoriesInput{CategoryIDs: req.CategoryIDs})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"approved": res.Approved})
}

type mergeRequest struct {
	TargetID uuid.UUID `json:"target_id"`
}

// POST /api/categories/:id/merge
func (h *CategoryHandler) Merge(c *gin.Context) {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	res, err := h.categories.Merge(c.Request.Context(), catalog.MergeCategoriesInput{
		SourceID: sourceID,
		TargetID: req.TargetID,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"affected_products":   res.AffectedProducts,
		"reparented_children": res.ReparentedChildren,
		"summary":             res.Summary,
	})
}

type renameRequest struct {
	NewName string `json:"new_name"`
}

// POST /api/categories/:id/rename
func (h *CategoryHandler) Rename(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	res, err := h.categories.Rename(c.Request.Context(), catalog.RenameCategoryInput{
		CategoryID: categoryID,
		NewName:    req.NewName,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": res.Category})
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}
	res, err := h.categories.Delete(c.Request.Context(), catalog.DeleteCategoryInput{CategoryID: categoryID})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"affected_products":   res.AffectedProducts,
		"reparented_children": res.ReparentedChildren,
	})
}
