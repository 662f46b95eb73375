package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/response"
	"github.com/prefeitura-digital/cms-go/services"
	"github.com/prefeitura-digital/cms-go/utils"
)

type TaxonomyHandler struct {
	service *services.TaxonomyService
	audit   repositories.AuditRepo
}

func NewTaxonomyHandler(service *services.TaxonomyService, audit repositories.AuditRepo) *TaxonomyHandler {
	return &TaxonomyHandler{service: service, audit: audit}
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: categories})
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var input dto.CategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.service.CreateCategory(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "category", fmt.Sprint(category.ID), nil, category, "created category "+category.Name, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: category})
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.CategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.service.UpdateCategory(id, input)
	if err == services.ErrCategoryNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "category", fmt.Sprint(id), nil, category, "updated category "+category.Name, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: category})
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteCategory(id); err != nil {
		if err == services.ErrCategoryNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "category", fmt.Sprint(id), nil, nil, "deleted category", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Category deleted"})
}

func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: tags})
}

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var input dto.TagDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.service.CreateTag(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "tag", fmt.Sprint(tag.ID), nil, tag, "created tag "+tag.Name, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: tag})
}

func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.TagDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.service.UpdateTag(id, input)
	if err == services.ErrTagNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "tag", fmt.Sprint(id), nil, tag, "updated tag "+tag.Name, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: tag})
}

func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteTag(id); err != nil {
		if err == services.ErrTagNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "tag", fmt.Sprint(id), nil, nil, "deleted tag", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Tag deleted"})
}
