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

type GalleryHandler struct {
	service *services.GalleryService
	audit   repositories.AuditRepo
}

func NewGalleryHandler(service *services.GalleryService, audit repositories.AuditRepo) *GalleryHandler {
	return &GalleryHandler{service: service, audit: audit}
}

func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	galleries, total, err := h.service.ListGalleries(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: galleries, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	gallery, err := h.service.GetGallery(id)
	if err == services.ErrGalleryNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: gallery})
}

func (h *GalleryHandler) GetBySlug(c *gin.Context) {
	gallery, err := h.service.GetBySlug(c.Param("slug"))
	if err == services.ErrGalleryNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: gallery})
}

func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	var input dto.CreateGalleryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gallery, err := h.service.CreateGallery(input)
	if err == services.ErrGallerySlugTaken {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "gallery", fmt.Sprint(gallery.ID), nil, gallery, "created gallery "+gallery.Title, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: gallery})
}

func (h *GalleryHandler) UpdateGallery(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateGalleryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.GetGallery(id)
	gallery, err := h.service.UpdateGallery(id, input)
	switch err {
	case nil:
	case services.ErrGalleryNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrGallerySlugTaken:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "gallery", fmt.Sprint(id), before, gallery, "updated gallery "+gallery.Title, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: gallery})
}

func (h *GalleryHandler) DeleteGallery(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.GetGallery(id)
	if err := h.service.DeleteGallery(id); err != nil {
		if err == services.ErrGalleryNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "gallery", fmt.Sprint(id), before, nil, "deleted gallery "+before.Title, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Gallery deleted"})
}
