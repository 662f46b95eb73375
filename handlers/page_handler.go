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

type PageHandler struct {
	service *services.PageService
	audit   repositories.AuditRepo
}

func NewPageHandler(service *services.PageService, audit repositories.AuditRepo) *PageHandler {
	return &PageHandler{service: service, audit: audit}
}

func (h *PageHandler) ListPages(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	pages, total, err := h.service.ListPages(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: pages, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *PageHandler) GetPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	page, err := h.service.GetPage(id)
	if err == services.ErrPageNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: page})
}

func (h *PageHandler) GetPublishedBySlug(c *gin.Context) {
	page, err := h.service.GetPublishedBySlug(c.Param("slug"))
	if err == services.ErrPageNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: page})
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	var input dto.CreatePageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.service.CreatePage(input)
	if err == services.ErrPageSlugTaken {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "page", fmt.Sprint(page.ID), nil, page, "created page "+page.Title, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: page})
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdatePageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.GetPage(id)
	page, err := h.service.UpdatePage(id, input)
	switch err {
	case nil:
	case services.ErrPageNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrPageSlugTaken:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "page", fmt.Sprint(id), before, page, "updated page "+page.Title, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: page})
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.GetPage(id)
	if err := h.service.DeletePage(id); err != nil {
		if err == services.ErrPageNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "page", fmt.Sprint(id), before, nil, "deleted page "+before.Title, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Page deleted"})
}
