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

type CityServiceHandler struct {
	service *services.CityServiceService
	audit   repositories.AuditRepo
}

func NewCityServiceHandler(service *services.CityServiceService, audit repositories.AuditRepo) *CityServiceHandler {
	return &CityServiceHandler{service: service, audit: audit}
}

func (h *CityServiceHandler) List(c *gin.Context) {
	var q dto.CityServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	items, total, err := h.service.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: items, Total: total, Page: q.Page, PageSize: q.PageSize})
}

// ListPublished powers the public service catalogue ("carta de serviços").
func (h *CityServiceHandler) ListPublished(c *gin.Context) {
	var q dto.CityServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	items, total, err := h.service.ListPublished(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: items, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *CityServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	item, err := h.service.Get(id)
	if err == services.ErrCityServiceNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: item})
}

func (h *CityServiceHandler) GetBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Param("slug"))
	if err == services.ErrCityServiceNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: item})
}

func (h *CityServiceHandler) Create(c *gin.Context) {
	var input dto.CityServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.service.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "city_service", fmt.Sprint(item.ID), nil, item, "created service "+item.Name, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: item})
}

func (h *CityServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.CityServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.Get(id)
	item, err := h.service.Update(id, input)
	if err == services.ErrCityServiceNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "city_service", fmt.Sprint(id), before, item, "updated service "+item.Name, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: item})
}

func (h *CityServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.Get(id)
	if err := h.service.Delete(id); err != nil {
		if err == services.ErrCityServiceNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "city_service", fmt.Sprint(id), before, nil, "deleted service "+before.Name, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Service deleted"})
}
