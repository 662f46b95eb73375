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

type SecretariaHandler struct {
	service *services.SecretariaService
	audit   repositories.AuditRepo
}

func NewSecretariaHandler(service *services.SecretariaService, audit repositories.AuditRepo) *SecretariaHandler {
	return &SecretariaHandler{service: service, audit: audit}
}

func (h *SecretariaHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	secretarias, total, err := h.service.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: secretarias, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *SecretariaHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	secretaria, err := h.service.Get(id)
	if err == services.ErrSecretariaNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: secretaria})
}

func (h *SecretariaHandler) GetBySlug(c *gin.Context) {
	secretaria, err := h.service.GetBySlug(c.Param("slug"))
	if err == services.ErrSecretariaNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: secretaria})
}

func (h *SecretariaHandler) Create(c *gin.Context) {
	var input dto.SecretariaDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	secretaria, err := h.service.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "secretaria", fmt.Sprint(secretaria.ID), nil, secretaria, "created secretaria "+secretaria.Name, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: secretaria})
}

func (h *SecretariaHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.SecretariaDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.Get(id)
	secretaria, err := h.service.Update(id, input)
	if err == services.ErrSecretariaNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "secretaria", fmt.Sprint(id), before, secretaria, "updated secretaria "+secretaria.Name, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: secretaria})
}

func (h *SecretariaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.Get(id)
	if err := h.service.Delete(id); err != nil {
		if err == services.ErrSecretariaNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "secretaria", fmt.Sprint(id), before, nil, "deleted secretaria "+before.Name, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Secretaria deleted"})
}
