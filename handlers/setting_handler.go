package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/response"
	"github.com/prefeitura-digital/cms-go/services"
	"github.com/prefeitura-digital/cms-go/utils"
)

type SettingHandler struct {
	service *services.SettingService
	audit   repositories.AuditRepo
}

func NewSettingHandler(service *services.SettingService, audit repositories.AuditRepo) *SettingHandler {
	return &SettingHandler{service: service, audit: audit}
}

// List serves both the admin panel and the public site shell; settings hold
// no secrets.
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: settings})
}

func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := h.service.Get(c.Param("key"))
	if err == services.ErrSettingNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: setting})
}

func (h *SettingHandler) Upsert(c *gin.Context) {
	var input dto.UpsertSettingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.Get(input.Key)
	setting, err := h.service.Upsert(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "upsert", "setting", input.Key, before, setting, "set setting "+input.Key, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: setting})
}

func (h *SettingHandler) Delete(c *gin.Context) {
	key := c.Param("key")

	before, _ := h.service.Get(key)
	if err := h.service.Delete(key); err != nil {
		if err == services.ErrSettingNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "setting", key, before, nil, "deleted setting "+key, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Setting deleted"})
}
