package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/response"
	"github.com/prefeitura-digital/cms-go/services"
	"github.com/prefeitura-digital/cms-go/utils"
)

type PermissionHandler struct {
	service *services.PermissionService
	audit   repositories.AuditRepo
}

func NewPermissionHandler(service *services.PermissionService, audit repositories.AuditRepo) *PermissionHandler {
	return &PermissionHandler{service: service, audit: audit}
}

func (h *PermissionHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	perms, err := h.service.ListByUser(uint(userID))
	if err == services.ErrUserNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: perms})
}

func (h *PermissionHandler) Assign(c *gin.Context) {
	var input dto.AssignPermissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	perm, err := h.service.Assign(input)
	if err == services.ErrUserNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "assign", "permission", fmt.Sprint(input.UserID), nil, perm,
		fmt.Sprintf("set %s permissions for user %d", input.Module, input.UserID), h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: perm})
}

func (h *PermissionHandler) Revoke(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	module := c.Param("module")

	if err := h.service.Revoke(uint(userID), module); err != nil {
		if err == services.ErrPermissionNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "revoke", "permission", fmt.Sprint(userID), nil, nil,
		fmt.Sprintf("revoked %s permissions for user %d", module, userID), h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Permission revoked"})
}
