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

type UserHandler struct {
	service *services.UserService
	audit   repositories.AuditRepo
}

func NewUserHandler(service *services.UserService, audit repositories.AuditRepo) *UserHandler {
	return &UserHandler{service: service, audit: audit}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.RegisterUser(input)
	if err == services.ErrUsernameTaken {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "user", fmt.Sprint(user.ID), nil, user, "created user "+user.Username, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: user})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	users, total, err := h.service.ListUsers(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: users, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	user, err := h.service.FindUserByID(id)
	if err == services.ErrUserNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	// editors may only touch their own account
	if !claims.IsAdmin && claims.UserID != id {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Cannot update another user"})
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.FindUserByID(id)
	user, err := h.service.UpdateUser(id, input, claims.IsAdmin)
	switch err {
	case nil:
	case services.ErrUserNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrMissingOldPassword, services.ErrIncorrectPassword:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "user", fmt.Sprint(id), before, user, "updated user "+user.Username, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: user})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.FindUserByID(id)
	if err := h.service.DeleteUser(id); err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "user", fmt.Sprint(id), before, nil, "deleted user "+before.Username, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}
