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

type MediaHandler struct {
	service *services.MediaService
	audit   repositories.AuditRepo
}

func NewMediaHandler(service *services.MediaService, audit repositories.AuditRepo) *MediaHandler {
	return &MediaHandler{service: service, audit: audit}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	files, total, err := h.service.ListMedia(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: files, Total: total, Page: q.Page, PageSize: q.PageSize})
}

// Upload accepts a multipart "file" part and stores it in the object store.
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	file, err := h.service.Upload(c.Request.Context(), userID, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "upload", "media", fmt.Sprint(file.ID), nil, file, "uploaded "+file.FileName, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: file})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == services.ErrMediaNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "media", fmt.Sprint(id), nil, nil, "deleted media file", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "File deleted"})
}
