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

type PostHandler struct {
	service *services.PostService
	audit   repositories.AuditRepo
}

func NewPostHandler(service *services.PostService, audit repositories.AuditRepo) *PostHandler {
	return &PostHandler{service: service, audit: audit}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var q dto.PostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	posts, total, err := h.service.ListPosts(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: posts, Total: total, Page: q.Page, PageSize: q.PageSize})
}

// ListPublished is the public feed: only published posts, newest first.
func (h *PostHandler) ListPublished(c *gin.Context) {
	var q dto.PostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	posts, total, err := h.service.ListPublished(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: posts, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	post, err := h.service.GetPost(id)
	if err == services.ErrPostNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: post})
}

func (h *PostHandler) GetPublishedBySlug(c *gin.Context) {
	post, err := h.service.GetPublishedBySlug(c.Param("slug"))
	if err == services.ErrPostNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: post})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var input dto.CreatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	authorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.service.CreatePost(authorID, input)
	if err == services.ErrPostSlugTaken {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "post", fmt.Sprint(post.ID), nil, post, "created post "+post.Title, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: post})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.GetPost(id)
	post, err := h.service.UpdatePost(id, input)
	switch err {
	case nil:
	case services.ErrPostNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrPostSlugTaken:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "post", fmt.Sprint(id), before, post, "updated post "+post.Title, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.GetPost(id)
	if err := h.service.DeletePost(id); err != nil {
		if err == services.ErrPostNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "post", fmt.Sprint(id), before, nil, "deleted post "+before.Title, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Post deleted"})
}
