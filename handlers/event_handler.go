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

type EventHandler struct {
	service *services.EventService
	audit   repositories.AuditRepo
}

func NewEventHandler(service *services.EventService, audit repositories.AuditRepo) *EventHandler {
	return &EventHandler{service: service, audit: audit}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	events, total, err := h.service.ListEvents(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: events, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *EventHandler) ListPublished(c *gin.Context) {
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	events, total, err := h.service.ListPublished(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: events, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	event, err := h.service.GetEvent(id)
	if err == services.ErrEventNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: event})
}

func (h *EventHandler) GetPublishedBySlug(c *gin.Context) {
	event, err := h.service.GetPublishedBySlug(c.Param("slug"))
	if err == services.ErrEventNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: event})
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input dto.CreateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.service.CreateEvent(input)
	switch err {
	case nil:
	case services.ErrEventSlugTaken:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrEventDates:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "create", "event", fmt.Sprint(event.ID), nil, event, "created event "+event.Title, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: event})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.GetEvent(id)
	event, err := h.service.UpdateEvent(id, input)
	switch err {
	case nil:
	case services.ErrEventNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrEventSlugTaken:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	case services.ErrEventDates:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "update", "event", fmt.Sprint(id), before, event, "updated event "+event.Title, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: event})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.GetEvent(id)
	if err := h.service.DeleteEvent(id); err != nil {
		if err == services.ErrEventNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "event", fmt.Sprint(id), before, nil, "deleted event "+before.Title, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Event deleted"})
}
