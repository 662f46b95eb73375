package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/pkg/formengine"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/response"
	"github.com/prefeitura-digital/cms-go/services"
	"github.com/prefeitura-digital/cms-go/utils"
)

type FormHandler struct {
	service *services.FormService
	audit   repositories.AuditRepo
}

func NewFormHandler(service *services.FormService, audit repositories.AuditRepo) *FormHandler {
	return &FormHandler{service: service, audit: audit}
}

func (h *FormHandler) ListForms(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	forms, total, err := h.service.ListForms(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: forms, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	form, err := h.service.GetForm(id)
	if err == services.ErrFormNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

// GetPublishedBySlug serves the public rendering surface. Only published
// forms are visible here.
func (h *FormHandler) GetPublishedBySlug(c *gin.Context) {
	form, err := h.service.GetPublishedBySlug(c.Param("slug"))
	if err == services.ErrFormNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.service.CreateForm(input)
	if err != nil {
		var schemaErr *formengine.SchemaError
		switch {
		case err == services.ErrFormSlugTaken:
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.As(err, &schemaErr):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAudit(c, "create", "form", fmt.Sprint(form.ID), nil, form, "created form "+form.Title, h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: form})
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, _ := h.service.GetForm(id)
	form, err := h.service.UpdateForm(id, input)
	if err != nil {
		var schemaErr *formengine.SchemaError
		switch {
		case err == services.ErrFormNotFound:
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case err == services.ErrFormSlugTaken:
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.As(err, &schemaErr):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAudit(c, "update", "form", fmt.Sprint(id), before, form, "updated form "+form.Title, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	before, _ := h.service.GetForm(id)
	if err := h.service.DeleteForm(id); err != nil {
		if err == services.ErrFormNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "form", fmt.Sprint(id), before, nil, "deleted form "+before.Title, h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

// Submit is the public submission endpoint. Engine refusals come back as a
// per-field error map; a broken stored schema is reported as unavailable
// rather than leaking its details to the public site.
func (h *FormHandler) Submit(c *gin.Context) {
	var input dto.SubmitFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, fieldErrs, err := h.service.Submit(c.Param("slug"), input.Data, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		var schemaErr *formengine.SchemaError
		switch {
		case err == services.ErrFormNotFound:
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case err == services.ErrDuplicateSubmission:
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Este formulário já foi enviado"})
		case errors.As(err, &schemaErr):
			log.Printf("Broken schema on form %s: %v", c.Param("slug"), err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Formulário indisponível"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationResponse{
			Error:  "Verifique os campos destacados",
			Fields: fieldErrs,
		})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: sub})
}

func (h *FormHandler) ListSubmissions(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var q dto.SubmissionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	q.Normalize()

	subs, total, err := h.service.ListSubmissions(id, q)
	if err == services.ErrFormNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PagedResponse{Data: subs, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (h *FormHandler) ModerateSubmission(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.ModerateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.ModerateSubmission(id, input.Status)
	if err == services.ErrSubmissionNotFound {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "moderate", "form_submission", fmt.Sprint(id), nil, sub, "marked submission "+input.Status, h.audit)
	c.JSON(http.StatusOK, response.SuccessResponse{Data: sub})
}

func (h *FormHandler) DeleteSubmission(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteSubmission(id); err != nil {
		if err == services.ErrSubmissionNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAudit(c, "delete", "form_submission", fmt.Sprint(id), nil, nil, "deleted submission", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Submission deleted"})
}
