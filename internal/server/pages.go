package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meusite/cms/internal/pages"
)

type createPagePayload struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePagePayload struct {
	Title   *string `json:"title"`
	Slug    *string `json:"slug"`
	Content *string `json:"content"`
}

func (h *httpHandler) handleListPages(c *gin.Context) {
	stored, err := h.pages.List()
	if err != nil {
		h.serverError(c, "pages.list", err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *httpHandler) handleGetPageBySlug(c *gin.Context) {
	page, err := h.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			notFound(c, "page_not_found")
			return
		}
		h.serverError(c, "pages.get", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *httpHandler) handleCreatePage(c *gin.Context) {
	var payload createPagePayload
	if !bindJSON(c, &payload) {
		return
	}

	page, err := h.pages.Create(pages.CreateInput{
		Title:   payload.Title,
		Slug:    payload.Slug,
		Content: payload.Content,
	})
	if err != nil {
		if !h.writePageValidationError(c, err) {
			h.serverError(c, "pages.create", err)
		}
		return
	}
	c.JSON(http.StatusCreated, page)
}

func (h *httpHandler) handleUpdatePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload updatePagePayload
	if !bindJSON(c, &payload) {
		return
	}

	page, err := h.pages.Update(id, pages.UpdateInput{
		Title:   payload.Title,
		Slug:    payload.Slug,
		Content: payload.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, pages.ErrNotFound):
			notFound(c, "page_not_found")
		case h.writePageValidationError(c, err):
		default:
			h.serverError(c, "pages.update", err)
		}
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *httpHandler) handleDeletePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.pages.Delete(id); err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			notFound(c, "page_not_found")
			return
		}
		h.serverError(c, "pages.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writePageValidationError reports whether err was one of the page
// validation failures and, if so, writes the 400 response.
func (h *httpHandler) writePageValidationError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, pages.ErrInvalidSlug):
		badRequestField(c, "slug", "must contain only lowercase letters, digits and hyphens")
	case errors.Is(err, pages.ErrSlugTaken):
		badRequestField(c, "slug", "is already in use")
	default:
		return false
	}
	return true
}
