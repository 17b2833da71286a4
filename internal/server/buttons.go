package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meusite/cms/internal/buttons"
	"github.com/meusite/cms/internal/store"
)

type createButtonPayload struct {
	Text         string  `json:"text" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=internal external iframe email"`
	InternalLink *string `json:"internalLink"`
	ExternalURL  *string `json:"externalUrl"`
	Email        *string `json:"email"`
	PageSlug     string  `json:"pageSlug" binding:"required"`
	Style        string  `json:"style"`
	Size         string  `json:"size"`
	OpenInNewTab *bool   `json:"openInNewTab"`
}

type updateButtonPayload struct {
	Text         *string `json:"text"`
	Type         *string `json:"type" binding:"omitempty,oneof=internal external iframe email"`
	InternalLink *string `json:"internalLink"`
	ExternalURL  *string `json:"externalUrl"`
	Email        *string `json:"email"`
	PageSlug     *string `json:"pageSlug"`
	Style        *string `json:"style"`
	Size         *string `json:"size"`
	OpenInNewTab *bool   `json:"openInNewTab"`
}

func (h *httpHandler) handleListButtons(c *gin.Context) {
	stored, err := h.buttons.List()
	if err != nil {
		h.serverError(c, "buttons.list", err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *httpHandler) handleListButtonsForPage(c *gin.Context) {
	stored, err := h.buttons.ListForPage(c.Param("slug"))
	if err != nil {
		h.serverError(c, "buttons.list_for_page", err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *httpHandler) handleGetButton(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	button, err := h.buttons.Get(id)
	if err != nil {
		if errors.Is(err, buttons.ErrNotFound) {
			notFound(c, "button_not_found")
			return
		}
		h.serverError(c, "buttons.get", err)
		return
	}
	c.JSON(http.StatusOK, button)
}

func (h *httpHandler) handleCreateButton(c *gin.Context) {
	var payload createButtonPayload
	if !bindJSON(c, &payload) {
		return
	}

	button, err := h.buttons.Create(buttons.CreateInput{
		Text:         payload.Text,
		Type:         store.ButtonType(payload.Type),
		InternalLink: payload.InternalLink,
		ExternalURL:  payload.ExternalURL,
		Email:        payload.Email,
		PageSlug:     payload.PageSlug,
		Style:        payload.Style,
		Size:         payload.Size,
		OpenInNewTab: payload.OpenInNewTab,
	})
	if err != nil {
		if !h.writeButtonValidationError(c, err) {
			h.serverError(c, "buttons.create", err)
		}
		return
	}
	c.JSON(http.StatusCreated, button)
}

func (h *httpHandler) handleUpdateButton(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload updateButtonPayload
	if !bindJSON(c, &payload) {
		return
	}

	input := buttons.UpdateInput{
		Text:         payload.Text,
		InternalLink: payload.InternalLink,
		ExternalURL:  payload.ExternalURL,
		Email:        payload.Email,
		PageSlug:     payload.PageSlug,
		Style:        payload.Style,
		Size:         payload.Size,
		OpenInNewTab: payload.OpenInNewTab,
	}
	if payload.Type != nil {
		buttonType := store.ButtonType(*payload.Type)
		input.Type = &buttonType
	}

	button, err := h.buttons.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, buttons.ErrNotFound):
			notFound(c, "button_not_found")
		case h.writeButtonValidationError(c, err):
		default:
			h.serverError(c, "buttons.update", err)
		}
		return
	}
	c.JSON(http.StatusOK, button)
}

func (h *httpHandler) handleDeleteButton(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.buttons.Delete(id); err != nil {
		if errors.Is(err, buttons.ErrNotFound) {
			notFound(c, "button_not_found")
			return
		}
		h.serverError(c, "buttons.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeButtonValidationError reports whether err was one of the button
// validation failures and, if so, writes the 400 response.
func (h *httpHandler) writeButtonValidationError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, buttons.ErrInvalidType):
		badRequestField(c, "type", "must be one of: internal external iframe email")
	case errors.Is(err, buttons.ErrMissingTarget):
		badRequestField(c, "target", "internalLink, externalUrl or email matching the type is required")
	case errors.Is(err, buttons.ErrInvalidStyle):
		badRequestField(c, "style", "must be one of: primary secondary outline ghost")
	case errors.Is(err, buttons.ErrInvalidSize):
		badRequestField(c, "size", "must be one of: default sm lg")
	default:
		return false
	}
	return true
}
