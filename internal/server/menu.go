package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meusite/cms/internal/menu"
	"github.com/meusite/cms/internal/store"
)

type createMenuItemPayload struct {
	Text         string  `json:"text" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=internal external iframe"`
	InternalLink *string `json:"internalLink"`
	ExternalURL  *string `json:"externalUrl"`
}

type updateMenuItemPayload struct {
	Text         *string `json:"text"`
	Type         *string `json:"type" binding:"omitempty,oneof=internal external iframe"`
	InternalLink *string `json:"internalLink"`
	ExternalURL  *string `json:"externalUrl"`
}

type reorderMenuPayload struct {
	ItemIDs []uint `json:"itemIds" binding:"required"`
}

func (h *httpHandler) handleListMenu(c *gin.Context) {
	items, err := h.menu.ListOrdered()
	if err != nil {
		h.serverError(c, "menu.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *httpHandler) handleCreateMenuItem(c *gin.Context) {
	var payload createMenuItemPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := h.menu.Create(menu.CreateInput{
		Text:         payload.Text,
		Type:         store.MenuItemType(payload.Type),
		InternalLink: payload.InternalLink,
		ExternalURL:  payload.ExternalURL,
	})
	if err != nil {
		if !h.writeMenuValidationError(c, err) {
			h.serverError(c, "menu.create", err)
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *httpHandler) handleUpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload updateMenuItemPayload
	if !bindJSON(c, &payload) {
		return
	}

	input := menu.UpdateInput{
		Text:         payload.Text,
		InternalLink: payload.InternalLink,
		ExternalURL:  payload.ExternalURL,
	}
	if payload.Type != nil {
		itemType := store.MenuItemType(*payload.Type)
		input.Type = &itemType
	}

	item, err := h.menu.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrNotFound):
			notFound(c, "menu_item_not_found")
		case h.writeMenuValidationError(c, err):
		default:
			h.serverError(c, "menu.update", err)
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *httpHandler) handleDeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.menu.Delete(id); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			notFound(c, "menu_item_not_found")
			return
		}
		h.serverError(c, "menu.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *httpHandler) handleReorderMenu(c *gin.Context) {
	var payload reorderMenuPayload
	if !bindJSON(c, &payload) {
		return
	}

	items, err := h.menu.Reorder(payload.ItemIDs)
	if err != nil {
		h.serverError(c, "menu.reorder", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// writeMenuValidationError reports whether err was one of the menu
// validation failures and, if so, writes the 400 response.
func (h *httpHandler) writeMenuValidationError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, menu.ErrInvalidType):
		badRequestField(c, "type", "must be one of: internal external iframe")
	case errors.Is(err, menu.ErrMissingTarget):
		badRequestField(c, "target", "internalLink or externalUrl matching the type is required")
	default:
		return false
	}
	return true
}
