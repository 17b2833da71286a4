package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meusite/cms/internal/settings"
	"github.com/meusite/cms/internal/store"
)

type saveSettingPayload struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type settingView struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func viewSetting(setting *store.SiteSetting) settingView {
	return settingView{
		ID:    setting.ID,
		Name:  setting.Name,
		Value: json.RawMessage(setting.ValueJSON),
	}
}

func (h *httpHandler) handleGetSetting(c *gin.Context) {
	setting, err := h.settings.Get(c.Param("name"))
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			notFound(c, "setting_not_found")
			return
		}
		h.serverError(c, "settings.get", err)
		return
	}
	c.JSON(http.StatusOK, viewSetting(setting))
}

func (h *httpHandler) handleSaveSetting(c *gin.Context) {
	var payload saveSettingPayload
	if !bindJSON(c, &payload) {
		return
	}

	setting, err := h.settings.Save(c.Param("name"), payload.Value)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidValue) {
			badRequestField(c, "value", "must be a JSON document")
			return
		}
		h.serverError(c, "settings.save", err)
		return
	}
	c.JSON(http.StatusOK, viewSetting(setting))
}
