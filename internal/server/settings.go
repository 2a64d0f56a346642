package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/modguard/internal/setting/domain"
)

type settingsBody struct {
	Settings []domain.SystemSetting `json:"settings"`
}

func (s *Server) listSettings(c *gin.Context) {
	settings, err := s.settings.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsBody{Settings: settings})
}

func (s *Server) updateSettings(c *gin.Context) {
	var body settingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_body", "request body must be valid JSON"))
		return
	}
	if len(body.Settings) == 0 {
		AbortWithError(c, newValidationError("settings", "required", "settings must not be empty"))
		return
	}
	for _, setting := range body.Settings {
		if setting.Key == "" {
			AbortWithError(c, newValidationError("settings.key", "required", "every setting needs a key"))
			return
		}
	}

	if err := s.settings.Upsert(c.Request.Context(), body.Settings); err != nil {
		AbortWithError(c, err)
		return
	}

	settings, err := s.settings.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsBody{Settings: settings})
}
