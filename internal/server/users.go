package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/modguard/internal/identity/domain"
)

func (s *Server) listUsers(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := c.Query("status")
	switch status {
	case "", domain.StatusActive, domain.StatusInactive:
	default:
		AbortWithError(c, newValidationError("status", "invalid_status", "status must be active or inactive"))
		return
	}

	role := c.Query("role")
	switch role {
	case "", domain.RoleAdmin, domain.RoleUser:
	default:
		AbortWithError(c, newValidationError("role", "invalid_role", "role must be admin or user"))
		return
	}

	resp, err := s.identity.List(c.Request.Context(), domain.ListUsersRequest{
		Search: c.Query("search"),
		Status: status,
		Role:   role,
		Page:   page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type updateUserStatusBody struct {
	IsActive *bool `json:"is_active"`
	IsAdmin  *bool `json:"is_admin"`
}

func (s *Server) updateUserStatus(c *gin.Context) {
	var body updateUserStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_body", "request body must be valid JSON"))
		return
	}
	if body.IsActive == nil && body.IsAdmin == nil {
		AbortWithError(c, newValidationError("body", "required", "is_active or is_admin must be set"))
		return
	}

	user, err := s.identity.UpdateStatus(c.Request.Context(), domain.UpdateStatusRequest{
		UserID:   c.Param("id"),
		IsActive: body.IsActive,
		IsAdmin:  body.IsAdmin,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	if err := s.identity.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
