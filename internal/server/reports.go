package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/modguard/internal/moderation/domain"
)

func (s *Server) listReports(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	req := domain.ListRequest{
		Status:   c.DefaultQuery("status", domain.FilterAll),
		Category: c.DefaultQuery("category", domain.FilterAll),
		Search:   c.Query("search"),
		Page:     page,
	}

	resp, err := s.moderation.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) applyReportAction(c *gin.Context) {
	var req domain.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_body", "request body must be valid JSON"))
		return
	}
	if len(req.ReportIDs) == 0 {
		AbortWithError(c, newValidationError("report_ids", "required", "report_ids must not be empty"))
		return
	}

	result, err := s.moderation.ApplyAction(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
