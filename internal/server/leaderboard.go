package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/modguard/internal/leaderboard/domain"
)

func parseOrderAscending(c *gin.Context) (bool, error) {
	switch c.DefaultQuery("order", "desc") {
	case "asc":
		return true, nil
	case "desc":
		return false, nil
	default:
		return false, newValidationError("order", "invalid_order", "order must be asc or desc")
	}
}

func (s *Server) topByUsage(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	ascending, err := parseOrderAscending(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.leaderboard.TopByUsage(c.Request.Context(), domain.TopByUsageRequest{
		EndpointPattern: c.Query("endpoint"),
		Ascending:       ascending,
		Page:            page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) topBySpend(c *gin.Context) {
	page, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	ascending, err := parseOrderAscending(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.leaderboard.TopBySpend(c.Request.Context(), domain.TopBySpendRequest{
		Ascending: ascending,
		Page:      page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
