package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getOverview(c *gin.Context) {
	stats, err := s.stats.Overview(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getUsageSeries(c *gin.Context) {
	days, err := parseRangeDays(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	stats, err := s.stats.UsageSeries(c.Request.Context(), days)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getRevenueSeries(c *gin.Context) {
	days, err := parseRangeDays(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	stats, err := s.stats.RevenueSeries(c.Request.Context(), days)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getRegistrationSeries(c *gin.Context) {
	days, err := parseRangeDays(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	stats, err := s.stats.RegistrationSeries(c.Request.Context(), days)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getAccuracy(c *gin.Context) {
	stats, err := s.stats.Accuracy(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getTopCategories(c *gin.Context) {
	categories, err := s.stats.TopCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) getRecentActivities(c *gin.Context) {
	limit, err := parseLimit(c, 10)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	activities, err := s.stats.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
