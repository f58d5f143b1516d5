package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tastory/tastory/search"
)

// handleHealth handles GET /health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	page, err := s.searcher.Search(c.Request.Context(), req.Query, req.Page)
	if err != nil {
		if errors.Is(err, search.ErrRetrievalUnavailable) {
			c.JSON(http.StatusServiceUnavailable, errorResponse{
				Error: "search temporarily unavailable, try again",
				Retry: true,
			})
			return
		}
		slog.Error("search request failed", "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toSearchResponse(page))
}

// handleSuggest handles GET /suggest?query=...
func (s *Server) handleSuggest(c *gin.Context) {
	suggestions := s.suggest.Suggest(c.Query("query"))
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, suggestions)
}

// handleTrending handles GET /trending.
func (s *Server) handleTrending(c *gin.Context) {
	c.JSON(http.StatusOK, toTrendingResponse(s.trending.Current()))
}
