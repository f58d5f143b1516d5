package server

import (
	"fmt"
	"time"

	"github.com/tastory/tastory/core"
)

// searchRequest is the POST /search body.
type searchRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

// recipeResult is one ranked recipe in a search response.
type recipeResult struct {
	Id          uint64  `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image,omitempty"`
	URL         string  `json:"url,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Score       float64 `json:"score"`
}

// spellCorrection is included when the query was corrected before
// retrieval.
type spellCorrection struct {
	OriginalQuery  string `json:"originalQuery"`
	CorrectedQuery string `json:"correctedQuery"`
	Message        string `json:"message"`
}

// searchResponse is the POST /search payload.
type searchResponse struct {
	Results         []recipeResult   `json:"results"`
	TotalResults    int              `json:"totalResults"`
	TotalPages      int              `json:"totalPages"`
	CurrentPage     int              `json:"currentPage"`
	SpellCorrection *spellCorrection `json:"spellCorrection,omitempty"`
}

// trendingItemResponse is one entry in the GET /trending payload.
type trendingItemResponse struct {
	Query         string   `json:"query"`
	Count         int      `json:"count"`
	Score         float64  `json:"score"`
	Trend         string   `json:"trend"`
	PercentChange *float64 `json:"percentChange,omitempty"`
}

// trendingResponse is the GET /trending payload.
type trendingResponse struct {
	Trending    []trendingItemResponse `json:"trending"`
	LastUpdated string                 `json:"lastUpdated,omitempty"`
}

// errorResponse is the shape of every error payload.
type errorResponse struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

func toSearchResponse(page *core.SearchPage) searchResponse {
	results := make([]recipeResult, len(page.Results))
	for i, recipe := range page.Results {
		results[i] = recipeResult{
			Id:          uint64(recipe.Id),
			Name:        recipe.Name,
			Image:       recipe.Image,
			URL:         recipe.URL,
			Rating:      recipe.Rating,
			ReviewCount: recipe.ReviewCount,
			Score:       recipe.Score,
		}
	}

	response := searchResponse{
		Results:      results,
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
	}
	if page.Correction != nil && page.Correction.Changed {
		response.SpellCorrection = &spellCorrection{
			OriginalQuery:  page.Correction.Original,
			CorrectedQuery: page.Correction.Corrected,
			Message:        fmt.Sprintf("Showing results for %q", page.Correction.Corrected),
		}
	}
	return response
}

func toTrendingResponse(snapshot *core.TrendingSnapshot) trendingResponse {
	if snapshot == nil {
		return trendingResponse{Trending: []trendingItemResponse{}}
	}

	items := make([]trendingItemResponse, len(snapshot.Items))
	for i, item := range snapshot.Items {
		items[i] = trendingItemResponse{
			Query: item.Query,
			Count: item.Count,
			Score: item.Score,
			Trend: item.Trend.String(),
		}
		if item.HasPrevious {
			change := item.PercentChange
			items[i].PercentChange = &change
		}
	}

	return trendingResponse{
		Trending:    items,
		LastUpdated: snapshot.LastUpdated.Format(time.RFC3339),
	}
}
