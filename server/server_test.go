package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/search"
)

type stubSearcher struct {
	page      *core.SearchPage
	err       error
	gotQuery  string
	gotPage   int
	sessionID string
}

func (s *stubSearcher) Search(ctx context.Context, query string, page int) (*core.SearchPage, error) {
	s.gotQuery = query
	s.gotPage = page
	s.sessionID = search.SessionIDFromContext(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

type stubSuggester struct {
	suggestions []string
}

func (s *stubSuggester) Suggest(_ string) []string {
	return s.suggestions
}

type stubTrending struct {
	snapshot *core.TrendingSnapshot
}

func (s *stubTrending) Current() *core.TrendingSnapshot {
	return s.snapshot
}

func newTestServer(searcher Searcher, suggester Suggester, trending TrendingSource) *Server {
	config := DefaultConfig()
	config.Mode = gin.TestMode
	srv := New(config, searcher, suggester, trending)
	srv.Setup()
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	srv.Router().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleSearch(t *testing.T) {
	searcher := &stubSearcher{
		page: &core.SearchPage{
			Results: []core.RecipeSummary{
				{Id: 7, Name: "Chicken Biryani", Rating: 4.5, ReviewCount: 120, Score: 0.91},
			},
			TotalResults: 1,
			TotalPages:   1,
			CurrentPage:  1,
		},
	}
	srv := newTestServer(searcher, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodPost, "/search",
		searchRequest{Query: "chicken biryani", Page: 1}, nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response searchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Results, 1)
	assert.Equal(t, "Chicken Biryani", response.Results[0].Name)
	assert.Equal(t, 1, response.TotalResults)
	assert.Nil(t, response.SpellCorrection)

	assert.Equal(t, "chicken biryani", searcher.gotQuery)
	assert.Equal(t, 1, searcher.gotPage)
}

func TestHandleSearch_SpellCorrection(t *testing.T) {
	searcher := &stubSearcher{
		page: &core.SearchPage{
			Results:      []core.RecipeSummary{},
			TotalResults: 0,
			TotalPages:   0,
			CurrentPage:  1,
			Correction: &core.Correction{
				Original:  "chiken biriyani",
				Corrected: "chicken biryani",
				Changed:   true,
			},
		},
	}
	srv := newTestServer(searcher, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodPost, "/search",
		searchRequest{Query: "chiken biriyani"}, nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response searchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.SpellCorrection)
	assert.Equal(t, "chiken biriyani", response.SpellCorrection.OriginalQuery)
	assert.Equal(t, "chicken biryani", response.SpellCorrection.CorrectedQuery)
	assert.Contains(t, response.SpellCorrection.Message, "chicken biryani")
}

func TestHandleSearch_RetrievalUnavailable(t *testing.T) {
	searcher := &stubSearcher{err: search.ErrRetrievalUnavailable}
	srv := newTestServer(searcher, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodPost, "/search",
		searchRequest{Query: "chicken"}, nil)

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var response errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Retry)
	assert.Contains(t, response.Error, "temporarily unavailable")
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, &stubSuggester{}, &stubTrending{})

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	srv.Router().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleSearch_SessionID(t *testing.T) {
	searcher := &stubSearcher{page: &core.SearchPage{Results: []core.RecipeSummary{}, CurrentPage: 1}}
	srv := newTestServer(searcher, &stubSuggester{}, &stubTrending{})

	t.Run("header session id flows through", func(t *testing.T) {
		recorder := doRequest(t, srv, http.MethodPost, "/search",
			searchRequest{Query: "chicken"}, map[string]string{"X-Session-Id": "session-7"})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "session-7", searcher.sessionID)
		assert.Equal(t, "session-7", recorder.Header().Get("X-Session-Id"))
	})

	t.Run("missing header mints one", func(t *testing.T) {
		recorder := doRequest(t, srv, http.MethodPost, "/search",
			searchRequest{Query: "chicken"}, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotEmpty(t, searcher.sessionID)
		assert.Equal(t, searcher.sessionID, recorder.Header().Get("X-Session-Id"))
	})
}

func TestHandleSuggest(t *testing.T) {
	srv := newTestServer(&stubSearcher{},
		&stubSuggester{suggestions: []string{"chicken", "chili"}}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodGet, "/suggest?query=chi", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var suggestions []string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &suggestions))
	assert.Equal(t, []string{"chicken", "chili"}, suggestions)
}

func TestHandleSuggest_Empty(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodGet, "/suggest?query=c", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestHandleTrending(t *testing.T) {
	change := 40.0
	snapshot := &core.TrendingSnapshot{
		Items: []core.TrendingItem{
			{Query: "pasta", Count: 50, Score: 14.0, Trend: core.TrendUp, PercentChange: change, HasPrevious: true},
			{Query: "salad", Count: 6, Score: 0.6, Trend: core.TrendStable},
		},
		LastUpdated: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
	srv := newTestServer(&stubSearcher{}, &stubSuggester{}, &stubTrending{snapshot: snapshot})

	recorder := doRequest(t, srv, http.MethodGet, "/trending", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response trendingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Trending, 2)

	pasta := response.Trending[0]
	assert.Equal(t, "pasta", pasta.Query)
	assert.Equal(t, "up", pasta.Trend)
	require.NotNil(t, pasta.PercentChange)
	assert.InDelta(t, 40.0, *pasta.PercentChange, 1e-9)

	salad := response.Trending[1]
	assert.Equal(t, "stable", salad.Trend)
	assert.Nil(t, salad.PercentChange)

	assert.Equal(t, "2026-08-28T12:00:00Z", response.LastUpdated)
}

func TestHandleTrending_NoSnapshot(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodGet, "/trending", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response trendingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Trending)
	assert.Empty(t, response.LastUpdated)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, &stubSuggester{}, &stubTrending{})

	recorder := doRequest(t, srv, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
