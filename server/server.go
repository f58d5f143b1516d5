// Copyright 2025 Tastory Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/search"
)

// sessionHeader carries the caller's session id; absent, the server
// assigns one and echoes it back.
const sessionHeader = "X-Session-Id"

// Searcher answers search requests.
type Searcher interface {
	Search(ctx context.Context, query string, page int) (*core.SearchPage, error)
}

// Suggester answers autocomplete requests.
type Suggester interface {
	Suggest(prefix string) []string
}

// TrendingSource serves the published trending snapshot.
type TrendingSource interface {
	Current() *core.TrendingSnapshot
}

// Config holds the HTTP listener settings.
type Config struct {
	Host string
	Port int
	Mode string // gin mode: debug, release, or test
}

// DefaultConfig returns the default listener settings.
func DefaultConfig() Config {
	return Config{
		Host: "0.0.0.0",
		Port: 8080,
		Mode: gin.ReleaseMode,
	}
}

// Server is the HTTP surface over search, suggestions, and trending.
type Server struct {
	config   Config
	searcher Searcher
	suggest  Suggester
	trending TrendingSource
	router   *gin.Engine
	server   *http.Server
}

// New creates a new server instance.
func New(config Config, searcher Searcher, suggest Suggester, trending TrendingSource) *Server {
	return &Server{
		config:   config,
		searcher: searcher,
		suggest:  suggest,
		trending: trending,
	}
}

// Setup sets up the server routes and middleware.
func (s *Server) Setup() {
	if s.config.Mode != "" {
		gin.SetMode(s.config.Mode)
	}

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(sessionMiddleware())

	s.router.GET("/health", s.handleHealth)
	s.router.POST("/search", s.handleSearch)
	s.router.GET("/suggest", s.handleSuggest)
	s.router.GET("/trending", s.handleTrending)

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler: s.router,
	}
}

// Router returns the configured router. Setup must have been called.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, X-Session-Id")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// sessionMiddleware attaches the caller's session id to the request
// context, minting one when the header is missing.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header(sessionHeader, sessionID)

		ctx := search.WithSessionID(c.Request.Context(), sessionID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
