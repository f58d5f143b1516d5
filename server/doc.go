// Package server exposes search, autocomplete, and trending over HTTP.
//
// The surface is deliberately small: POST /search, GET /suggest,
// GET /trending, and GET /health. Retrieval outages surface as 503 with
// a retry hint; every other degraded state returns an empty payload so
// clients keep working. Each request carries a session id, taken from
// the X-Session-Id header or minted per request, which flows into the
// query log.
package server
