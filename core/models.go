package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Recipe is a single record in the recipe corpus. The engine only reads
// recipes; the corpus and its embeddings are produced out-of-band.
type Recipe struct {
	Id             ID
	Name           string
	Ingredients    []string
	Instructions   []string
	Nutrition      map[string]string // nutrient name -> display string, may be empty
	Rating         float64
	ReviewCount    int
	Image          string // empty when the recipe has no usable image
	URL            string
	AdditionalInfo map[string]string
	Vector         []float32 // precomputed embedding, may be empty
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// EmbeddingText returns the text the corpus embeds for a recipe: the
// name followed by the ingredient list.
func (r *Recipe) EmbeddingText() string {
	parts := make([]string, 0, len(r.Ingredients)+1)
	parts = append(parts, r.Name)
	parts = append(parts, r.Ingredients...)
	return strings.Join(parts, " ")
}

// RecipeSummary is the projection of a Recipe returned on a search page.
type RecipeSummary struct {
	Id          ID
	Name        string
	Image       string
	URL         string
	Rating      float64
	ReviewCount int
	Score       float64
}

// QueryLogEntry records one executed search. Entries are append-only and
// immutable; they are consumed only by the trending aggregator.
type QueryLogEntry struct {
	Id              ID
	RawQuery        string
	NormalizedQuery string
	Timestamp       time.Time // UTC
	SessionId       string
	ResultCount     int
}

// TrendDirection classifies how a trending query moved since the previous
// aggregation run.
type TrendDirection int

const (
	// TrendStable means the score is unchanged within epsilon.
	TrendStable TrendDirection = iota + 1
	// TrendUp means the score strictly increased.
	TrendUp
	// TrendDown means the score strictly decreased.
	TrendDown
)

// String returns the wire representation used by the /trending endpoint.
func (d TrendDirection) String() string {
	switch d {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "stable"
	}
}

// TrendingItem is one entry of a published trending snapshot.
type TrendingItem struct {
	Query         string
	Count         int     // occurrences in the daily window
	Score         float64 // time-decayed popularity score
	Trend         TrendDirection
	PercentChange float64
	HasPrevious   bool // false when the query was absent from the previous snapshot
}

// TrendingSnapshot is the single published trending artifact. It is replaced
// wholesale by the aggregator and never mutated in place.
type TrendingSnapshot struct {
	Items                 []TrendingItem
	Scores                map[string]float64 // full score table, input to the next run's trend classification
	LastUpdated           time.Time
	ComputationDurationMs int64
}

// VocabularyEntry is a known term with its corpus frequency.
// The vocabulary feeds spell correction and autocomplete.
type VocabularyEntry struct {
	Term      string
	Frequency int
}

// Correction is the result of spell-correcting a query.
type Correction struct {
	Original  string
	Corrected string
	Changed   bool
}

// SearchPage is one globally ranked page of search results.
// TotalResults and TotalPages describe the full ranked set.
type SearchPage struct {
	Results      []RecipeSummary
	TotalResults int
	TotalPages   int
	CurrentPage  int
	Correction   *Correction // set when the query was spell-corrected
}
