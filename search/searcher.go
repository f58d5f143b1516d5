package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/tastory/tastory/ai"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
	"github.com/tastory/tastory/vocab"
)

const (
	// PageSize is the fixed number of results per page.
	PageSize = 12

	// vectorWeight and lexicalWeight blend cosine similarity with lexical
	// overlap into the final score.
	vectorWeight  = 0.7
	lexicalWeight = 0.3

	// vectorSimilarityFloor drops candidates with negligible semantic
	// similarity before blending.
	vectorSimilarityFloor = 0.30

	// maxCandidates bounds the ranked set retrieved from the corpus.
	maxCandidates = 120

	// defaultRetrievalTimeout bounds the embed-plus-corpus call.
	defaultRetrievalTimeout = 10 * time.Second
)

// SpellCorrector fixes misspelled query words before retrieval.
type SpellCorrector interface {
	Correct(query string) core.Correction
}

// QueryRecorder receives executed searches for asynchronous logging.
// Implementations must not block.
type QueryRecorder interface {
	Log(rawQuery, normalizedQuery string, resultCount int, sessionID string)
}

// Searcher provides hybrid semantic and lexical search over the recipe corpus.
type Searcher struct {
	recipes          storage.RecipeRepository
	embedder         ai.Embedder
	corrector        SpellCorrector
	recorder         QueryRecorder
	retrievalTimeout time.Duration
	logger           *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCorrector sets the spell corrector applied before retrieval.
// Without one, queries run as typed.
func WithCorrector(corrector SpellCorrector) Option {
	return func(s *Searcher) error {
		s.corrector = corrector
		return nil
	}
}

// WithQueryRecorder sets the recorder that receives executed searches.
// Without one, searches are not logged.
func WithQueryRecorder(recorder QueryRecorder) Option {
	return func(s *Searcher) error {
		s.recorder = recorder
		return nil
	}
}

// WithRetrievalTimeout bounds the embedding and corpus calls.
// Default is 10 seconds.
func WithRetrievalTimeout(timeout time.Duration) Option {
	return func(s *Searcher) error {
		if timeout > 0 {
			s.retrievalTimeout = timeout
		}
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	recipes storage.RecipeRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if recipes == nil {
		return nil, ErrRecipeRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		recipes:          recipes,
		embedder:         embedder,
		retrievalTimeout: defaultRetrievalTimeout,
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the query and returns the requested page of ranked results.
// Page numbers outside [1, totalPages] are clamped.
func (s *Searcher) Search(ctx context.Context, query string, page int) (*core.SearchPage, error) {
	return s.SearchWithMonitor(ctx, query, page, nil)
}

// SearchWithMonitor runs the query with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, page int, monitor SearchMonitor) (*core.SearchPage, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	normalized := core.NormalizeQuery(query)
	monitor.Start(normalized)

	if page < 1 {
		page = 1
	}

	// Empty queries return an empty page, not an error.
	if normalized == "" {
		result := emptyPage()
		monitor.Finish(result)
		return result, nil
	}

	// 1. Spell-correct the query before retrieval
	correction := core.Correction{Original: normalized, Corrected: normalized}
	if s.corrector != nil {
		correction = s.corrector.Correct(normalized)
	}
	effective := correction.Corrected
	monitor.AfterSpellCorrection(correction)

	// 2. Embed and retrieve candidates, under one bounded deadline
	retrievalCtx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	defer cancel()

	embedding, err := s.embedder.EmbedText(retrievalCtx, effective)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", effective, "err", err)
		return nil, fmt.Errorf("generating query embedding: %w (%s)", ErrRetrievalUnavailable, err)
	}

	matches, err := s.recipes.FindSimilar(retrievalCtx, embedding, vectorSimilarityFloor, maxCandidates)
	if err != nil {
		s.logger.Error("error querying corpus for similar recipes", "err", err)
		return nil, fmt.Errorf("querying corpus: %w (%s)", ErrRetrievalUnavailable, err)
	}

	matchIds := make([]uint64, 0, len(matches))
	for _, match := range matches {
		matchIds = append(matchIds, uint64(match.Recipe.Id))
	}
	monitor.AfterVectorSearch(matchIds)

	// 3. Blend vector similarity with lexical overlap
	queryTokens := vocab.Tokenize(effective)

	ranked := make([]core.RecipeSummary, 0, len(matches))
	for _, match := range matches {
		vectorScore := float64(match.Score)
		lexicalScore := lexicalOverlap(queryTokens, match.Recipe)
		blended := vectorWeight*vectorScore + lexicalWeight*lexicalScore
		monitor.Scored(match.Recipe.Id, vectorScore, lexicalScore, blended)

		ranked = append(ranked, core.RecipeSummary{
			Id:          match.Recipe.Id,
			Name:        match.Recipe.Name,
			Image:       match.Recipe.Image,
			URL:         match.Recipe.URL,
			Rating:      match.Recipe.Rating,
			ReviewCount: match.Recipe.ReviewCount,
			Score:       blended,
		})
	}

	// Sort by score descending; equal scores order by Id so paging is stable
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Id < ranked[j].Id
	})

	// 4. Slice out the requested page
	totalResults := len(ranked)
	totalPages := (totalResults + PageSize - 1) / PageSize
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var results []core.RecipeSummary
	if totalPages > 0 {
		start := (page - 1) * PageSize
		end := start + PageSize
		if end > totalResults {
			end = totalResults
		}
		results = ranked[start:end]
	} else {
		results = []core.RecipeSummary{}
	}

	result := &core.SearchPage{
		Results:      results,
		TotalResults: totalResults,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}
	if correction.Changed {
		result.Correction = &correction
	}

	// 5. Best-effort query logging; never blocks or fails the caller
	if s.recorder != nil {
		s.recorder.Log(normalized, effective, totalResults, SessionIDFromContext(ctx))
	}

	monitor.Finish(result)
	return result, nil
}

func emptyPage() *core.SearchPage {
	return &core.SearchPage{
		Results:      []core.RecipeSummary{},
		TotalResults: 0,
		TotalPages:   0,
		CurrentPage:  1,
	}
}
