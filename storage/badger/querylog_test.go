package badger

import (
	"context"
	"testing"
	"time"

	"github.com/tastory/tastory/core"
)

func TestQueryLogBasics(t *testing.T) {
	recipeRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		logRepo.Close()
		recipeRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	entry := &core.QueryLogEntry{
		RawQuery:        "Pasta Recipes",
		NormalizedQuery: "pasta recipes",
		Timestamp:       time.Now().UTC(),
		SessionId:       "session-1",
		ResultCount:     12,
	}

	added, err := logRepo.AppendEntries(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to append entry: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
}

func TestQueryLogNoDeduplication(t *testing.T) {
	recipeRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); recipeRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	// Two identical queries in the same instant stay distinct entries
	first := &core.QueryLogEntry{NormalizedQuery: "pasta", RawQuery: "pasta", Timestamp: now, SessionId: "s1", ResultCount: 5}
	second := &core.QueryLogEntry{NormalizedQuery: "pasta", RawQuery: "pasta", Timestamp: now, SessionId: "s1", ResultCount: 5}

	_, err = logRepo.AppendEntries(ctx, first, second)
	if err != nil {
		t.Fatalf("Failed to append entries: %v", err)
	}

	if first.Id == second.Id {
		t.Fatalf("Expected distinct IDs for identical queries, both got %d", first.Id)
	}

	entries, err := logRepo.GetEntriesByTimeRange(ctx, now.Add(-time.Minute), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Failed to query time range: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
}

func TestQueryLogTimeRange(t *testing.T) {
	recipeRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); recipeRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	// Append out of chronological order; the time index restores ordering
	entries := []*core.QueryLogEntry{
		{NormalizedQuery: "query c", RawQuery: "query c", Timestamp: now},
		{NormalizedQuery: "query a", RawQuery: "query a", Timestamp: now.Add(-2 * time.Hour)},
		{NormalizedQuery: "query b", RawQuery: "query b", Timestamp: now.Add(-1 * time.Hour)},
	}

	_, err = logRepo.AppendEntries(ctx, entries...)
	if err != nil {
		t.Fatalf("Failed to append entries: %v", err)
	}

	start := now.Add(-90 * time.Minute)
	end := now.Add(time.Minute)
	got, err := logRepo.GetEntriesByTimeRange(ctx, start, end)
	if err != nil {
		t.Fatalf("Failed to query time range: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 entries in range, got %d", len(got))
	}
	if got[0].NormalizedQuery != "query b" || got[1].NormalizedQuery != "query c" {
		t.Fatalf("Expected [query b, query c] in timestamp order, got [%s, %s]",
			got[0].NormalizedQuery, got[1].NormalizedQuery)
	}
}

func TestQueryLogTimeRangeExcludesEnd(t *testing.T) {
	recipeRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); recipeRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err = logRepo.AppendEntries(ctx, &core.QueryLogEntry{
		NormalizedQuery: "boundary", RawQuery: "boundary", Timestamp: now,
	})
	if err != nil {
		t.Fatalf("Failed to append entry: %v", err)
	}

	// Entry at exactly the end boundary is excluded
	got, err := logRepo.GetEntriesByTimeRange(ctx, now.Add(-time.Hour), now)
	if err != nil {
		t.Fatalf("Failed to query time range: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Expected 0 entries, got %d", len(got))
	}

	got, err = logRepo.GetEntriesByTimeRange(ctx, now, now.Add(time.Second))
	if err != nil {
		t.Fatalf("Failed to query time range: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(got))
	}
}
