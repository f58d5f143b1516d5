package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tastory/tastory"
	"github.com/tastory/tastory/core"
)

// Built-in sample corpus for demos and local development.
var sampleRecipes = []*core.Recipe{
	{
		Name:        "Chicken Biryani",
		Ingredients: []string{"chicken", "basmati rice", "yogurt", "onion", "garam masala", "saffron"},
		Rating:      4.7, ReviewCount: 412,
		URL: "https://example.com/recipes/chicken-biryani",
	},
	{
		Name:        "Butter Chicken",
		Ingredients: []string{"chicken", "butter", "tomato", "cream", "garlic", "ginger"},
		Rating:      4.6, ReviewCount: 388,
		URL: "https://example.com/recipes/butter-chicken",
	},
	{
		Name:        "Malai Kofta",
		Ingredients: []string{"paneer", "potato", "cream", "cashew", "malai"},
		Rating:      4.4, ReviewCount: 156,
		URL: "https://example.com/recipes/malai-kofta",
	},
	{
		Name:        "Spaghetti Carbonara",
		Ingredients: []string{"spaghetti", "egg", "pancetta", "pecorino", "black pepper"},
		Rating:      4.8, ReviewCount: 523,
		URL: "https://example.com/recipes/spaghetti-carbonara",
	},
	{
		Name:        "Pasta Primavera",
		Ingredients: []string{"penne", "zucchini", "bell pepper", "parmesan", "basil"},
		Rating:      4.2, ReviewCount: 98,
		URL: "https://example.com/recipes/pasta-primavera",
	},
	{
		Name:        "Greek Salad",
		Ingredients: []string{"cucumber", "tomato", "feta", "olive", "red onion", "oregano"},
		Rating:      4.3, ReviewCount: 201,
		URL: "https://example.com/recipes/greek-salad",
	},
	{
		Name:        "Beef Tacos",
		Ingredients: []string{"ground beef", "tortilla", "cheddar", "lettuce", "salsa"},
		Rating:      4.5, ReviewCount: 310,
		URL: "https://example.com/recipes/beef-tacos",
	},
	{
		Name:        "Vegetable Stir Fry",
		Ingredients: []string{"broccoli", "carrot", "snap peas", "soy sauce", "sesame oil"},
		Rating:      4.1, ReviewCount: 87,
		URL: "https://example.com/recipes/vegetable-stir-fry",
	},
	{
		Name:        "Chicken Tikka Masala",
		Ingredients: []string{"chicken", "yogurt", "tomato", "cream", "tikka masala"},
		Rating:      4.7, ReviewCount: 445,
		URL: "https://example.com/recipes/chicken-tikka-masala",
	},
	{
		Name:        "Margherita Pizza",
		Ingredients: []string{"pizza dough", "tomato", "mozzarella", "basil", "olive oil"},
		Rating:      4.6, ReviewCount: 367,
		URL: "https://example.com/recipes/margherita-pizza",
	},
	{
		Name:        "Mushroom Risotto",
		Ingredients: []string{"arborio rice", "mushroom", "white wine", "parmesan", "shallot"},
		Rating:      4.4, ReviewCount: 178,
		URL: "https://example.com/recipes/mushroom-risotto",
	},
	{
		Name:        "Chocolate Lava Cake",
		Ingredients: []string{"dark chocolate", "butter", "egg", "sugar", "flour"},
		Rating:      4.9, ReviewCount: 602,
		URL: "https://example.com/recipes/chocolate-lava-cake",
	},
}

// querySeed describes how many times a query appears in each trailing
// window of the seeded day. Recent-heavy queries trend upward.
type querySeed struct {
	query  string
	recent int // last hour
	medium int // 1h..6h ago
	daily  int // 6h..24h ago
}

var querySeeds = []querySeed{
	{query: "chicken biryani", recent: 12, medium: 25, daily: 30},
	{query: "pasta", recent: 10, medium: 20, daily: 20},
	{query: "butter chicken", recent: 6, medium: 14, daily: 22},
	{query: "pizza", recent: 4, medium: 10, daily: 26},
	{query: "tacos", recent: 3, medium: 6, daily: 12},
	{query: "chocolate cake", recent: 2, medium: 8, daily: 15},
	{query: "greek salad", recent: 1, medium: 3, daily: 8},
	{query: "risotto", recent: 0, medium: 2, daily: 6},
	{query: "stir fry", recent: 1, medium: 1, daily: 3}, // below the trending floor
}

var (
	dbPath       = flag.String("db", "./tastory_db", "path to BadgerDB corpus directory")
	seedFileName = flag.String("src", "", "file of recipe seed data, one JSON object per line")
	skipLogs     = flag.Bool("skip-logs", false, "seed recipes only, no search logs")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// recipesFromFile returns an iterator over JSON-encoded recipes in a file.
func recipesFromFile(filename string) (iter.Seq2[*core.Recipe, error], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(*core.Recipe, error) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			recipe := &core.Recipe{}
			if err := json.Unmarshal(scanner.Bytes(), recipe); err != nil {
				yield(nil, err)
				return
			}
			if !yield(recipe, nil) {
				return
			}
		}
	}, nil
}

// recipesFromSlice returns an iterator over the built-in sample corpus.
func recipesFromSlice(recipes []*core.Recipe) iter.Seq2[*core.Recipe, error] {
	return func(yield func(*core.Recipe, error) bool) {
		for _, recipe := range recipes {
			if !yield(recipe, nil) {
				return
			}
		}
	}
}

// loadBatched reads from a source iterator and loads recipes in batches.
func loadBatched(ctx context.Context, engine *tastory.Engine, source iter.Seq2[*core.Recipe, error], batchSize int) (int, error) {
	total := 0
	batch := make([]*core.Recipe, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := engine.LoadRecipes(ctx, batch...); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for recipe, err := range source {
		if err != nil {
			return total, err
		}
		batch = append(batch, recipe)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	return total, flush()
}

// seedSearchLogs writes a day of weighted search traffic so trending has
// something to aggregate.
func seedSearchLogs(ctx context.Context, engine *tastory.Engine) (int, error) {
	now := time.Now().UTC()
	queryLog := engine.QueryLogRepository()

	// A small pool of session ids so sessions repeat like real traffic.
	sessions := make([]string, 40)
	for i := range sessions {
		sessions[i] = uuid.NewString()
	}

	total := 0
	write := func(query string, count int, oldest, newest time.Duration) error {
		span := oldest - newest
		for i := 0; i < count; i++ {
			ago := newest + time.Duration(rand.Int63n(int64(span)))
			_, err := queryLog.AppendEntries(ctx, &core.QueryLogEntry{
				RawQuery:        query,
				NormalizedQuery: query,
				Timestamp:       now.Add(-ago),
				SessionId:       sessions[rand.Intn(len(sessions))],
				ResultCount:     1 + rand.Intn(12),
			})
			if err != nil {
				return err
			}
			total++
		}
		return nil
	}

	for _, seed := range querySeeds {
		if err := write(seed.query, seed.recent, time.Hour, time.Minute); err != nil {
			return total, err
		}
		if err := write(seed.query, seed.medium, 6*time.Hour, time.Hour); err != nil {
			return total, err
		}
		if err := write(seed.query, seed.daily, 24*time.Hour, 6*time.Hour); err != nil {
			return total, err
		}
	}

	return total, nil
}

func main() {
	engine, err := tastory.NewEngine(*dbPath)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq2[*core.Recipe, error]
	if *seedFileName != "" {
		source, err = recipesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = recipesFromSlice(sampleRecipes)
	}

	loaded, err := loadBatched(ctx, engine, source, 5)
	if err != nil {
		panic(err)
	}
	slog.Info("recipes loaded", "count", loaded)

	if !*skipLogs {
		written, err := seedSearchLogs(ctx, engine)
		if err != nil {
			panic(err)
		}
		slog.Info("search log entries written", "count", written)

		if err := engine.TrendingScheduler().Trigger(ctx); err != nil {
			panic(err)
		}
		if snapshot := engine.TrendingCache().Current(); snapshot != nil {
			fmt.Printf("trending snapshot: %d items\n", len(snapshot.Items))
		}
	}
}
