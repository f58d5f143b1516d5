package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "all-minilm", cfg.EmbeddingModel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://embeddings.internal/v1"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithRequestTimeout(2*time.Second),
	)

	assert.Equal(t, "http://embeddings.internal/v1", cfg.EmbeddingHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestConfig_Normalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("trims trailing slash before adding v1", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves canonical host alone", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("restores default timeout", func(t *testing.T) {
		cfg := NewConfig(WithRequestTimeout(0))
		cfg.Normalize()
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("nil config", func(t *testing.T) {
		var cfg *Config
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())
	})
}
