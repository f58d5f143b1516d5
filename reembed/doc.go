// Package reembed provides functionality for reembedding the recipe corpus
// with new or updated embedding models.
//
// This package supports batch processing of recipes, progress tracking,
// retry logic with exponential backoff, and vector normalization to ensure
// compatibility with cosine similarity search.
package reembed
