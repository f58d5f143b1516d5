// Package suggest produces autocomplete completions for partial query
// words.
//
// Completions come from the corpus vocabulary, so every suggestion is a
// term that actually appears in a recipe name or ingredient list.
// Results are capped at ten terms, ordered by corpus frequency with
// alphabetical tie-breaks, and prefixes under two characters return
// nothing.
package suggest
