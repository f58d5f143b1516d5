// Package spell corrects misspelled query words against the corpus
// vocabulary.
//
// Correction is per word: each word in the normalized query is corrected
// independently and the results rejoined, so a query with one typo keeps
// its other words intact ("chiken biriyani" becomes "chicken biryani").
// Words shorter than three characters and words already in the
// vocabulary pass through unchanged. A candidate must sit within a small
// edit distance (one edit, or two for words longer than six characters),
// within two characters of the word's length, and have enough corpus
// support to be offered. Among candidates, higher corpus frequency wins.
package spell
