// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package tfidf

import (
	"math"
	"sort"
	"strings"
)

// Index is a fitted TF-IDF model over a fixed set of documents.
// It is immutable after Build and safe for concurrent use.
type Index struct {
	vocab  []string
	column map[string]int
	idf    []float64
	rows   []Vector
}

// Tokenize splits a pseudo-document on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Build fits an index over docs. Each document is a list of normalized
// ingredient keys that is joined with spaces and re-tokenized, so a
// multi-word key contributes one term per word.
//
// Term frequency is the raw count, idf is ln((1+n)/(1+df))+1 and every row
// is scaled to unit length.
func Build(docs [][]string) *Index {
	n := len(docs)
	tokenized := make([][]string, n)
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(strings.Join(doc, " "))
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	ix := &Index{
		vocab:  vocab,
		column: make(map[string]int, len(vocab)),
		idf:    make([]float64, len(vocab)),
		rows:   make([]Vector, n),
	}
	for col, term := range vocab {
		ix.column[term] = col
		ix.idf[col] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	for i, tokens := range tokenized {
		ix.rows[i] = ix.weigh(tokens)
	}
	return ix
}

// Transform projects a query pseudo-document into the index space.
// Terms outside the vocabulary are ignored.
func (ix *Index) Transform(text string) Vector {
	return ix.weigh(Tokenize(text))
}

// weigh turns tokens into a unit-length tf-idf vector.
func (ix *Index) weigh(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if col, ok := ix.column[tok]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	v := Vector{
		Terms:   make([]int, 0, len(counts)),
		Weights: make([]float64, 0, len(counts)),
	}
	for col := range counts {
		v.Terms = append(v.Terms, col)
	}
	sort.Ints(v.Terms)
	for _, col := range v.Terms {
		v.Weights = append(v.Weights, float64(counts[col])*ix.idf[col])
	}
	v.normalize()
	return v
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.rows)
}

// Row returns the vector of document i.
func (ix *Index) Row(i int) Vector {
	return ix.rows[i]
}

// VocabularySize returns the number of distinct terms.
func (ix *Index) VocabularySize() int {
	if ix == nil {
		return 0
	}
	return len(ix.vocab)
}

// terms returns a copy of the sorted vocabulary.
func (ix *Index) terms() []string {
	return append([]string(nil), ix.vocab...)
}

// idfOf returns the inverse document frequency of term.
func (ix *Index) idfOf(term string) (float64, bool) {
	col, ok := ix.column[term]
	if !ok {
		return 0, false
	}
	return ix.idf[col], true
}
