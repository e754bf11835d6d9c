// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pantrychef/internal/corpus"
	"github.com/tomtom215/pantrychef/internal/metrics"
	"github.com/tomtom215/pantrychef/internal/tfidf"
)

// ErrNoDataset is returned when a reload is requested without a dataset path.
var ErrNoDataset = errors.New("no dataset configured")

// Snapshot pairs a corpus with the index built from it. A snapshot is
// immutable once published and may be shared between goroutines freely.
type Snapshot struct {
	Corpus *corpus.Corpus
	Index  *tfidf.Index

	// Version is assigned by the Engine when the snapshot is published.
	Version uint64

	// Source is the dataset path, empty for in-memory corpora.
	Source string

	LoadedAt     time.Time
	LoadDuration time.Duration
	Stats        corpus.Stats

	// Err is the cause when the snapshot is an empty fallback.
	Err error
}

// NewSnapshot indexes c. A nil corpus is treated as empty.
func NewSnapshot(c *corpus.Corpus) *Snapshot {
	if c == nil {
		c = corpus.Empty()
	}
	return &Snapshot{
		Corpus:   c,
		Index:    tfidf.Build(c.Documents()),
		LoadedAt: time.Now(),
		Stats:    corpus.Stats{RowsRead: c.Len(), Kept: c.Len()},
	}
}

// emptySnapshot is the degrade value for a failed load.
func emptySnapshot(source string, err error) *Snapshot {
	s := NewSnapshot(corpus.Empty())
	s.Source = source
	s.Stats = corpus.Stats{}
	s.Err = err
	return s
}

// Len returns the number of recipes. A nil snapshot is empty.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.Corpus.Len()
}

// Status summarizes the snapshot for operators.
func (s *Snapshot) Status() Status {
	if s == nil {
		return Status{}
	}
	st := Status{
		Version:    s.Version,
		Source:     s.Source,
		Recipes:    s.Len(),
		Vocabulary: s.Index.VocabularySize(),
		LoadedAt:   s.LoadedAt,
		LoadMS:     s.LoadDuration.Milliseconds(),
		Stats:      s.Stats,
	}
	if s.Err != nil {
		st.Error = s.Err.Error()
	}
	return st
}

// withVersion returns a copy of s carrying version.
func (s *Snapshot) withVersion(version uint64) *Snapshot {
	cp := *s
	cp.Version = version
	return &cp
}

// Load reads the dataset at path and indexes it. Load never fails: any
// error, including a panic while parsing, is logged and produces an empty
// snapshot whose Err field holds the cause.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(path string, opts corpus.Options, logger zerolog.Logger) (snap *Snapshot) {
	start := time.Now()
	logger = logger.With().Str("component", "corpus").Str("path", path).Logger()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during load: %v", r)
			metrics.RecordCorpusLoad(time.Since(start), metrics.DropCounts{}, err)
			logger.Error().Err(err).Msg("corpus load panicked, serving empty corpus")
			snap = emptySnapshot(path, err)
		}
	}()

	if path == "" {
		return emptySnapshot(path, ErrNoDataset)
	}

	c, stats, err := corpus.LoadFile(path, opts)
	if err != nil {
		metrics.RecordCorpusLoad(time.Since(start), metrics.DropCounts{}, err)
		logger.Error().Err(err).Msg("corpus load failed, serving empty corpus")
		return emptySnapshot(path, err)
	}

	snap = &Snapshot{
		Corpus: c,
		Index:  tfidf.Build(c.Documents()),
		Source: path,
		Stats:  stats,
	}
	snap.LoadedAt = time.Now()
	snap.LoadDuration = snap.LoadedAt.Sub(start)

	metrics.RecordCorpusLoad(snap.LoadDuration, metrics.DropCounts{
		MissingField:  stats.MissingField,
		MalformedList: stats.MalformedList,
		NoIngredients: stats.NoIngredients,
	}, nil)

	event := logger.Info()
	if stats.Dropped() > 0 {
		event = logger.Warn()
	}
	event.
		Int("rows", stats.RowsRead).
		Int("recipes", c.Len()).
		Int("dropped", stats.Dropped()).
		Int("vocabulary", snap.Index.VocabularySize()).
		Dur("duration", snap.LoadDuration).
		Msg("corpus loaded")

	return snap
}
