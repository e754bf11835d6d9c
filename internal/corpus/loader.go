// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// Format identifies a dataset encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// ParseFormat resolves an explicit format name, falling back to the file
// extension of path when name is empty.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f := Format(strings.ToLower(name)); f {
	case FormatCSV, FormatTSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Options selects the dataset columns holding each recipe field.
// JSON datasets always use the title, ingredients and instructions keys.
type Options struct {
	Format             string
	TitleColumn        string
	IngredientsColumn  string
	InstructionsColumn string
}

// DefaultOptions matches the column layout of the public recipe dataset.
func DefaultOptions() Options {
	return Options{
		TitleColumn:        "Title",
		IngredientsColumn:  "Cleaned_Ingredients",
		InstructionsColumn: "Instructions",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TitleColumn == "" {
		o.TitleColumn = d.TitleColumn
	}
	if o.IngredientsColumn == "" {
		o.IngredientsColumn = d.IngredientsColumn
	}
	if o.InstructionsColumn == "" {
		o.InstructionsColumn = d.InstructionsColumn
	}
	return o
}

// Stats counts what happened to each dataset row during a load.
type Stats struct {
	RowsRead      int `json:"rows_read"`
	Kept          int `json:"kept"`
	MissingField  int `json:"dropped_missing_field"`
	MalformedList int `json:"dropped_malformed_list"`
	NoIngredients int `json:"dropped_no_ingredients"`
}

// Dropped returns the total number of rejected rows.
func (s Stats) Dropped() int {
	return s.MissingField + s.MalformedList + s.NoIngredients
}

// LoadFile reads a dataset from disk. Row-level problems drop the row and
// are counted in Stats; structural problems return an error.
func LoadFile(path string, opts Options) (*Corpus, Stats, error) {
	format, err := ParseFormat(opts.Format, path)
	if err != nil {
		return nil, Stats{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Read(f, format, opts)
}

// Read decodes a dataset stream in the given format.
func Read(r io.Reader, format Format, opts Options) (*Corpus, Stats, error) {
	opts = opts.withDefaults()
	switch format {
	case FormatCSV:
		return readDelimited(r, ',', opts)
	case FormatTSV:
		return readDelimited(r, '\t', opts)
	case FormatJSON:
		return readJSON(r)
	default:
		return nil, Stats{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// builder accumulates accepted recipes and drop counters.
type builder struct {
	recipes []Recipe
	stats   Stats
}

func (b *builder) add(title string, raw []string, instructions string) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(instructions) == "" {
		b.stats.MissingField++
		return
	}
	rec, ok := NewRecipe(title, raw, instructions)
	if !ok {
		b.stats.NoIngredients++
		return
	}
	b.recipes = append(b.recipes, rec)
	b.stats.Kept++
}

func (b *builder) addEncoded(title, list, instructions string) {
	if strings.TrimSpace(list) == "" {
		b.stats.MissingField++
		return
	}
	raw, err := ParseIngredientList(list)
	if err != nil {
		b.stats.MalformedList++
		return
	}
	b.add(title, raw, instructions)
}

func (b *builder) corpus() *Corpus {
	return &Corpus{recipes: append([]Recipe{}, b.recipes...)}
}

func readDelimited(r io.Reader, comma rune, opts Options) (*Corpus, Stats, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, Stats{}, ErrEmptyDataset
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header, opts)
	if err != nil {
		return nil, Stats{}, err
	}

	var b builder
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, b.stats, fmt.Errorf("read row %d: %w", b.stats.RowsRead+1, err)
		}
		b.stats.RowsRead++
		b.addEncoded(cell(row, cols[0]), cell(row, cols[1]), cell(row, cols[2]))
	}
	return b.corpus(), b.stats, nil
}

// resolveColumns returns the title, ingredients and instructions column
// indexes. Exact header matches win over case-insensitive ones.
func resolveColumns(header []string, opts Options) ([3]int, error) {
	names := [3]string{opts.TitleColumn, opts.IngredientsColumn, opts.InstructionsColumn}
	var idx [3]int
	for i, name := range names {
		idx[i] = -1
		for j, h := range header {
			h = cleanHeader(h)
			if h == name {
				idx[i] = j
				break
			}
			if idx[i] < 0 && strings.EqualFold(h, name) {
				idx[i] = j
			}
		}
		if idx[i] < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// jsonRecipe accepts ingredients either as a JSON array or as the same
// list literal used by delimited datasets.
type jsonRecipe struct {
	Title        string          `json:"title"`
	Ingredients  json.RawMessage `json:"ingredients"`
	Instructions string          `json:"instructions"`
}

func readJSON(r io.Reader) (*Corpus, Stats, error) {
	var rows []jsonRecipe
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, Stats{}, fmt.Errorf("decode dataset: %w", err)
	}

	var b builder
	for i := range rows {
		row := &rows[i]
		b.stats.RowsRead++

		raw := strings.TrimSpace(string(row.Ingredients))
		switch {
		case raw == "" || raw == "null":
			b.stats.MissingField++
		case raw[0] == '[':
			var items []string
			if err := json.Unmarshal(row.Ingredients, &items); err != nil {
				b.stats.MalformedList++
				continue
			}
			b.add(row.Title, items, row.Instructions)
		case raw[0] == '"':
			var encoded string
			if err := json.Unmarshal(row.Ingredients, &encoded); err != nil {
				b.stats.MalformedList++
				continue
			}
			b.addEncoded(row.Title, encoded, row.Instructions)
		default:
			b.stats.MalformedList++
		}
	}
	return b.corpus(), b.stats, nil
}
