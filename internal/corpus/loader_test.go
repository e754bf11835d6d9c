// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `Title,Cleaned_Ingredients,Instructions,Image_Name
Omelette,"['2 Eggs', 'milk', 'salt']",Beat and fry.,omelette.jpg
Salad,"['Tomatoes', 'onions', 'oil']",Mix raw.,salad.jpg
No Instructions,"['flour']",,x.jpg
,"['sugar']",Stir.,y.jpg
Broken List,"eggs, milk",Whisk.,z.jpg
Only Punctuation,"['!!', '  ']",Nothing.,w.jpg
Short Row,"['rice']"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "recipes.csv", sampleCSV)
	c, stats, err := LoadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	omelette := c.At(0)
	if omelette.Title != "Omelette" {
		t.Errorf("At(0).Title = %q, want Omelette", omelette.Title)
	}
	if want := []string{"2 egg", "milk", "salt"}; !reflect.DeepEqual(omelette.Ingredients, want) {
		t.Errorf("At(0).Ingredients = %v, want %v", omelette.Ingredients, want)
	}
	if omelette.Instructions != "Beat and fry." {
		t.Errorf("At(0).Instructions = %q", omelette.Instructions)
	}

	salad := c.At(1)
	if want := []string{"tomatoes", "onion", "oil"}; !reflect.DeepEqual(salad.Ingredients, want) {
		t.Errorf("At(1).Ingredients = %v, want %v", salad.Ingredients, want)
	}

	want := Stats{RowsRead: 7, Kept: 2, MissingField: 3, MalformedList: 1, NoIngredients: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	if stats.Dropped() != 5 {
		t.Errorf("Dropped() = %d, want 5", stats.Dropped())
	}
}

func TestLoadFile_CustomColumnsTSV(t *testing.T) {
	t.Parallel()

	content := "\ufeffname\titems\tsteps\n" +
		"Toast\t['bread', 'butter']\tToast it.\n"
	path := writeFile(t, "recipes.tsv", content)

	opts := Options{TitleColumn: "Name", IngredientsColumn: "items", InstructionsColumn: "steps"}
	c, _, err := LoadFile(path, opts)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 1 || c.At(0).Title != "Toast" {
		t.Fatalf("unexpected corpus: len=%d", c.Len())
	}
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	content := `[
		{"title": "Pancakes", "ingredients": ["Eggs", "Flour", "milk"], "instructions": "Mix and fry."},
		{"title": "Soup", "ingredients": "['potato', 'leaf']", "instructions": "Simmer."},
		{"title": "Empty", "ingredients": [], "instructions": "Nothing."},
		{"title": "Bad", "ingredients": 42, "instructions": "Nope."},
		{"title": "Missing", "instructions": "Nope."}
	]`
	path := writeFile(t, "recipes.json", content)

	c, stats, err := LoadFile(path, Options{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if want := []string{"potatoes", "leaves"}; !reflect.DeepEqual(c.At(1).Ingredients, want) {
		t.Errorf("At(1).Ingredients = %v, want %v", c.At(1).Ingredients, want)
	}
	want := Stats{RowsRead: 5, Kept: 2, MissingField: 1, MalformedList: 1, NoIngredients: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestLoadFile_StructuralErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		path    func() string
		opts    Options
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func() string { return filepath.Join(dir, "absent.csv") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "unknown extension",
			path:    func() string { return filepath.Join(dir, "recipes.xlsx") },
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "empty file",
			path:    func() string { return writeFile(t, "empty.csv", "") },
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "missing column",
			path:    func() string { return writeFile(t, "cols.csv", "Title,Instructions\nA,B\n") },
			wantErr: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := LoadFile(tt.path(), tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadFile() error = %v, want %v", err, tt.wantErr)
			}
			if c != nil {
				t.Errorf("LoadFile() corpus = %v, want nil on error", c)
			}
		})
	}
}

func TestRead_MalformedCSV(t *testing.T) {
	t.Parallel()

	in := "Title,Cleaned_Ingredients,Instructions\nA,\"['x']\" trailing\"junk,B\n"
	if _, _, err := Read(strings.NewReader(in), FormatCSV, DefaultOptions()); err == nil {
		t.Fatal("Read() expected error for bare quote")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, format, path string
		want               Format
		wantErr            bool
	}{
		{name: "csv by extension", path: "data/Recipes.CSV", want: FormatCSV},
		{name: "tsv by extension", path: "a.tsv", want: FormatTSV},
		{name: "json by extension", path: "a.json", want: FormatJSON},
		{name: "explicit overrides extension", format: "JSON", path: "a.csv", want: FormatJSON},
		{name: "no extension", path: "recipes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.format, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	var nilCorpus *Corpus
	if nilCorpus.Len() != 0 {
		t.Error("nil corpus Len() != 0")
	}
	if Empty().Len() != 0 {
		t.Error("Empty().Len() != 0")
	}

	r, ok := NewRecipe("  Omelette ", []string{"Eggs", "", "?"}, "Beat.")
	if !ok {
		t.Fatal("NewRecipe() rejected a valid row")
	}
	if r.Title != "Omelette" || !reflect.DeepEqual(r.Ingredients, []string{"egg"}) {
		t.Errorf("NewRecipe() = %+v", r)
	}

	src := []Recipe{r}
	c := New(src)
	src[0].Title = "changed"
	if c.At(0).Title != "Omelette" {
		t.Error("New() did not copy its input")
	}
	if docs := c.Documents(); len(docs) != 1 || docs[0][0] != "egg" {
		t.Errorf("Documents() = %v", docs)
	}

	for _, tc := range []struct {
		title, instructions string
		raw                 []string
	}{
		{"", "x", []string{"egg"}},
		{"t", "  ", []string{"egg"}},
		{"t", "x", []string{"...", " "}},
		{"t", "x", nil},
	} {
		if _, ok := NewRecipe(tc.title, tc.raw, tc.instructions); ok {
			t.Errorf("NewRecipe(%q, %v, %q) accepted an invalid row", tc.title, tc.raw, tc.instructions)
		}
	}
}
