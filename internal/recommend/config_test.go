// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}

	t.Run("dataset columns default to the recipe table", func(t *testing.T) {
		if cfg.Dataset.TitleColumn != "Title" {
			t.Errorf("TitleColumn = %q, want Title", cfg.Dataset.TitleColumn)
		}
		if cfg.Dataset.IngredientsColumn != "Cleaned_Ingredients" {
			t.Errorf("IngredientsColumn = %q, want Cleaned_Ingredients", cfg.Dataset.IngredientsColumn)
		}
		if cfg.Dataset.InstructionsColumn != "Instructions" {
			t.Errorf("InstructionsColumn = %q, want Instructions", cfg.Dataset.InstructionsColumn)
		}
	})

	t.Run("limits are sensible", func(t *testing.T) {
		if cfg.Limits.DefaultLimit != 10 {
			t.Errorf("DefaultLimit = %d, want 10", cfg.Limits.DefaultLimit)
		}
		if cfg.Limits.MaxLimit < cfg.Limits.DefaultLimit {
			t.Errorf("MaxLimit = %d < DefaultLimit = %d", cfg.Limits.MaxLimit, cfg.Limits.DefaultLimit)
		}
	})

	t.Run("cache is enabled", func(t *testing.T) {
		if !cfg.Cache.Enabled {
			t.Error("Cache.Enabled = false, want true")
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "csv dataset path",
			modify:    func(c *Config) { c.Dataset.Path = "/data/recipes.csv" },
			wantError: false,
		},
		{
			name:      "unknown dataset extension",
			modify:    func(c *Config) { c.Dataset.Path = "/data/recipes.parquet" },
			wantError: true,
		},
		{
			name:      "explicit format overrides extension",
			modify:    func(c *Config) { c.Dataset.Path = "/data/recipes.dat"; c.Dataset.Format = "tsv" },
			wantError: false,
		},
		{
			name:      "negative default limit",
			modify:    func(c *Config) { c.Limits.DefaultLimit = -1 },
			wantError: true,
		},
		{
			name:      "negative max limit",
			modify:    func(c *Config) { c.Limits.MaxLimit = -1 },
			wantError: true,
		},
		{
			name:      "max limit below default",
			modify:    func(c *Config) { c.Limits.MaxLimit = 5; c.Limits.DefaultLimit = 10 },
			wantError: true,
		},
		{
			name:      "uncapped limit",
			modify:    func(c *Config) { c.Limits.MaxLimit = 0 },
			wantError: false,
		},
		{
			name:      "zero max ingredients",
			modify:    func(c *Config) { c.Limits.MaxIngredients = 0 },
			wantError: true,
		},
		{
			name:      "zero cache entries",
			modify:    func(c *Config) { c.Cache.MaxEntries = 0 },
			wantError: true,
		},
		{
			name:      "zero cache ttl",
			modify:    func(c *Config) { c.Cache.TTL = 0 },
			wantError: true,
		},
		{
			name:      "disabled cache ignores its settings",
			modify:    func(c *Config) { c.Cache.Enabled = false; c.Cache.MaxEntries = 0; c.Cache.TTL = 0 },
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestDatasetConfig_Options(t *testing.T) {
	d := DatasetConfig{
		Path:               "recipes.json",
		Format:             "json",
		TitleColumn:        "name",
		IngredientsColumn:  "items",
		InstructionsColumn: "steps",
	}
	opts := d.Options()
	if opts.Format != "json" || opts.TitleColumn != "name" || opts.IngredientsColumn != "items" || opts.InstructionsColumn != "steps" {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	original.Dataset.Path = "a.csv"
	original.Limits.DefaultLimit = 7

	clone := original.Clone()

	t.Run("clone has same values", func(t *testing.T) {
		if clone.Dataset.Path != "a.csv" || clone.Limits.DefaultLimit != 7 {
			t.Errorf("clone = %+v", clone)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		clone.Limits.DefaultLimit = 3
		clone.Dataset.Path = "b.csv"
		if original.Limits.DefaultLimit != 7 || original.Dataset.Path != "a.csv" {
			t.Error("modifying clone affected original")
		}
	})
}

func TestConfig_MarshalJSON(t *testing.T) {
	cfg := DefaultConfig()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	t.Run("cache ttl is string", func(t *testing.T) {
		cacheSection, ok := parsed["cache"].(map[string]interface{})
		if !ok {
			t.Fatal("cache field not found or wrong type")
		}
		ttl, ok := cacheSection["ttl"].(string)
		if !ok {
			t.Fatal("cache.ttl is not a string")
		}
		if ttl != "5m0s" {
			t.Errorf("cache.ttl = %q, want 5m0s", ttl)
		}
	})

	t.Run("dataset section present", func(t *testing.T) {
		dataset, ok := parsed["dataset"].(map[string]interface{})
		if !ok {
			t.Fatal("dataset field not found or wrong type")
		}
		if dataset["title_column"] != "Title" {
			t.Errorf("dataset.title_column = %v, want Title", dataset["title_column"])
		}
	})
}
