package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Group holds a list of items either inline or behind a URL pointing at a
// YAML list document.
type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

// Resolve returns the inline items when present, otherwise downloads and
// parses the URL document.  Inline items take precedence.
func (g *Group[T]) Resolve(ctx context.Context) ([]T, error) {
	if g == nil {
		return nil, nil
	}
	if len(g.Items) > 0 {
		return g.Items, nil
	}
	if g.URL == "" {
		return nil, nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, g.URL)
	if err != nil {
		return nil, fmt.Errorf("download group %q: %w", g.URL, err)
	}
	var out []T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse group %q: %w", g.URL, err)
	}
	return out, nil
}

// Config is the root CLI configuration.
type Config struct {
	Names *Group[string] `yaml:"names,omitempty" json:"names,omitempty"`
}

// Load reads and parses a configuration document.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// NameList resolves the configured name list, if any.
func (c *Config) NameList(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, nil
	}
	return c.Names.Resolve(ctx)
}
