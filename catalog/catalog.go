// SPDX-License-Identifier: MIT
// Package: framefixtures/catalog
//
// catalog.go — named DSL fixtures loaded from YAML.
//
// Contract:
//   • Entries keep document order; names are unique and non-empty.
//   • Decoding rejects unknown fields.
//   • A Catalog is read-only after Load and safe for concurrent use.

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var builtin []byte

// Entry is one named fixture.
type Entry struct {
	Name        string `yaml:"name"`
	DSL         string `yaml:"dsl"`
	Description string `yaml:"description,omitempty"`
}

// Catalog is an ordered set of named fixtures.
type Catalog struct {
	Version  int     `yaml:"version"`
	Fixtures []Entry `yaml:"fixtures"`

	byName map[string]int
}

// Load reads a YAML catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog document.
func Decode(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalog, err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

var (
	builtinOnce sync.Once
	builtinCat  *Catalog
	builtinErr  error
)

// Builtin returns the catalog shipped with the module.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() { builtinCat, builtinErr = Decode(builtin) })
	return builtinCat, builtinErr
}

func (c *Catalog) index() error {
	c.byName = make(map[string]int, len(c.Fixtures))
	for i, e := range c.Fixtures {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("%w: fixture %d has no name", ErrCatalog, i)
		}
		if strings.TrimSpace(e.DSL) == "" {
			return fmt.Errorf("%w: fixture %q has no dsl", ErrCatalog, name)
		}
		if _, dup := c.byName[name]; dup {
			return fmt.Errorf("%w: fixture %q defined twice", ErrCatalog, name)
		}
		c.Fixtures[i].Name = name
		c.byName[name] = i
	}
	return nil
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.Fixtures[i], nil
}

// Names returns the fixture names in document order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Fixtures))
	for i, e := range c.Fixtures {
		out[i] = e.Name
	}
	return out
}

// Len returns the number of fixtures.
func (c *Catalog) Len() int { return len(c.Fixtures) }
