// Package fixtures loads the catalog of canned drill responses.
//
// The catalog is a YAML document mapping drill name to case name to a flat
// response object with a mandatory integer "status". The default catalog is
// embedded in the binary; a file on disk can replace it so learners can
// practice diffs and merges on the data itself.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	yaml "gopkg.in/yaml.v3"

	"github.com/patrickwarner/gitdrills/internal/models"
)

//go:embed fixtures.yaml
var embedded []byte

var (
	// ErrUnknownDrill is returned when a drill is not in the catalog.
	ErrUnknownDrill = errors.New("unknown drill")
	// ErrUnknownCase is returned when a drill has no case by that name.
	ErrUnknownCase = errors.New("unknown case")
	// ErrEmptyCatalog is returned when a document defines no drills.
	ErrEmptyCatalog = errors.New("catalog defines no drills")
)

// Catalog is an immutable set of canned responses. It is safe for
// concurrent use once loaded.
type Catalog struct {
	drills map[string]map[string]models.Response
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads the catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML (or JSON) catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{drills: make(map[string]map[string]models.Response, len(raw))}
	for drill, cases := range raw {
		c.drills[drill] = make(map[string]models.Response, len(cases))
		for name, body := range cases {
			resp, err := models.ResponseFromMap(body)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", drill, name, err)
			}
			if resp.Status < 100 || resp.Status > 599 {
				return nil, fmt.Errorf("%s/%s: status %d out of range", drill, name, resp.Status)
			}
			// Served as JSON, so anything json cannot encode (e.g. maps
			// with non-string keys) is rejected here rather than at request time.
			if _, err := json.Marshal(resp); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", drill, name, err)
			}
			c.drills[drill][name] = resp
		}
	}
	return c, nil
}

// Lookup returns the canned response for a drill case.
func (c *Catalog) Lookup(drill, name string) (models.Response, error) {
	cases, ok := c.drills[drill]
	if !ok {
		return models.Response{}, fmt.Errorf("%w: %q", ErrUnknownDrill, drill)
	}
	resp, ok := cases[name]
	if !ok {
		return models.Response{}, fmt.Errorf("%w: %q in drill %q", ErrUnknownCase, name, drill)
	}
	return resp, nil
}

// Drills returns the drill names in sorted order.
func (c *Catalog) Drills() []string {
	names := make([]string, 0, len(c.drills))
	for name := range c.drills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cases returns the case names of a drill in sorted order.
func (c *Catalog) Cases(drill string) ([]string, error) {
	cases, ok := c.drills[drill]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDrill, drill)
	}
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
