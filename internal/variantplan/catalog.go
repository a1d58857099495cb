package variantplan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog is the set of templates known to the process, keyed by ID.
type Catalog struct {
	byID map[string]Template
}

// NewCatalog indexes templates by ID. Templates without an ID or with a
// duplicate ID are rejected.
func NewCatalog(templates ...Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Template, len(templates))}
	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q has no id", t.Title)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		c.byID[t.ID] = t
	}
	return c, nil
}

// LoadCatalog reads every .yaml, .yml and .json file in dir. A missing
// directory yields an empty catalog.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return NewCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	var templates []Template
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		path := filepath.Join(dir, e.Name())
		t, err := LoadTemplate(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if t.ID == "" {
			t.ID = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		templates = append(templates, t)
	}
	return NewCatalog(templates...)
}

// Get returns the template with the given ID.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// IDs returns the template IDs in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.byID) }
