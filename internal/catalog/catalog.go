// Package catalog maps classifier class ids to disease names and remedy
// guidance. The catalog is loaded once at startup and is immutable
// afterwards, so concurrent readers need no synchronization.
package catalog

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Entry is one catalog row: the display name for a class plus its remedy.
type Entry struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
	Details string `yaml:"details"`
}

// GenericRemedy is attached to accepted predictions whose catalog entry
// carries no remedy text of its own.
const GenericRemedy = "General guidance — consult your local agricultural extension for crop-specific chemicals and dosages."

type Catalog struct {
	entries map[int]Entry
	builtin bool
}

// Load reads the YAML resource at path: a mapping from stringified integer
// class ids to {name, summary, details}. An absent file, unparseable
// content, or a mapping with no usable rows all fall back to the builtin
// table. Load never fails.
func Load(path string) *Catalog {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Builtin()
	}

	var doc map[string]Entry
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Builtin()
	}

	entries := make(map[int]Entry, len(doc))
	for key, e := range doc {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if e.Name == "" {
			e.Name = fmt.Sprintf("Class %d", id)
		}
		entries[id] = e
	}
	if len(entries) == 0 {
		return Builtin()
	}
	return &Catalog{entries: entries}
}

// Builtin returns the fixed built-in table.
func Builtin() *Catalog {
	entries := make(map[int]Entry, len(builtinEntries))
	for id, e := range builtinEntries {
		entries[id] = e
	}
	return &Catalog{entries: entries, builtin: true}
}

// IsBuiltin reports whether this catalog is the fallback table rather than
// a loaded resource.
func (c *Catalog) IsBuiltin() bool { return c.builtin }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Has reports whether id resolves to a real catalog entry.
func (c *Catalog) Has(id int) bool {
	_, ok := c.entries[id]
	return ok
}

// ResolveName returns the display name for id, synthesizing "Class {id}"
// when the catalog has no entry. Absence is a degraded label, not an error.
func (c *Catalog) ResolveName(id int) string {
	if e, ok := c.entries[id]; ok {
		return e.Name
	}
	return fmt.Sprintf("Class %d", id)
}

// Remedy returns the remedy entry for id. When the entry exists but has no
// summary text, the generic guidance string is substituted.
func (c *Catalog) Remedy(id int) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	if e.Summary == "" {
		e.Summary = GenericRemedy
	}
	return e, true
}
