// Package catalog holds named standard pipe diameters as a set ordered by
// diameter, so a computed diameter can be rounded to a purchasable size.
//
//	c := catalog.Default()
//	e, ok := c.Ceiling(0.337) // DN350
//
// A Catalog is safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

var (
	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("catalog: entry name is empty")

	// ErrInvalidDiameter indicates a non-positive, NaN or infinite diameter.
	ErrInvalidDiameter = errors.New("catalog: diameter must be finite and > 0")

	// ErrDuplicateName indicates a name already present in the catalog.
	ErrDuplicateName = errors.New("catalog: duplicate name")

	// ErrDuplicateDiameter indicates a diameter already present in the catalog.
	ErrDuplicateDiameter = errors.New("catalog: duplicate diameter")
)

// Entry is one standard size: a designation and its internal diameter (m).
type Entry struct {
	Name     string  `yaml:"name"`
	Diameter float64 `yaml:"diameter"`
}

// Catalog is a set of entries ordered by ascending diameter.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry          // sorted by Diameter
	byName  map[string]Entry // name → entry
}

// New returns a catalog holding entries, or the first validation error.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Default returns the DN50…DN1000 nominal series.
func Default() *Catalog {
	sizes := []int{50, 65, 80, 100, 125, 150, 200, 250, 300, 350, 400, 450, 500, 600, 700, 800, 900, 1000}
	c := &Catalog{byName: make(map[string]Entry, len(sizes))}
	for _, mm := range sizes {
		_ = c.Add(Entry{Name: fmt.Sprintf("DN%d", mm), Diameter: float64(mm) / 1000})
	}

	return c
}

// Add inserts e keeping the diameter order.
// Complexity: O(n) for the slice insertion.
func (c *Catalog) Add(e Entry) error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if !(e.Diameter > 0) || math.IsInf(e.Diameter, 1) {
		return fmt.Errorf("Add(%s=%v): %w", e.Name, e.Diameter, ErrInvalidDiameter)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[e.Name]; ok {
		return fmt.Errorf("Add(%s): %w", e.Name, ErrDuplicateName)
	}
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Diameter >= e.Diameter })
	if i < len(c.entries) && c.entries[i].Diameter == e.Diameter {
		return fmt.Errorf("Add(%s=%v): %w with %s", e.Name, e.Diameter, ErrDuplicateDiameter, c.entries[i].Name)
	}
	c.entries = append(c.entries, Entry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
	c.byName[e.Name] = e

	return nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Entries returns a copy of the entries in ascending diameter order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Lookup returns the entry named name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byName[name]

	return e, ok
}

// Ceiling returns the smallest entry whose diameter is >= d.
func (c *Catalog) Ceiling(d float64) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Diameter >= d })
	if i == len(c.entries) {
		return Entry{}, false
	}

	return c.entries[i], true
}

// Floor returns the largest entry whose diameter is <= d.
func (c *Catalog) Floor(d float64) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Diameter > d })
	if i == 0 {
		return Entry{}, false
	}

	return c.entries[i-1], true
}
