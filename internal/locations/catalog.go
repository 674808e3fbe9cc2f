// Package locations feeds the origin/destination selectors: it caches
// the five static per-mode datasets once at startup and answers
// distinct, sorted location lists per mode.
package locations

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
)

// FileKeys are the dataset files the backend serves under /data/.
var FileKeys = []string{"trains", "flights", "buses", "taxis", "bikes"}

// Fetcher is the slice of the upstream client the catalog needs.
type Fetcher interface {
	Dataset(ctx context.Context, fileKey string) ([]domain.Transport, error)
}

type Catalog struct {
	mu       sync.RWMutex
	datasets map[string][]domain.Transport
}

func NewCatalog() *Catalog {
	return &Catalog{
		datasets: make(map[string][]domain.Transport),
	}
}

// LoadAll fetches every dataset once. A file that cannot be loaded is
// logged and skipped; its mode simply has no selectable locations.
func (c *Catalog) LoadAll(ctx context.Context, f Fetcher) {
	for _, key := range FileKeys {
		records, err := f.Dataset(ctx, key)
		if err != nil {
			log.Printf("warning: could not load dataset %s.json: %v", key, err)
			continue
		}
		c.Put(key, records)
	}
}

func (c *Catalog) Put(fileKey string, records []domain.Transport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datasets[fileKey] = records
}

// Options returns the distinct origins and destinations for a mode,
// each sorted ascending. ok reports whether the mode's dataset was
// loaded at all; an empty dataset is ok with empty lists.
func (c *Catalog) Options(mode string) (origins, destinations []string, ok bool) {
	key := domain.Mode(mode).FileKey()
	if key == "" {
		return []string{}, []string{}, false
	}

	c.mu.RLock()
	dataset, present := c.datasets[key]
	c.mu.RUnlock()
	if !present {
		return []string{}, []string{}, false
	}

	return distinctSorted(dataset, func(t domain.Transport) string { return t.Origin }),
		distinctSorted(dataset, func(t domain.Transport) string { return t.Destination }),
		true
}

func distinctSorted(records []domain.Transport, field func(domain.Transport) string) []string {
	seen := make(map[string]bool, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
