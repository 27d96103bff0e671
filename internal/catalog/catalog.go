// Package catalog caches reference data the event forms and filters need.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Source
type Source interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Catalog holds the category list. It is refreshed at startup and on demand;
// nothing invalidates it in between.
type Catalog struct {
	log  *slog.Logger
	src  Source
	seed []models.Category

	mu     sync.RWMutex
	items  []models.Category
	byID   map[int64]models.Category
	byName map[string]models.Category
	seeded bool
}

func New(log *slog.Logger, src Source, seed []models.Category) *Catalog {
	c := &Catalog{
		log:  log,
		src:  src,
		seed: seed,
	}

	c.set(seed, true)

	return c
}

// Refresh reloads categories from the backend. On failure, or when the backend
// returns nothing, the current contents are kept and the error is returned.
func (c *Catalog) Refresh(ctx context.Context) error {
	const op = "catalog.Refresh"

	log := c.log.With(slog.String("op", op))

	cats, err := c.src.ListCategories(ctx)
	if err != nil {
		log.Warn("keeping cached categories", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(cats) == 0 {
		log.Warn("backend returned no categories, keeping cached ones")
		return nil
	}

	c.set(cats, false)

	log.Info("categories refreshed", slog.Int("count", len(cats)))

	return nil
}

func (c *Catalog) set(cats []models.Category, seeded bool) {
	items := make([]models.Category, len(cats))
	copy(items, cats)

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	byID := make(map[int64]models.Category, len(items))
	byName := make(map[string]models.Category, len(items))

	for _, cat := range items {
		byID[cat.ID] = cat
		byName[strings.ToLower(cat.Name)] = cat
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.byID = byID
	c.byName = byName
	c.seeded = seeded
}

// All returns a copy ordered by id.
func (c *Catalog) All() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Category, len(c.items))
	copy(out, c.items)

	return out
}

func (c *Catalog) ByID(id int64) (models.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cat, ok := c.byID[id]

	return cat, ok
}

// ByName matches case-insensitively.
func (c *Catalog) ByName(name string) (models.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cat, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]

	return cat, ok
}

// Seeded reports whether the catalog still serves the configured seed list.
func (c *Catalog) Seeded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.seeded
}
