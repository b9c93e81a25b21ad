// Package projection derives the displayed rows from the cached user list,
// the search text and the active sort column.
package projection

import (
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator compares like a base-sensitivity, numeric browser collator:
// case and accents are ignored and digit runs compare by value.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose, collate.Numeric)
}

// Filter keeps the users for which any display column contains the trimmed
// query, ignoring case. An empty query keeps everyone. The input is not
// modified.
func Filter(users []models.User, query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(users)
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		for _, k := range models.Columns {
			if strings.Contains(strings.ToLower(k.Field(u)), q) {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

// Sort returns users ordered by the sort column. Equal keys keep their input
// order in both directions.
func Sort(users []models.User, s models.SortState) []models.User {
	return sortWith(newCollator(), users, s)
}

func sortWith(col *collate.Collator, users []models.User, s models.SortState) []models.User {
	out := slices.Clone(users)
	slices.SortStableFunc(out, func(a, b models.User) int {
		c := col.CompareString(s.Key.Field(a), s.Key.Field(b))
		if s.Direction == models.Descending {
			return -c
		}
		return c
	})
	return out
}

// Apply filters then sorts.
func Apply(users []models.User, query string, s models.SortState) []models.User {
	return Sort(Filter(users, query), s)
}

type cacheKey struct {
	version uint64
	query   string
	sort    models.SortState
}

// Projector memoizes the last projection. Callers pass the version of the
// list they hold; the same version must always mean the same list.
type Projector struct {
	mu     sync.Mutex
	col    *collate.Collator
	key    cacheKey
	result []models.User
	valid  bool
}

func NewProjector() *Projector {
	return &Projector{col: newCollator()}
}

// Project returns the rows for users at version. The result is shared
// between calls with the same inputs and must not be modified.
func (p *Projector) Project(version uint64, users []models.User, query string, s models.SortState) []models.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey{version: version, query: query, sort: s}
	if p.valid && p.key == key {
		return p.result
	}
	p.result = sortWith(p.col, Filter(users, query), s)
	p.key = key
	p.valid = true
	return p.result
}
