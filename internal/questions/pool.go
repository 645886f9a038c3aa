package questions

import (
	"sort"

	"github.com/KirkDiggler/wannabet/internal/models"
)

// Pool groups questions by category. It is built once and only read afterwards.
type Pool struct {
	categories []models.Category
	byCategory map[models.Category][]*models.Question
	size       int
}

// NewPool groups questions by category, keeping the order categories are first seen
func NewPool(qs []*models.Question) *Pool {
	p := &Pool{
		byCategory: make(map[models.Category][]*models.Question),
	}
	for _, q := range qs {
		if q == nil {
			continue
		}
		if _, ok := p.byCategory[q.Category]; !ok {
			p.categories = append(p.categories, q.Category)
		}
		p.byCategory[q.Category] = append(p.byCategory[q.Category], q)
		p.size++
	}
	return p
}

// Categories returns the categories present in the pool
func (p *Pool) Categories() []models.Category {
	return append([]models.Category(nil), p.categories...)
}

// Questions returns the questions in a category
func (p *Pool) Questions(category models.Category) []*models.Question {
	return p.byCategory[category]
}

// Size returns the total number of questions in the pool
func (p *Pool) Size() int {
	return p.size
}

// Lookup finds a question by its text key
func (p *Pool) Lookup(text string) (*models.Question, bool) {
	for _, category := range p.categories {
		for _, q := range p.byCategory[category] {
			if q.Text == text {
				return q, true
			}
		}
	}
	return nil, false
}

// UsedSet holds the text keys of questions already presented in a game.
// It is shared by reference between round generations.
type UsedSet map[string]struct{}

// NewUsedSet creates a used set seeded with keys
func NewUsedSet(keys ...string) UsedSet {
	u := make(UsedSet, len(keys))
	for _, k := range keys {
		u.Add(k)
	}
	return u
}

// Has reports whether the key has been used
func (u UsedSet) Has(key string) bool {
	_, ok := u[key]
	return ok
}

// Add marks the key as used
func (u UsedSet) Add(key string) {
	u[key] = struct{}{}
}

// Clear empties the set in place
func (u UsedSet) Clear() {
	for k := range u {
		delete(u, k)
	}
}

// Len returns the number of used keys
func (u UsedSet) Len() int {
	return len(u)
}

// Keys returns the used keys in sorted order
func (u UsedSet) Keys() []string {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
