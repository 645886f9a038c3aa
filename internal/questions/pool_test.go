package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wannabet/internal/models"
)

func TestNewPoolGroupsByCategory(t *testing.T) {
	qs := []*models.Question{
		{Text: "g1", Category: models.CategoryGeography},
		{Text: "n1", Category: models.CategoryNature},
		{Text: "g2", Category: models.CategoryGeography},
		nil,
	}

	pool := NewPool(qs)

	assert.Equal(t, []models.Category{models.CategoryGeography, models.CategoryNature}, pool.Categories())
	assert.Equal(t, 3, pool.Size())
	assert.Len(t, pool.Questions(models.CategoryGeography), 2)
	assert.Equal(t, "g2", pool.Questions(models.CategoryGeography)[1].Text)
	assert.Empty(t, pool.Questions(models.CategoryTrivia))

	q, ok := pool.Lookup("n1")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryNature, q.Category)

	_, ok = pool.Lookup("missing")
	assert.False(t, ok)
}

func TestPoolCategoriesIsACopy(t *testing.T) {
	pool := NewPool([]*models.Question{{Text: "g1", Category: models.CategoryGeography}})

	categories := pool.Categories()
	categories[0] = models.CategoryTrivia

	assert.Equal(t, []models.Category{models.CategoryGeography}, pool.Categories())
}

func TestUsedSet(t *testing.T) {
	used := NewUsedSet("b", "a")
	assert.Equal(t, 2, used.Len())
	assert.True(t, used.Has("a"))
	assert.False(t, used.Has("c"))

	used.Add("c")
	used.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, used.Keys())

	alias := used
	alias.Clear()
	assert.Equal(t, 0, used.Len())
	assert.Empty(t, used.Keys())
}
