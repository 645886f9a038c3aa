package questions

import (
	"github.com/KirkDiggler/wannabet/internal/models"
)

// timeSensitiveCategories are filtered against the player's lifetime
var timeSensitiveCategories = map[models.Category]bool{
	models.CategoryPopCulture:       true,
	models.CategoryTrivia:           true,
	models.CategorySportsAndLeisure: true,
	models.CategoryTechnology:       true,
}

// AgeBracket derives the question level for a player's age.
// Ages below 5 fall back to adult along with 19 and older.
func AgeBracket(age int) models.AgeLevel {
	switch {
	case age >= 5 && age <= 7:
		return models.AgeLevelChild
	case age >= 8 && age <= 12:
		return models.AgeLevelTween
	case age >= 13 && age <= 15:
		return models.AgeLevelYoungTeen
	case age >= 16 && age <= 18:
		return models.AgeLevelOldTeen
	default:
		return models.AgeLevelAdult
	}
}

// IsTimeSensitive reports whether questions in the category are filtered by time window
func IsTimeSensitive(category models.Category) bool {
	return timeSensitiveCategories[category]
}

// OverlapsLifetime reports whether the question's time window overlaps
// [currentYear-age, currentYear]. Questions outside the time-sensitive
// categories, or without a window, always overlap.
func OverlapsLifetime(q *models.Question, age, currentYear int) bool {
	if !IsTimeSensitive(q.Category) || !q.HasTimeWindow() {
		return true
	}

	lifetimeStart := currentYear - age
	lifetimeEnd := currentYear

	questionStart := 0
	if q.StartYear != nil {
		questionStart = *q.StartYear
	}
	questionEnd := currentYear
	if q.EndYear != nil {
		questionEnd = *q.EndYear
	}

	return questionEnd >= lifetimeStart && questionStart <= lifetimeEnd
}

// Eligible reports whether the question suits the player in the given year
func Eligible(q *models.Question, player *models.Player, currentYear int) bool {
	if q == nil || player == nil {
		return false
	}
	if q.Level != AgeBracket(player.Age) {
		return false
	}
	return OverlapsLifetime(q, player.Age, currentYear)
}

// Predicate decides whether a question may be drawn for a player
type Predicate func(q *models.Question, player *models.Player) bool

// AgeAndTime returns the eligibility predicate for the given year
func AgeAndTime(currentYear int) Predicate {
	return func(q *models.Question, player *models.Player) bool {
		return Eligible(q, player, currentYear)
	}
}

// Any is the classic-mode predicate: every question suits every player
func Any(q *models.Question, _ *models.Player) bool {
	return q != nil
}

// Filter returns the questions matching the predicate for the player, preserving order
func Filter(qs []*models.Question, player *models.Player, eligible Predicate) []*models.Question {
	out := make([]*models.Question, 0, len(qs))
	for _, q := range qs {
		if eligible(q, player) {
			out = append(out, q)
		}
	}
	return out
}
