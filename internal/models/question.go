package models

// Category is the subject tag of a question
type Category string

const (
	CategoryGeography         Category = "geography"
	CategoryHistoryAndSociety Category = "history-and-society"
	CategoryPopCulture        Category = "popculture"
	CategoryNatureScience     Category = "nature-science"
	CategoryTechnology        Category = "technology-and-innovation"
	CategoryTrivia            Category = "trivia"
	CategorySportsAndLeisure  Category = "sports-and-leisure"
	CategoryFoodDrinksCulture Category = "food-drinks-culture"
	CategoryNature            Category = "nature"
	CategoryLogicAndPuzzles   Category = "logic-and-puzzles"
)

// AgeLevel is the age bracket a question is written for
type AgeLevel string

const (
	// AgeLevelChild is for ages 5-7
	AgeLevelChild AgeLevel = "child"

	// AgeLevelTween is for ages 8-12
	AgeLevelTween AgeLevel = "tween"

	// AgeLevelYoungTeen is for ages 13-15
	AgeLevelYoungTeen AgeLevel = "young-teen"

	// AgeLevelOldTeen is for ages 16-18
	AgeLevelOldTeen AgeLevel = "old-teen"

	// AgeLevelAdult is for everyone else
	AgeLevelAdult AgeLevel = "adult"
)

// IsValid reports whether the level is one of the known brackets
func (l AgeLevel) IsValid() bool {
	switch l {
	case AgeLevelChild, AgeLevelTween, AgeLevelYoungTeen, AgeLevelOldTeen, AgeLevelAdult:
		return true
	}
	return false
}

// Question is a single trivia card. Text doubles as its uniqueness key.
type Question struct {
	// ID is the content identifier from the question files
	ID int `json:"id" yaml:"id"`

	// Rev is the content revision of the question
	Rev int `json:"rev" yaml:"rev"`

	// Text is the question read out by the asker
	Text string `json:"question" yaml:"question"`

	// Answer is the expected answer shown to the asker
	Answer string `json:"answer" yaml:"answer"`

	// Category is the subject of the question
	Category Category `json:"category" yaml:"category"`

	// Level is the age bracket the question targets
	Level AgeLevel `json:"level" yaml:"level"`

	// StartYear is the optional first year of the period the question is about
	StartYear *int `json:"start_year,omitempty" yaml:"start_year,omitempty"`

	// EndYear is the optional last year of the period the question is about
	EndYear *int `json:"end_year,omitempty" yaml:"end_year,omitempty"`
}

// HasTimeWindow reports whether either bound of the time window is set
func (q *Question) HasTimeWindow() bool {
	return q.StartYear != nil || q.EndYear != nil
}
