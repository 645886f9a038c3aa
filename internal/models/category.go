package models

// CategoryInfo holds display metadata for a category
type CategoryInfo struct {
	Name        string
	Emoji       string
	Description string
}

// Categories lists every known category in display order
var Categories = []Category{
	CategoryGeography,
	CategoryHistoryAndSociety,
	CategoryPopCulture,
	CategoryNatureScience,
	CategoryTechnology,
	CategoryTrivia,
	CategorySportsAndLeisure,
	CategoryFoodDrinksCulture,
	CategoryNature,
	CategoryLogicAndPuzzles,
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryGeography:         {Name: "Geography & World", Emoji: "🌍", Description: "Countries, capitals, maps, natural phenomena."},
	CategoryHistoryAndSociety: {Name: "History & Society", Emoji: "🕰️", Description: "Eras, revolutions, key figures, archaeology."},
	CategoryPopCulture:        {Name: "Pop Culture & Entertainment", Emoji: "🎬", Description: "Film, music, TV, celebrities, games."},
	CategoryNatureScience:     {Name: "Natural Science", Emoji: "🔬", Description: "Biology, physics, chemistry, medicine, space."},
	CategoryTechnology:        {Name: "Technology & Innovation", Emoji: "💡", Description: "Computers, AI, inventions, engineering."},
	CategoryTrivia:            {Name: "General Knowledge & Trivia", Emoji: "🧠", Description: "Language, curiosities, odd facts, records."},
	CategorySportsAndLeisure:  {Name: "Sports & Leisure", Emoji: "⚽", Description: "Sports, the Olympics, athletes, hobbies."},
	CategoryFoodDrinksCulture: {Name: "Food, Drink & Culture", Emoji: "🍽️", Description: "Cooking, food cultures, drinks, traditions."},
	CategoryNature:            {Name: "Animals & Nature", Emoji: "🐾", Description: "Ecology, species, climate, plants."},
	CategoryLogicAndPuzzles:   {Name: "Logic & Puzzles", Emoji: "🧩", Description: "Riddles, patterns, problem solving."},
}

// IsValid reports whether the category is known
func (c Category) IsValid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns display metadata for the category
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{Name: string(c), Emoji: "❓"}
}
