package rounds

import (
	"log/slog"

	"github.com/KirkDiggler/wannabet/internal/common/clock"
	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/questions"
	"github.com/KirkDiggler/wannabet/internal/random"
)

// Config holds configuration for the round generator
type Config struct {
	// Random supplies the permutation and the category/question draws
	Random random.Source

	// Clock supplies the current year when the caller does not
	Clock clock.Clock

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// GenerateInput contains parameters for generating a round
type GenerateInput struct {
	// Pool is the categorized question pool
	Pool *questions.Pool

	// Used is the game's used question set; it is mutated in place
	Used questions.UsedSet

	// Players is the roster in registration order
	Players []*models.Player

	// CurrentYear overrides the clock for time-window checks when non-zero
	CurrentYear int

	// Classic treats every question as eligible for every player
	Classic bool
}

// GenerateOutput contains the generated round
type GenerateOutput struct {
	// Assignments holds one entry per player, in answering order
	Assignments []*models.RoundAssignment

	// UsedReset indicates the used set was cleared while generating
	UsedReset bool
}

// Generator builds rounds of question assignments
type Generator struct {
	random random.Source
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new round generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		random: cfg.Random,
		clock:  cfg.Clock,
		logger: logger.With("component", "round_generator"),
	}, nil
}

// Generate produces one assignment per player. Every player answers exactly
// once and asks exactly once, and nobody asks their own question.
func (g *Generator) Generate(input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Pool == nil {
		return nil, ErrNilPool
	}
	if input.Used == nil {
		return nil, ErrNilUsedSet
	}

	numPlayers := len(input.Players)
	if numPlayers < 2 {
		return nil, ErrNotEnoughPlayers
	}

	var eligible questions.Predicate = questions.Any
	if !input.Classic {
		currentYear := input.CurrentYear
		if currentYear == 0 {
			currentYear = clock.Year(g.clock)
		}
		eligible = questions.AgeAndTime(currentYear)
	}

	// Askers are the answerer order rotated by one, which has no fixed points.
	answerers := g.random.Perm(numPlayers)
	askers := make([]int, numPlayers)
	for i := range answerers {
		askers[i] = answerers[(i+1)%numPlayers]
	}

	output := &GenerateOutput{
		Assignments: make([]*models.RoundAssignment, 0, numPlayers),
	}

	for i, answererIndex := range answerers {
		answerer := input.Players[answererIndex]

		available := availableCategories(input.Pool, input.Used, answerer, eligible)
		if len(available) == 0 {
			g.logger.Info("question pool exhausted, resetting used questions",
				"player", answerer.Name,
				"used", input.Used.Len())
			input.Used.Clear()
			output.UsedReset = true
			available = availableCategories(input.Pool, input.Used, answerer, eligible)
		}

		if len(available) == 0 {
			return nil, &ExhaustionError{
				PlayerName: answerer.Name,
				Age:        answerer.Age,
				Level:      questions.AgeBracket(answerer.Age),
			}
		}

		category := available[g.random.Intn(len(available))]
		suitable := questions.Filter(input.Pool.Questions(category), answerer, eligible)

		candidates := unused(suitable, input.Used)
		if len(candidates) == 0 {
			g.logger.Warn("reusing questions in exhausted category",
				"category", category,
				"player", answerer.Name,
				"age", answerer.Age)
			candidates = suitable
		}

		selected := candidates[g.random.Intn(len(candidates))]
		input.Used.Add(selected.Text)

		output.Assignments = append(output.Assignments, &models.RoundAssignment{
			Question:      selected,
			AnswererIndex: answererIndex,
			AskerIndex:    askers[i],
		})
	}

	return output, nil
}

// availableCategories returns the categories that still hold an eligible, unused question
func availableCategories(pool *questions.Pool, used questions.UsedSet, player *models.Player, eligible questions.Predicate) []models.Category {
	var available []models.Category
	for _, category := range pool.Categories() {
		for _, q := range pool.Questions(category) {
			if !used.Has(q.Text) && eligible(q, player) {
				available = append(available, category)
				break
			}
		}
	}
	return available
}

func unused(qs []*models.Question, used questions.UsedSet) []*models.Question {
	out := make([]*models.Question, 0, len(qs))
	for _, q := range qs {
		if !used.Has(q.Text) {
			out = append(out, q)
		}
	}
	return out
}
