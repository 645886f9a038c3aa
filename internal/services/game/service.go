package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/wannabet/internal/common/clock"
	"github.com/KirkDiggler/wannabet/internal/common/uuid"
	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/questions"
	gameRepo "github.com/KirkDiggler/wannabet/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/wannabet/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/wannabet/internal/repositories/player"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	"github.com/KirkDiggler/wannabet/internal/wager"
)

// service implements the Service interface
type service struct {
	winThreshold int

	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	ledgerRepo ledgerRepo.Repository

	generator  rounds.RoundGenerator
	pool       *questions.Pool
	settlement *wager.Engine

	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.RoundGenerator == nil {
		return nil, ErrNilRoundGenerator
	}

	if cfg.QuestionPool == nil {
		return nil, ErrNilQuestionPool
	}

	if cfg.Settlement == nil {
		return nil, ErrNilSettlementEngine
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	threshold := cfg.WinThreshold
	if threshold == 0 {
		threshold = DefaultWinThreshold
	}
	if threshold < 0 {
		return nil, ErrInvalidWinThreshold
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		winThreshold:  threshold,
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		ledgerRepo:    cfg.LedgerRepo,
		generator:     cfg.RoundGenerator,
		pool:          cfg.QuestionPool,
		settlement:    cfg.Settlement,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("service", "game"),
	}, nil
}

// StartGame registers a roster and deals the first round
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	players, err := validateRoster(input.Players)
	if err != nil {
		return nil, err
	}

	used := questions.NewUsedSet()
	round, err := s.generator.Generate(&rounds.GenerateInput{
		Pool:    s.pool,
		Used:    used,
		Players: players,
		Classic: input.Classic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deal first round: %w", err)
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:                     s.uuidGenerator.NewUUID(),
		Status:                 models.GameStatusActive,
		Classic:                input.Classic,
		Players:                players,
		CurrentRound:           1,
		CurrentQuestionInRound: 0,
		RoundAssignments:       round.Assignments,
		UsedQuestions:          used.Keys(),
		WinnerIndex:            models.NoWinner,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	// Remembering names only feeds registration suggestions
	if err := s.playerRepo.RememberPlayers(ctx, &playerRepo.RememberPlayersInput{Players: players}); err != nil {
		s.logger.Warn("failed to remember players", "game_id", game.ID, "error", err)
	}

	s.logger.Info("game started",
		"game_id", game.ID,
		"players", len(players),
		"classic", input.Classic)

	return &StartGameOutput{Game: game}, nil
}

// GetGame returns a game by ID, or the current game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

// GetCurrentTurn describes the question being played
func (s *service) GetCurrentTurn(ctx context.Context, input *GetCurrentTurnInput) (*GetCurrentTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.loadActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	assignment := game.CurrentAssignment()

	// Saved games keep their own copy; show the pool's current wording and answer
	if q, ok := s.pool.Lookup(assignment.Question.Text); ok {
		assignment.Question = q
	}

	return &GetCurrentTurnOutput{
		Game:             game,
		Assignment:       assignment,
		Answerer:         game.Players[assignment.AnswererIndex],
		Asker:            game.Players[assignment.AskerIndex],
		Round:            game.CurrentRound,
		QuestionNumber:   game.CurrentQuestionInRound + 1,
		QuestionsInRound: len(game.RoundAssignments),
		EligibleBettors:  wager.EligibleBettors(game.Players, assignment.AnswererIndex),
		BaseReward:       s.settlement.BaseReward(),
	}, nil
}

// ToggleWager places, switches or withdraws a bet on the current answerer
func (s *service) ToggleWager(ctx context.Context, input *ToggleWagerInput) (*ToggleWagerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.loadActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	toggled, err := wager.Toggle(&wager.ToggleInput{
		Players:       game.Players,
		Wagers:        game.Wagers,
		AnswererIndex: game.CurrentAssignment().AnswererIndex,
		BettorIndex:   input.BettorIndex,
		Stance:        input.Stance,
	})
	if err != nil {
		return nil, err
	}

	game.Wagers = toggled.Wagers
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &ToggleWagerOutput{
		Wagers: toggled.Wagers,
		Placed: toggled.Placed,
	}, nil
}

// ResolveAnswer settles the current question and advances the game. A win
// ends the game at once; otherwise the next question is queued, dealing a new
// round when the current one is finished.
func (s *service) ResolveAnswer(ctx context.Context, input *ResolveAnswerInput) (*ResolveAnswerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.loadActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	assignment := game.CurrentAssignment()
	settled, err := s.settlement.Settle(&wager.SettleInput{
		Players:       game.Players,
		Wagers:        game.Wagers,
		AnswererIndex: assignment.AnswererIndex,
		IsCorrect:     input.IsCorrect,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to settle wagers: %w", err)
	}

	now := s.clock.Now()
	entry := &models.LedgerEntry{
		ID:                  s.uuidGenerator.NewUUID(),
		GameID:              game.ID,
		Round:               game.CurrentRound,
		QuestionText:        assignment.Question.Text,
		AnswererIndex:       assignment.AnswererIndex,
		Correct:             input.IsCorrect,
		Wagers:              game.Wagers,
		Changes:             coinChanges(game.Players, settled.UpdatedPlayers),
		ScoredPlayerIndices: settled.ScoredPlayerIndices,
		Timestamp:           now,
	}

	output := &ResolveAnswerOutput{
		Entry:               entry,
		ScoredPlayerIndices: settled.ScoredPlayerIndices,
		WinnerIndex:         wager.Winner(settled.UpdatedPlayers, s.winThreshold),
	}

	game.Players = settled.UpdatedPlayers
	game.LastScoredPlayerIndices = settled.ScoredPlayerIndices
	game.Wagers = nil
	game.UpdatedAt = now

	switch {
	case output.WinnerIndex != models.NoWinner:
		game.Status = models.GameStatusCompleted
		game.WinnerIndex = output.WinnerIndex

	case game.CurrentQuestionInRound+1 < len(game.RoundAssignments):
		game.CurrentQuestionInRound++

	default:
		used := questions.NewUsedSet(game.UsedQuestions...)
		round, err := s.generator.Generate(&rounds.GenerateInput{
			Pool:    s.pool,
			Used:    used,
			Players: game.Players,
			Classic: game.Classic,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to deal round %d: %w", game.CurrentRound+1, err)
		}

		game.CurrentRound++
		game.CurrentQuestionInRound = 0
		game.RoundAssignments = round.Assignments
		game.UsedQuestions = used.Keys()
		output.NewRound = true
		output.UsedReset = round.UsedReset
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err := s.ledgerRepo.AppendEntry(ctx, &ledgerRepo.AppendEntryInput{Entry: entry}); err != nil {
		s.logger.Warn("failed to record ledger entry", "game_id", game.ID, "error", err)
	}

	if game.IsCompleted() {
		s.logger.Info("game won",
			"game_id", game.ID,
			"winner", game.Players[game.WinnerIndex].Name,
			"coins", game.Players[game.WinnerIndex].Coins,
			"round", game.CurrentRound)
	}

	output.Game = game
	return output, nil
}

// RestartGame discards a game and its ledger
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	if err := s.ledgerRepo.DeleteEntries(ctx, &ledgerRepo.DeleteEntriesInput{GameID: game.ID}); err != nil {
		s.logger.Warn("failed to delete ledger", "game_id", game.ID, "error", err)
	}

	players := make([]*models.Player, len(game.Players))
	for i, p := range game.Players {
		players[i] = &models.Player{Name: p.Name, Age: p.Age}
	}

	return &RestartGameOutput{Players: players}, nil
}

// GetLedger returns the settled turns of a game
func (s *service) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	gameID := input.GameID
	if gameID == "" {
		game, err := s.loadGame(ctx, "")
		if err != nil {
			return nil, err
		}
		gameID = game.ID
	}

	entries, err := s.ledgerRepo.ListEntries(ctx, &ledgerRepo.ListEntriesInput{GameID: gameID})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}

	return &GetLedgerOutput{Entries: entries.Entries}, nil
}

// GetPlayerNames returns remembered players for registration suggestions
func (s *service) GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error) {
	listed, err := s.playerRepo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remembered players: %w", err)
	}

	return &GetPlayerNamesOutput{Players: listed.Players}, nil
}

// ForgetPlayer drops a remembered player and returns the players still remembered
func (s *service) ForgetPlayer(ctx context.Context, input *ForgetPlayerInput) (*ForgetPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyPlayerName
	}

	if err := s.playerRepo.ForgetPlayer(ctx, &playerRepo.ForgetPlayerInput{Name: name}); err != nil {
		return nil, fmt.Errorf("failed to forget player: %w", err)
	}

	listed, err := s.playerRepo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remembered players: %w", err)
	}

	return &ForgetPlayerOutput{Players: listed.Players}, nil
}

// loadGame fetches a game by ID, falling back to the current game
func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	var (
		game *models.Game
		err  error
	)
	if gameID == "" {
		game, err = s.gameRepo.GetCurrentGame(ctx)
	} else {
		game, err = s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	}

	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return game, nil
}

// loadActiveGame fetches a game that still has a question to play
func (s *service) loadActiveGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsCompleted() {
		return nil, ErrGameCompleted
	}

	if game.CurrentAssignment() == nil {
		return nil, ErrInvalidGameState
	}

	return game, nil
}

// validateRoster trims names and returns fresh players with zero coins
func validateRoster(roster []*models.Player) ([]*models.Player, error) {
	if len(roster) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(roster) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	seen := make(map[string]struct{}, len(roster))
	players := make([]*models.Player, 0, len(roster))
	for _, p := range roster {
		if p == nil {
			return nil, ErrEmptyPlayerName
		}

		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, ErrPlayerNameTooLong
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, ErrDuplicatePlayerName
		}
		seen[key] = struct{}{}

		if p.Age < 0 || p.Age > MaxAge {
			return nil, ErrInvalidAge
		}

		players = append(players, &models.Player{Name: name, Age: p.Age})
	}

	return players, nil
}

// coinChanges lists the balances that moved between two rosters
func coinChanges(before, after []*models.Player) []models.CoinChange {
	var changes []models.CoinChange
	for i := range before {
		if before[i].Coins != after[i].Coins {
			changes = append(changes, models.CoinChange{
				PlayerIndex: i,
				Before:      before[i].Coins,
				After:       after[i].Coins,
			})
		}
	}
	return changes
}
