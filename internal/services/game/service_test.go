package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/wannabet/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/wannabet/internal/common/uuid/mocks"
	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/questions"
	gameRepo "github.com/KirkDiggler/wannabet/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/wannabet/internal/repositories/game/mocks"
	ledgerRepo "github.com/KirkDiggler/wannabet/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/wannabet/internal/repositories/ledger/mocks"
	playerRepo "github.com/KirkDiggler/wannabet/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/wannabet/internal/repositories/player/mocks"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	roundMocks "github.com/KirkDiggler/wannabet/internal/rounds/mocks"
	"github.com/KirkDiggler/wannabet/internal/wager"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockLedgerRepo *ledgerMocks.MockRepository
	mockGenerator  *roundMocks.MockRoundGenerator
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	pool           *questions.Pool
	settlement     *wager.Engine
	gameService    Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string
	questions  []*models.Question
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockGenerator = roundMocks.NewMockRoundGenerator(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.questions = []*models.Question{
		{ID: 1, Text: "Vad heter Sveriges huvudstad?", Answer: "Stockholm", Category: models.CategoryGeography, Level: models.AgeLevelTween},
		{ID: 2, Text: "Vilket år föll Berlinmuren?", Answer: "1989", Category: models.CategoryHistoryAndSociety, Level: models.AgeLevelAdult},
		{ID: 3, Text: "Hur många ben har en spindel?", Answer: "Åtta", Category: models.CategoryNature, Level: models.AgeLevelChild},
		{ID: 4, Text: "Vilken planet är störst?", Answer: "Jupiter", Category: models.CategoryNatureScience, Level: models.AgeLevelTween},
	}
	s.pool = questions.NewPool(s.questions)

	engine, err := wager.NewEngine(&wager.Config{BaseReward: 2})
	s.Require().NoError(err)
	s.settlement = engine

	svc, err := New(&Config{
		WinThreshold:   10,
		GameRepo:       s.mockGameRepo,
		PlayerRepo:     s.mockPlayerRepo,
		LedgerRepo:     s.mockLedgerRepo,
		RoundGenerator: s.mockGenerator,
		QuestionPool:   s.pool,
		Settlement:     s.settlement,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// round returns assignments where answerers are 2,0,1 and askers 0,1,2
func (s *GameServiceTestSuite) round() []*models.RoundAssignment {
	return []*models.RoundAssignment{
		{Question: s.questions[0], AnswererIndex: 2, AskerIndex: 0},
		{Question: s.questions[1], AnswererIndex: 0, AskerIndex: 1},
		{Question: s.questions[2], AnswererIndex: 1, AskerIndex: 2},
	}
}

// activeGame returns a fresh three player game at the given question
func (s *GameServiceTestSuite) activeGame(questionIndex int, coins ...int) *models.Game {
	players := []*models.Player{
		{Name: "Edvin", Age: 9},
		{Name: "Sara", Age: 41},
		{Name: "Johan", Age: 15},
	}
	for i, c := range coins {
		players[i].Coins = c
	}
	return &models.Game{
		ID:                     s.testGameID,
		Status:                 models.GameStatusActive,
		Players:                players,
		CurrentRound:           1,
		CurrentQuestionInRound: questionIndex,
		RoundAssignments:       s.round(),
		UsedQuestions:          []string{s.questions[0].Text, s.questions[1].Text, s.questions[2].Text},
		WinnerIndex:            models.NoWinner,
		CreatedAt:              s.testTime,
		UpdatedAt:              s.testTime,
	}
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilGameRepo, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo, PlayerRepo: s.mockPlayerRepo, LedgerRepo: s.mockLedgerRepo})
	s.Equal(ErrNilRoundGenerator, err)

	_, err = New(&Config{
		WinThreshold:   -1,
		GameRepo:       s.mockGameRepo,
		PlayerRepo:     s.mockPlayerRepo,
		LedgerRepo:     s.mockLedgerRepo,
		RoundGenerator: s.mockGenerator,
		QuestionPool:   s.pool,
		Settlement:     s.settlement,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
	})
	s.Equal(ErrInvalidWinThreshold, err)
}

func (s *GameServiceTestSuite) TestStartGame_Success() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any()).
		DoAndReturn(func(input *rounds.GenerateInput) (*rounds.GenerateOutput, error) {
			s.Same(s.pool, input.Pool)
			s.True(input.Classic)
			s.Equal(0, input.Used.Len())
			s.Require().Len(input.Players, 3)
			s.Equal("Sara", input.Players[1].Name)
			for _, a := range s.round() {
				input.Used.Add(a.Question.Text)
			}
			return &rounds.GenerateOutput{Assignments: s.round()}, nil
		})
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	var saved *models.Game
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			saved = input.Game
			return nil
		})
	s.mockPlayerRepo.EXPECT().
		RememberPlayers(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.RememberPlayersInput) error {
			s.Len(input.Players, 3)
			return nil
		})

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Players: []*models.Player{
			{Name: " Edvin ", Age: 9, Coins: 99},
			{Name: "Sara", Age: 41},
			{Name: "Johan", Age: 15},
		},
		Classic: true,
	})
	s.Require().NoError(err)

	game := output.Game
	s.Same(saved, game)
	s.Equal(s.testGameID, game.ID)
	s.Equal(models.GameStatusActive, game.Status)
	s.True(game.Classic)
	s.Equal("Edvin", game.Players[0].Name)
	for _, p := range game.Players {
		s.Zero(p.Coins)
	}
	s.Equal(1, game.CurrentRound)
	s.Equal(0, game.CurrentQuestionInRound)
	s.Len(game.RoundAssignments, 3)
	s.Len(game.UsedQuestions, 3)
	s.Equal(models.NoWinner, game.WinnerIndex)
	s.Equal(s.testTime, game.CreatedAt)
}

func (s *GameServiceTestSuite) TestStartGame_RememberFailureIsNotFatal() {
	s.mockGenerator.EXPECT().Generate(gomock.Any()).Return(&rounds.GenerateOutput{Assignments: s.round()[:2]}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().RememberPlayers(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Players: []*models.Player{{Name: "Edvin", Age: 9}, {Name: "Sara", Age: 41}},
	})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Game.ID)
}

func (s *GameServiceTestSuite) TestStartGame_RosterValidation() {
	testCases := []struct {
		name    string
		players []*models.Player
		err     error
	}{
		{"one player", []*models.Player{{Name: "Edvin"}}, ErrTooFewPlayers},
		{"five players", []*models.Player{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}, ErrTooManyPlayers},
		{"blank name", []*models.Player{{Name: "Edvin"}, {Name: "   "}}, ErrEmptyPlayerName},
		{"nil player", []*models.Player{{Name: "Edvin"}, nil}, ErrEmptyPlayerName},
		{"long name", []*models.Player{{Name: "Edvin"}, {Name: "Åsa-Britt Gunnarsdotter"}}, ErrPlayerNameTooLong},
		{"duplicate name", []*models.Player{{Name: "Sara"}, {Name: " sara "}}, ErrDuplicatePlayerName},
		{"negative age", []*models.Player{{Name: "Edvin"}, {Name: "Sara", Age: -1}}, ErrInvalidAge},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.gameService.StartGame(s.ctx, &StartGameInput{Players: tc.players})
			s.Equal(tc.err, err)
		})
	}

	_, err := s.gameService.StartGame(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func (s *GameServiceTestSuite) TestStartGame_QuestionsExhausted() {
	s.mockGenerator.EXPECT().Generate(gomock.Any()).Return(nil, &rounds.ExhaustionError{
		PlayerName: "Edvin",
		Age:        9,
		Level:      models.AgeLevelTween,
	})

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Players: []*models.Player{{Name: "Edvin", Age: 9}, {Name: "Sara", Age: 41}},
	})
	s.Require().Error(err)
	s.True(errors.Is(err, rounds.ErrQuestionsExhausted))

	var exhausted *rounds.ExhaustionError
	s.Require().True(errors.As(err, &exhausted))
	s.Equal("Edvin", exhausted.PlayerName)
}

func (s *GameServiceTestSuite) TestGetGame_UsesCurrentGame() {
	game := s.activeGame(0)
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)

	output, err := s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.Require().NoError(err)
	s.Same(game, output.Game)
}

func (s *GameServiceTestSuite) TestGetGame_NotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: "missing"}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestGetCurrentTurn() {
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(1, 0, 1, 3), nil)

	output, err := s.gameService.GetCurrentTurn(s.ctx, &GetCurrentTurnInput{})
	s.Require().NoError(err)
	s.Equal("Edvin", output.Answerer.Name)
	s.Equal("Sara", output.Asker.Name)
	s.Equal("1989", output.Assignment.Question.Answer)
	s.Equal(1, output.Round)
	s.Equal(2, output.QuestionNumber)
	s.Equal(3, output.QuestionsInRound)
	s.Equal([]int{1, 2}, output.EligibleBettors)
	s.Equal(2, output.BaseReward)
}

func (s *GameServiceTestSuite) TestGetCurrentTurn_ShowsPoolAnswerForSavedQuestion() {
	saved := s.activeGame(1, 0, 1, 3)
	stale := *s.questions[1]
	stale.Answer = "1990"
	saved.RoundAssignments[1] = &models.RoundAssignment{Question: &stale, AnswererIndex: 0, AskerIndex: 1}
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(saved, nil)

	output, err := s.gameService.GetCurrentTurn(s.ctx, &GetCurrentTurnInput{})
	s.Require().NoError(err)
	s.Equal("1989", output.Assignment.Question.Answer)
}

func (s *GameServiceTestSuite) TestGetCurrentTurn_KeepsQuestionMissingFromPool() {
	saved := s.activeGame(1, 0, 1, 3)
	retired := &models.Question{Text: "Vem skrev Pippi Långstrump?", Answer: "Astrid Lindgren", Category: models.CategoryPopCulture, Level: models.AgeLevelTween}
	saved.RoundAssignments[1] = &models.RoundAssignment{Question: retired, AnswererIndex: 0, AskerIndex: 1}
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(saved, nil)

	output, err := s.gameService.GetCurrentTurn(s.ctx, &GetCurrentTurnInput{})
	s.Require().NoError(err)
	s.Same(retired, output.Assignment.Question)
}

func (s *GameServiceTestSuite) TestGetCurrentTurn_CompletedGame() {
	game := s.activeGame(0, 10, 0, 0)
	game.Status = models.GameStatusCompleted
	game.WinnerIndex = 0
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)

	_, err := s.gameService.GetCurrentTurn(s.ctx, &GetCurrentTurnInput{})
	s.Equal(ErrGameCompleted, err)
}

func (s *GameServiceTestSuite) TestToggleWager_PlacesAndPersists() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, &gameRepo.GetGameInput{GameID: s.testGameID}).Return(s.activeGame(0, 1, 1, 0), nil)
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal([]models.Wager{{BettorIndex: 0, Stance: models.StanceOpposing}}, input.Game.Wagers)
			return nil
		})

	output, err := s.gameService.ToggleWager(s.ctx, &ToggleWagerInput{
		GameID:      s.testGameID,
		BettorIndex: 0,
		Stance:      models.StanceOpposing,
	})
	s.Require().NoError(err)
	s.True(output.Placed)
}

func (s *GameServiceTestSuite) TestToggleWager_Rejected() {
	// Johan answers the first question and Sara has no coins
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(0, 0, 0, 5), nil).Times(2)

	_, err := s.gameService.ToggleWager(s.ctx, &ToggleWagerInput{BettorIndex: 2, Stance: models.StanceBacking})
	s.Equal(wager.ErrSelfWager, err)

	_, err = s.gameService.ToggleWager(s.ctx, &ToggleWagerInput{BettorIndex: 1, Stance: models.StanceBacking})
	s.Equal(wager.ErrInsufficientCoins, err)
}

func (s *GameServiceTestSuite) TestResolveAnswer_SettlesAndAdvances() {
	// Sara answers question 2; Johan backs her and Edvin opposes
	game := s.activeGame(2, 2, 0, 2)
	game.Wagers = []models.Wager{
		{BettorIndex: 2, Stance: models.StanceBacking},
		{BettorIndex: 0, Stance: models.StanceOpposing},
	}
	game.CurrentQuestionInRound = 1
	game.RoundAssignments[1].AnswererIndex = 1
	game.RoundAssignments[1].AskerIndex = 0

	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")

	var saved *models.Game
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			saved = input.Game
			return nil
		})

	var recorded *models.LedgerEntry
	s.mockLedgerRepo.EXPECT().
		AppendEntry(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.AppendEntryInput) error {
			recorded = input.Entry
			return nil
		})

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().NoError(err)

	s.Equal([]int{1, 3, 3}, []int{saved.Players[0].Coins, saved.Players[1].Coins, saved.Players[2].Coins})
	s.Equal([]int{1, 2}, output.ScoredPlayerIndices)
	s.Equal([]int{1, 2}, saved.LastScoredPlayerIndices)
	s.Equal(2, saved.CurrentQuestionInRound)
	s.Empty(saved.Wagers)
	s.False(output.NewRound)
	s.Equal(models.NoWinner, output.WinnerIndex)

	s.Require().NotNil(recorded)
	s.Equal("entry-1", recorded.ID)
	s.Equal(s.testGameID, recorded.GameID)
	s.Equal(s.questions[1].Text, recorded.QuestionText)
	s.True(recorded.Correct)
	s.Len(recorded.Wagers, 2)
	s.Equal([]models.CoinChange{
		{PlayerIndex: 0, Before: 2, After: 1},
		{PlayerIndex: 1, Before: 0, After: 3},
		{PlayerIndex: 2, Before: 2, After: 3},
	}, recorded.Changes)
}

func (s *GameServiceTestSuite) TestResolveAnswer_DealsNextRound() {
	game := s.activeGame(2, 0, 0, 0)
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-3")

	next := []*models.RoundAssignment{
		{Question: s.questions[3], AnswererIndex: 0, AskerIndex: 2},
		{Question: s.questions[0], AnswererIndex: 2, AskerIndex: 1},
		{Question: s.questions[1], AnswererIndex: 1, AskerIndex: 0},
	}
	s.mockGenerator.EXPECT().
		Generate(gomock.Any()).
		DoAndReturn(func(input *rounds.GenerateInput) (*rounds.GenerateOutput, error) {
			s.Equal(3, input.Used.Len())
			s.True(input.Used.Has(s.questions[2].Text))
			s.Equal(3, input.Players[1].Coins)
			input.Used.Clear()
			for _, a := range next {
				input.Used.Add(a.Question.Text)
			}
			return &rounds.GenerateOutput{Assignments: next, UsedReset: true}, nil
		})
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockLedgerRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	// Johan opposes Sara, who answers the last question of the round
	game.Wagers = []models.Wager{{BettorIndex: 2, Stance: models.StanceOpposing}}
	game.Players[2].Coins = 1
	_, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestResolveAnswer_NewRoundState() {
	game := s.activeGame(2, 0, 0, 0)
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-3")

	next := []*models.RoundAssignment{
		{Question: s.questions[3], AnswererIndex: 0, AskerIndex: 2},
		{Question: s.questions[0], AnswererIndex: 2, AskerIndex: 1},
		{Question: s.questions[1], AnswererIndex: 1, AskerIndex: 0},
	}
	s.mockGenerator.EXPECT().
		Generate(gomock.Any()).
		DoAndReturn(func(input *rounds.GenerateInput) (*rounds.GenerateOutput, error) {
			input.Used.Add(s.questions[3].Text)
			return &rounds.GenerateOutput{Assignments: next}, nil
		})
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockLedgerRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: false})
	s.Require().NoError(err)

	s.True(output.NewRound)
	s.False(output.UsedReset)
	s.Equal(2, output.Game.CurrentRound)
	s.Equal(0, output.Game.CurrentQuestionInRound)
	s.Equal(next, output.Game.RoundAssignments)
	s.Len(output.Game.UsedQuestions, 4)
	s.Empty(output.ScoredPlayerIndices)
}

func (s *GameServiceTestSuite) TestResolveAnswer_WinEndsGame() {
	// Johan answers with 9 coins; a correct answer takes him to 11
	game := s.activeGame(0, 0, 3, 9)
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockLedgerRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().NoError(err)

	s.Equal(2, output.WinnerIndex)
	s.Equal(models.GameStatusCompleted, output.Game.Status)
	s.Equal(2, output.Game.WinnerIndex)
	s.Equal(11, output.Game.Players[2].Coins)
	s.Equal(0, output.Game.CurrentQuestionInRound)
	s.False(output.NewRound)
}

func (s *GameServiceTestSuite) TestResolveAnswer_ExhaustionKeepsSavedState() {
	game := s.activeGame(2)
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-3")
	s.mockGenerator.EXPECT().Generate(gomock.Any()).Return(nil, &rounds.ExhaustionError{PlayerName: "Edvin", Age: 9, Level: models.AgeLevelTween})

	_, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().Error(err)
	s.True(errors.Is(err, rounds.ErrQuestionsExhausted))
}

func (s *GameServiceTestSuite) TestResolveAnswer_LedgerFailureIsNotFatal() {
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(0), nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockLedgerRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().NoError(err)
	s.Equal(1, output.Game.CurrentQuestionInRound)
}

func (s *GameServiceTestSuite) TestResolveAnswer_SaveFailure() {
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(0), nil)
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Require().Error(err)
}

func (s *GameServiceTestSuite) TestResolveAnswer_CompletedGame() {
	game := s.activeGame(0, 12, 0, 0)
	game.Status = models.GameStatusCompleted
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(game, nil)

	_, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{IsCorrect: true})
	s.Equal(ErrGameCompleted, err)
}

func (s *GameServiceTestSuite) TestRestartGame() {
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(1, 4, 2, 7), nil)
	s.mockGameRepo.EXPECT().DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).Return(nil)
	s.mockLedgerRepo.EXPECT().DeleteEntries(s.ctx, &ledgerRepo.DeleteEntriesInput{GameID: s.testGameID}).Return(nil)

	output, err := s.gameService.RestartGame(s.ctx, &RestartGameInput{})
	s.Require().NoError(err)
	s.Equal([]*models.Player{
		{Name: "Edvin", Age: 9},
		{Name: "Sara", Age: 41},
		{Name: "Johan", Age: 15},
	}, output.Players)
}

func (s *GameServiceTestSuite) TestRestartGame_NoSavedGame() {
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.RestartGame(s.ctx, &RestartGameInput{})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestGetLedger() {
	entries := []*models.LedgerEntry{{ID: "entry-1", GameID: s.testGameID}}
	s.mockGameRepo.EXPECT().GetCurrentGame(s.ctx).Return(s.activeGame(1), nil)
	s.mockLedgerRepo.EXPECT().
		ListEntries(s.ctx, &ledgerRepo.ListEntriesInput{GameID: s.testGameID}).
		Return(&ledgerRepo.ListEntriesOutput{Entries: entries}, nil)

	output, err := s.gameService.GetLedger(s.ctx, &GetLedgerInput{})
	s.Require().NoError(err)
	s.Equal(entries, output.Entries)
}

func (s *GameServiceTestSuite) TestGetPlayerNames() {
	remembered := []*models.Player{{Name: "Anna", Age: 12}, {Name: "Östen", Age: 70}}
	s.mockPlayerRepo.EXPECT().ListPlayers(s.ctx).Return(&playerRepo.ListPlayersOutput{Players: remembered}, nil)

	output, err := s.gameService.GetPlayerNames(s.ctx, &GetPlayerNamesInput{})
	s.Require().NoError(err)
	s.Equal(remembered, output.Players)
}

func (s *GameServiceTestSuite) TestForgetPlayer() {
	remaining := []*models.Player{{Name: "Östen", Age: 70}}
	s.mockPlayerRepo.EXPECT().ForgetPlayer(s.ctx, &playerRepo.ForgetPlayerInput{Name: "Anna"}).Return(nil)
	s.mockPlayerRepo.EXPECT().ListPlayers(s.ctx).Return(&playerRepo.ListPlayersOutput{Players: remaining}, nil)

	output, err := s.gameService.ForgetPlayer(s.ctx, &ForgetPlayerInput{Name: " Anna "})
	s.Require().NoError(err)
	s.Equal(remaining, output.Players)
}

func (s *GameServiceTestSuite) TestForgetPlayer_Validation() {
	_, err := s.gameService.ForgetPlayer(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	_, err = s.gameService.ForgetPlayer(s.ctx, &ForgetPlayerInput{Name: "  "})
	s.Equal(ErrEmptyPlayerName, err)
}

func (s *GameServiceTestSuite) TestForgetPlayer_RepositoryFailure() {
	s.mockPlayerRepo.EXPECT().ForgetPlayer(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := s.gameService.ForgetPlayer(s.ctx, &ForgetPlayerInput{Name: "Anna"})
	s.Error(err)
}
