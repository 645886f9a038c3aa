package game

import (
	"time"

	"github.com/KirkDiggler/wannabet/internal/models"
)

func testGame(id string, now time.Time) *models.Game {
	players := []*models.Player{
		{Name: "Edvin", Age: 9, Coins: 2},
		{Name: "Sara", Age: 41, Coins: 1},
	}
	return &models.Game{
		ID:      id,
		Status:  models.GameStatusActive,
		Players: players,
		RoundAssignments: []*models.RoundAssignment{
			{
				Question:      &models.Question{ID: 1, Text: "Vad heter Sveriges huvudstad?", Answer: "Stockholm", Category: models.CategoryGeography, Level: models.AgeLevelTween},
				AnswererIndex: 0,
				AskerIndex:    1,
			},
			{
				Question:      &models.Question{ID: 2, Text: "Vilket år föll Berlinmuren?", Answer: "1989", Category: models.CategoryHistoryAndSociety, Level: models.AgeLevelAdult},
				AnswererIndex: 1,
				AskerIndex:    0,
			},
		},
		CurrentRound:           1,
		CurrentQuestionInRound: 1,
		UsedQuestions:          []string{"Vad heter Sveriges huvudstad?", "Vilket år föll Berlinmuren?"},
		Wagers:                 []models.Wager{{BettorIndex: 0, Stance: models.StanceOpposing}},
		WinnerIndex:            models.NoWinner,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// corruptGames returns saved states that decode but break an invariant a
// resumed game relies on, keyed by what is wrong with them
func corruptGames(now time.Time) map[string]*models.Game {
	unknownStatus := testGame("unknown-status", now)
	unknownStatus.Status = "paused"

	winnerOutOfRange := testGame("winner-out-of-range", now)
	winnerOutOfRange.Status = models.GameStatusCompleted
	winnerOutOfRange.WinnerIndex = 7

	activeWithWinner := testGame("active-with-winner", now)
	activeWithWinner.WinnerIndex = 0

	negativeCoins := testGame("negative-coins", now)
	negativeCoins.Players[1].Coins = -4

	answererWager := testGame("answerer-wager", now)
	answererWager.Wagers = []models.Wager{{BettorIndex: 1, Stance: models.StanceBacking}}

	duplicateWager := testGame("duplicate-wager", now)
	duplicateWager.Wagers = []models.Wager{
		{BettorIndex: 0, Stance: models.StanceBacking},
		{BettorIndex: 0, Stance: models.StanceOpposing},
	}

	return map[string]*models.Game{
		"unknown status":                unknownStatus,
		"completed with unknown winner": winnerOutOfRange,
		"active with a winner":          activeWithWinner,
		"negative coins":                negativeCoins,
		"answerer wagering":             answererWager,
		"two wagers from one bettor":    duplicateWager,
	}
}
