package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/wannabet/internal/random"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	"github.com/KirkDiggler/wannabet/internal/services/game"
	"github.com/KirkDiggler/wannabet/internal/wager"
)

// service implements the Service interface
type service struct {
	// Random source for selecting message variants
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	if config.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: config.Random,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}

// GetGameStartedMessage returns a message for when a game starts
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	players := joinNames(input.PlayerNames)
	messages := []string{
		fmt.Sprintf("%s, the coins are on the table. Let the betting begin!", players),
		fmt.Sprintf("Welcome %s! Answer well, bet wisely.", players),
		fmt.Sprintf("%s walk into a quiz. Only one walks out rich.", players),
	}
	if input.Classic {
		messages = append(messages, fmt.Sprintf("Classic rules tonight, %s. Every question is fair game!", players))
	}

	return &GetGameStartedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetVerdictMessage returns commentary on a settled question
func (s *service) GetVerdictMessage(ctx context.Context, input *GetVerdictMessageInput) (*GetVerdictMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		titles   []string
		messages []string
		tone     MessageTone
	)

	if input.IsCorrect {
		tone = ToneCelebration
		titles = []string{"Correct!", "Nailed it!", "Spot on!"}
		messages = []string{
			fmt.Sprintf("%s knew that one. Cha-ching!", input.AnswererName),
			fmt.Sprintf("Right answer from %s. The coins roll in.", input.AnswererName),
			fmt.Sprintf("%s makes it look easy.", input.AnswererName),
		}
	} else {
		tone = ToneEncouraging
		titles = []string{"Wrong!", "Not quite...", "Oops!"}
		messages = []string{
			fmt.Sprintf("Not this time, %s. Better luck next question!", input.AnswererName),
			fmt.Sprintf("%s gave it a shot. The doubters are smiling.", input.AnswererName),
			fmt.Sprintf("So close, %s. Or not close at all, who knows.", input.AnswererName),
		}
	}

	message := s.pick(messages)
	if len(input.WinningBettors) > 0 {
		message += fmt.Sprintf(" %s called it and win a coin.", joinNames(input.WinningBettors))
	}
	if len(input.LosingBettors) > 0 {
		message += fmt.Sprintf(" %s bet wrong and lose a coin.", joinNames(input.LosingBettors))
	}

	return &GetVerdictMessageOutput{
		Title:   s.pick(titles),
		Message: message,
		Tone:    tone,
	}, nil
}

// GetVictoryMessage returns a message for the winner
func (s *service) GetVictoryMessage(ctx context.Context, input *GetVictoryMessageInput) (*GetVictoryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		fmt.Sprintf("%s wins!", input.WinnerName),
		fmt.Sprintf("All hail %s!", input.WinnerName),
	}
	messages := []string{
		fmt.Sprintf("%s reached %d coins after %d rounds.", input.WinnerName, input.Coins, input.Rounds),
		fmt.Sprintf("With %d coins in %d rounds, %s takes the pot.", input.Coins, input.Rounds, input.WinnerName),
	}

	return &GetVictoryMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var messages []string
	tone := ToneFunny

	var exhausted *rounds.ExhaustionError
	switch {
	case errors.As(input.Err, &exhausted):
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("We ran out of %s questions for %s (age %d). Add more questions and try again.",
				exhausted.Level, exhausted.PlayerName, exhausted.Age),
		}
	case errors.Is(input.Err, game.ErrTooFewPlayers):
		messages = []string{
			"Betting against yourself is no fun. Grab a friend!",
			"You need at least two players for this.",
		}
	case errors.Is(input.Err, game.ErrTooManyPlayers):
		messages = []string{"Four is company, five is a crowd. Max four players."}
	case errors.Is(input.Err, game.ErrEmptyPlayerName):
		messages = []string{"Every player needs a name.", "Nameless players can't hold coins."}
	case errors.Is(input.Err, game.ErrPlayerNameTooLong):
		messages = []string{fmt.Sprintf("That's a mouthful. Keep names to %d characters.", game.MaxNameLength)}
	case errors.Is(input.Err, game.ErrDuplicatePlayerName):
		messages = []string{"Two players with the same name? Pick nicknames!"}
	case errors.Is(input.Err, game.ErrInvalidAge):
		messages = []string{"That age doesn't look right. Try again."}
	case errors.Is(input.Err, game.ErrGameNotFound):
		tone = ToneNeutral
		messages = []string{"No saved game found. Start a new one!"}
	case errors.Is(input.Err, game.ErrGameCompleted):
		messages = []string{"This game already has a winner. Start a new one!"}
	case errors.Is(input.Err, wager.ErrSelfWager):
		messages = []string{"Nice try! You can't bet on your own question.", "Betting on yourself? Cheeky."}
	case errors.Is(input.Err, wager.ErrInsufficientCoins):
		messages = []string{"You're broke! Earn a coin before betting.", "No coins, no bets."}
	default:
		tone = ToneNeutral
		messages = []string{"Something went wrong. Give it another go."}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// joinNames renders "A", "A and B" or "A, B and C"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
