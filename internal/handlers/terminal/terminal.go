package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	"github.com/KirkDiggler/wannabet/internal/services/game"
	"github.com/KirkDiggler/wannabet/internal/services/messaging"
)

// errQuit ends the session; the saved game is left in place
var errQuit = errors.New("quit")

// Config holds the configuration for the terminal front end
type Config struct {
	// In is read line by line for player input
	In io.Reader

	// Out receives everything shown to the players
	Out io.Writer

	// Game service
	GameService game.Service

	// Messaging service for commentary
	MessagingService messaging.Service

	// Classic is the default answer to the classic mode prompt
	Classic bool

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// Terminal runs the game loop over a line-oriented reader and writer
type Terminal struct {
	in               *bufio.Scanner
	out              io.Writer
	gameService      game.Service
	messagingService messaging.Service
	classic          bool
	logger           *slog.Logger
}

// New creates a new terminal front end
func New(cfg *Config) (*Terminal, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Terminal{
		in:               bufio.NewScanner(cfg.In),
		out:              cfg.Out,
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		classic:          cfg.Classic,
		logger:           logger.With("handler", "terminal"),
	}, nil
}

// Run resumes or registers a game and plays until a winner is found and the
// players stop, or input ends.
func (t *Terminal) Run(ctx context.Context) error {
	current, roster, err := t.resume(ctx)
	if err != nil {
		return ignoreQuit(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if current == nil {
			current, err = t.register(ctx, roster)
			if err != nil {
				return ignoreQuit(err)
			}
		}

		if err := t.play(ctx, current.ID); err != nil {
			return ignoreQuit(err)
		}

		again, err := t.confirm("Play again? [y/N] ", false)
		if err != nil || !again {
			return ignoreQuit(err)
		}

		restarted, err := t.gameService.RestartGame(ctx, &game.RestartGameInput{GameID: current.ID})
		if err != nil {
			return fmt.Errorf("failed to restart game: %w", err)
		}
		roster = restarted.Players
		current = nil
	}
}

// resume offers to continue a saved game. A finished or declined game is
// discarded and its roster returned for registration.
func (t *Terminal) resume(ctx context.Context) (*models.Game, []*models.Player, error) {
	saved, err := t.gameService.GetGame(ctx, &game.GetGameInput{})
	if errors.Is(err, game.ErrGameNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	current := saved.Game
	resume := false
	if current.IsCompleted() {
		fmt.Fprintf(t.out, "Last game was won by %s.\n", current.Players[current.WinnerIndex].Name)
		renderStandings(t.out, current.Players, nil)
	} else {
		names := make([]string, len(current.Players))
		for i, p := range current.Players {
			names[i] = p.Name
		}
		fmt.Fprintf(t.out, "Saved game found: round %d with %s.\n", current.CurrentRound, strings.Join(names, ", "))
		resume, err = t.confirm("Resume it? [Y/n] ", true)
		if err != nil {
			return nil, nil, err
		}
	}

	if resume {
		return current, nil, nil
	}

	restarted, err := t.gameService.RestartGame(ctx, &game.RestartGameInput{GameID: current.ID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discard saved game: %w", err)
	}

	return nil, restarted.Players, nil
}

// register collects a roster and starts a game, retrying on invalid input
func (t *Terminal) register(ctx context.Context, roster []*models.Player) (*models.Game, error) {
	for {
		players := roster
		if len(players) > 0 {
			same, err := t.confirm("Same players again? [Y/n] ", true)
			if err != nil {
				return nil, err
			}
			if !same {
				players = nil
			}
		}

		if len(players) == 0 {
			var err error
			players, err = t.collectPlayers(ctx)
			if err != nil {
				return nil, err
			}
		}

		classic, err := t.confirm(classicPrompt(t.classic), t.classic)
		if err != nil {
			return nil, err
		}

		started, err := t.gameService.StartGame(ctx, &game.StartGameInput{
			Players: players,
			Classic: classic,
		})
		if err != nil {
			t.showError(ctx, err)
			if errors.Is(err, rounds.ErrQuestionsExhausted) {
				return nil, err
			}
			roster = nil
			continue
		}

		names := make([]string, len(started.Game.Players))
		for i, p := range started.Game.Players {
			names[i] = p.Name
		}
		msg, err := t.messagingService.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
			PlayerNames: names,
			Classic:     classic,
		})
		if err == nil {
			fmt.Fprintln(t.out, msg.Message)
		}

		return started.Game, nil
	}
}

func classicPrompt(def bool) string {
	if def {
		return "Classic mode, every question for everyone? [Y/n] "
	}
	return "Classic mode, every question for everyone? [y/N] "
}

// collectPlayers asks for a player count and each player's name and age
func (t *Terminal) collectPlayers(ctx context.Context) ([]*models.Player, error) {
	var known []*models.Player
	remembered, err := t.gameService.GetPlayerNames(ctx, &game.GetPlayerNamesInput{})
	if err != nil {
		t.logger.Warn("failed to load remembered players", "error", err)
	} else {
		known = remembered.Players
	}
	renderRoster(t.out, known)

	count, err := t.askInt(fmt.Sprintf("How many players? (%d-%d) ", game.MinPlayers, game.MaxPlayers), game.MinPlayers, game.MaxPlayers)
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, count)
	for len(players) < count {
		line, err := t.prompt(fmt.Sprintf("Player %d name: ", len(players)+1))
		if err != nil {
			return nil, err
		}

		if index, ok := parseForget(line, len(known)); ok {
			forgotten, err := t.gameService.ForgetPlayer(ctx, &game.ForgetPlayerInput{Name: known[index].Name})
			if err != nil {
				t.showError(ctx, err)
				continue
			}
			fmt.Fprintf(t.out, "Forgot %s.\n", known[index].Name)
			known = forgotten.Players
			renderRoster(t.out, known)
			continue
		}

		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(known) {
			players = append(players, &models.Player{Name: known[n-1].Name, Age: known[n-1].Age})
			fmt.Fprintf(t.out, "  %s (%d)\n", known[n-1].Name, known[n-1].Age)
			continue
		}

		age, err := t.askInt(fmt.Sprintf("%s's age: ", line), 0, game.MaxAge)
		if err != nil {
			return nil, err
		}
		players = append(players, &models.Player{Name: line, Age: age})
	}

	return players, nil
}

// play runs turns until the game has a winner
func (t *Terminal) play(ctx context.Context, gameID string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		turn, err := t.gameService.GetCurrentTurn(ctx, &game.GetCurrentTurnInput{GameID: gameID})
		if errors.Is(err, game.ErrGameCompleted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get current turn: %w", err)
		}

		renderTurn(t.out, turn)

		if err := t.collectWagers(ctx, gameID, turn); err != nil {
			return err
		}

		correct, err := t.askVerdict(turn.Answerer.Name)
		if err != nil {
			return err
		}

		resolved, err := t.gameService.ResolveAnswer(ctx, &game.ResolveAnswerInput{
			GameID:    gameID,
			IsCorrect: correct,
		})
		if err != nil {
			t.showError(ctx, err)
			return fmt.Errorf("failed to resolve answer: %w", err)
		}

		t.showVerdict(ctx, turn.Answerer.Name, resolved)
		renderStandings(t.out, resolved.Game.Players, resolved.ScoredPlayerIndices)

		if resolved.WinnerIndex != models.NoWinner {
			winner := resolved.Game.Players[resolved.WinnerIndex]
			msg, err := t.messagingService.GetVictoryMessage(ctx, &messaging.GetVictoryMessageInput{
				WinnerName: winner.Name,
				Coins:      winner.Coins,
				Rounds:     resolved.Game.CurrentRound,
			})
			if err == nil {
				fmt.Fprintf(t.out, "\n*** %s ***\n%s\n", msg.Title, msg.Message)
			}
			return nil
		}

		if resolved.NewRound {
			if resolved.UsedReset {
				fmt.Fprintln(t.out, "Every suitable question has been asked. Reshuffling the deck.")
			}
			fmt.Fprintf(t.out, "\nRound %d begins!\n", resolved.Game.CurrentRound)
		}
	}
}

// collectWagers reads bet toggles until an empty line
func (t *Terminal) collectWagers(ctx context.Context, gameID string, turn *game.GetCurrentTurnOutput) error {
	wagers := turn.Game.Wagers
	players := turn.Game.Players

	for {
		renderBettors(t.out, players, turn.EligibleBettors, wagers)
		if len(turn.EligibleBettors) == 0 {
			return nil
		}

		line, err := t.prompt("bet> ")
		if err != nil {
			return err
		}

		switch strings.ToLower(line) {
		case "":
			return nil
		case CommandHelp:
			fmt.Fprintln(t.out, errBadBet.Error())
			continue
		case CommandLedger:
			t.showLedger(ctx, gameID, players)
			continue
		}

		bettor, stance, err := parseBet(line, len(players))
		if err != nil {
			fmt.Fprintln(t.out, err.Error())
			continue
		}

		toggled, err := t.gameService.ToggleWager(ctx, &game.ToggleWagerInput{
			GameID:      gameID,
			BettorIndex: bettor,
			Stance:      stance,
		})
		if err != nil {
			t.showError(ctx, err)
			continue
		}
		wagers = toggled.Wagers
	}
}

// askVerdict asks the asker whether the answer was right
func (t *Terminal) askVerdict(answerer string) (bool, error) {
	for {
		line, err := t.prompt(fmt.Sprintf("Was %s right? [y/n] ", answerer))
		if err != nil {
			return false, err
		}
		if line == "" {
			continue
		}
		if v, ok := parseYesNo(line, false); ok {
			return v, nil
		}
	}
}

func (t *Terminal) showVerdict(ctx context.Context, answerer string, resolved *game.ResolveAnswerOutput) {
	var winning, losing []string
	for _, w := range resolved.Entry.Wagers {
		name := playerName(resolved.Game.Players, w.BettorIndex)
		won := (w.Stance == models.StanceBacking) == resolved.Entry.Correct
		if won {
			winning = append(winning, name)
		} else {
			losing = append(losing, name)
		}
	}

	msg, err := t.messagingService.GetVerdictMessage(ctx, &messaging.GetVerdictMessageInput{
		AnswererName:   answerer,
		IsCorrect:      resolved.Entry.Correct,
		WinningBettors: winning,
		LosingBettors:  losing,
	})
	if err != nil {
		t.logger.Warn("failed to build verdict message", "error", err)
		return
	}

	fmt.Fprintf(t.out, "\n%s %s\n", msg.Title, msg.Message)
}

func (t *Terminal) showLedger(ctx context.Context, gameID string, players []*models.Player) {
	ledger, err := t.gameService.GetLedger(ctx, &game.GetLedgerInput{GameID: gameID})
	if err != nil {
		t.showError(ctx, err)
		return
	}
	renderLedger(t.out, players, ledger.Entries)
}

func (t *Terminal) showError(ctx context.Context, err error) {
	t.logger.Debug("showing error", "error", err)

	msg, msgErr := t.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		fmt.Fprintln(t.out, err.Error())
		return
	}
	fmt.Fprintln(t.out, msg.Message)
}

// prompt prints a prompt and reads one trimmed line. The quit command and end
// of input both return errQuit.
func (t *Terminal) prompt(text string) (string, error) {
	fmt.Fprint(t.out, text)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}

	line := strings.TrimSpace(t.in.Text())
	if strings.EqualFold(line, CommandQuit) {
		return "", errQuit
	}
	return line, nil
}

func (t *Terminal) confirm(text string, def bool) (bool, error) {
	for {
		line, err := t.prompt(text)
		if err != nil {
			return false, err
		}
		if v, ok := parseYesNo(line, def); ok {
			return v, nil
		}
	}
}

func (t *Terminal) askInt(text string, low, high int) (int, error) {
	for {
		line, err := t.prompt(text)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= low && n <= high {
			return n, nil
		}
		fmt.Fprintf(t.out, "Enter a number from %d to %d.\n", low, high)
	}
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
