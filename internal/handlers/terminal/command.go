package terminal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wannabet/internal/models"
)

const (
	// CommandQuit leaves the game; saved state is kept for the next run
	CommandQuit = "q"

	// CommandLedger prints the settled turns of the game
	CommandLedger = "ledger"

	// CommandHelp prints the wager syntax
	CommandHelp = "?"

	// CommandForget removes a remembered player during registration
	CommandForget = "forget"
)

var errBadBet = errors.New("bets look like 2+ (backing) or 3- (opposing)")

// parseBet reads "<player number><+|->" into a roster index and stance
func parseBet(line string, numPlayers int) (int, models.Stance, error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return 0, "", errBadBet
	}

	var stance models.Stance
	switch line[len(line)-1] {
	case '+':
		stance = models.StanceBacking
	case '-':
		stance = models.StanceOpposing
	default:
		return 0, "", errBadBet
	}

	number, err := strconv.Atoi(strings.TrimSpace(line[:len(line)-1]))
	if err != nil || number < 1 || number > numPlayers {
		return 0, "", errBadBet
	}

	return number - 1, stance, nil
}

// parseYesNo interprets a y/n answer, falling back to def on empty input
func parseYesNo(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes", "j", "ja":
		return true, true
	case "n", "no", "nej":
		return false, true
	}
	return false, false
}

// parseForget reads "forget <number>" into an index of the remembered players
func parseForget(line string, numKnown int) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || strings.ToLower(fields[0]) != CommandForget {
		return 0, false
	}

	number, err := strconv.Atoi(fields[1])
	if err != nil || number < 1 || number > numKnown {
		return 0, false
	}

	return number - 1, true
}
