package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/services/game"
	"github.com/KirkDiggler/wannabet/internal/wager"
)

const rule = "----------------------------------------"

// renderTurn prints the round header and the question card for the asker
func renderTurn(w io.Writer, turn *game.GetCurrentTurnOutput) {
	q := turn.Assignment.Question
	info := q.Category.Info()

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Round %d, question %d of %d\n", turn.Round, turn.QuestionNumber, turn.QuestionsInRound)
	fmt.Fprintf(w, "%s %s\n", info.Emoji, info.Name)
	fmt.Fprintf(w, "%s asks %s:\n\n", turn.Asker.Name, turn.Answerer.Name)
	fmt.Fprintf(w, "  %s\n\n", q.Text)
	fmt.Fprintf(w, "  (answer for %s only: %s)\n", turn.Asker.Name, q.Answer)
	if turn.BaseReward > 0 {
		fmt.Fprintf(w, "A right answer pays %s %d coins.\n", turn.Answerer.Name, turn.BaseReward)
	}
	fmt.Fprintln(w, rule)
}

// renderBettors lists who may bet and the stance they hold
func renderBettors(w io.Writer, players []*models.Player, eligible []int, wagers []models.Wager) {
	if len(eligible) == 0 {
		fmt.Fprintln(w, "Nobody has coins to bet with.")
		return
	}

	fmt.Fprintln(w, "Bets: type a player number followed by + to back or - to oppose. Empty line to continue.")
	for _, i := range eligible {
		held := ""
		if stance, ok := wager.StanceOf(wagers, i); ok {
			held = fmt.Sprintf(" [%s]", stance)
		}
		fmt.Fprintf(w, "  %d. %s (%d coins)%s\n", i+1, players[i].Name, players[i].Coins, held)
	}
}

// renderStandings prints every balance, marking the players who just scored
func renderStandings(w io.Writer, players []*models.Player, scored []int) {
	marked := make(map[int]bool, len(scored))
	for _, i := range scored {
		marked[i] = true
	}

	fmt.Fprintln(w, "Standings:")
	for i, p := range players {
		marker := ""
		if marked[i] {
			marker = " +"
		}
		fmt.Fprintf(w, "  %-20s %3d%s\n", p.Name, p.Coins, marker)
	}
}

// renderLedger prints the settled turns of a game
func renderLedger(w io.Writer, players []*models.Player, entries []*models.LedgerEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No questions settled yet.")
		return
	}

	for _, e := range entries {
		verdict := "wrong"
		if e.Correct {
			verdict = "right"
		}

		changes := make([]string, 0, len(e.Changes))
		for _, c := range e.Changes {
			changes = append(changes, fmt.Sprintf("%s %d->%d", playerName(players, c.PlayerIndex), c.Before, c.After))
		}

		fmt.Fprintf(w, "  R%d %s answered %s: %s\n", e.Round, playerName(players, e.AnswererIndex), verdict, strings.Join(changes, ", "))
	}
}

// renderRoster prints remembered players as numbered suggestions
func renderRoster(w io.Writer, players []*models.Player) {
	if len(players) == 0 {
		return
	}

	fmt.Fprintf(w, "Known players (type a number to pick one, %s <number> to remove one):\n", CommandForget)
	for i, p := range players {
		fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, p.Name, p.Age)
	}
}

func playerName(players []*models.Player, index int) string {
	if index < 0 || index >= len(players) {
		return "?"
	}
	return players[index].Name
}
