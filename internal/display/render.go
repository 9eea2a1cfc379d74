// Package display renders cards, plays and results for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"runfast/internal/app"
	"runfast/internal/domain"
	"runfast/internal/match"
	"runfast/internal/sim"
)

// Card renders one card, hearts and diamonds in red.
func Card(c domain.Card) string {
	switch c.Suit {
	case domain.Hearts, domain.Diamonds:
		return RedCardStyle.Render(c.String())
	case domain.SuitJoker:
		return JokerStyle.Render(c.String())
	default:
		return BlackCardStyle.Render(c.String())
	}
}

// Cards renders cards in the order given.
func Cards(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders a hand sorted from low to high.
func Hand(hand []domain.Card) string {
	sorted := append([]domain.Card{}, hand...)
	domain.SortHand(sorted)
	return Cards(sorted)
}

// Play renders a play as its category followed by its cards.
func Play(p domain.Play) string {
	if p.IsEmpty() {
		return InfoStyle.Render("-")
	}
	if p.Category == domain.Invalid {
		return ErrorStyle.Render("invalid") + " " + Cards(p.Cards)
	}
	return CategoryStyle.Render(p.Category.String()) + " " + Cards(p.Cards)
}

// Event renders a public game event as one line. Events without a line render as "".
func Event(ev app.Event) string {
	switch p := ev.Payload.(type) {
	case app.GameStartedPayload:
		return HeaderStyle.Render("Game "+p.GameID) + " " + InfoStyle.Render(fmt.Sprintf("seats %s, %s leads", strings.Join(p.Seats, ", "), p.FirstPlayer))
	case app.CardPlayedPayload:
		return fmt.Sprintf("%s plays %s %s", PlayerStyle.Render(p.PlayerID), Play(p.Play), InfoStyle.Render(fmt.Sprintf("(%d left)", p.CardsLeft)))
	case app.TurnPassedPayload:
		return fmt.Sprintf("%s passes", PlayerStyle.Render(p.PlayerID))
	case app.RoundResetPayload:
		return InfoStyle.Render(fmt.Sprintf("Everyone passed, %s leads again", p.Leader))
	case app.GameEndedPayload:
		return SuccessStyle.Render(fmt.Sprintf("%s wins after %d plays", p.Winner, p.Turns))
	default:
		return ""
	}
}

// Result renders the summary of one match.
func Result(res match.Result) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Result") + "\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Winner"), PlayerStyle.Render(res.Winner))
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Plays"), res.Turns)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Passes"), res.Passes)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Bombs"), res.Bombs+res.JokerBombs)
	for _, seat := range res.Seats {
		fmt.Fprintf(&b, "%s %d cards left\n", labelStyle.Render(seat), res.CardsLeft[seat])
	}
	return b.String()
}

// Stats renders a simulation summary as a table with one row per seat.
func Stats(s sim.Stats, seats []sim.Seat) string {
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render("Seat"), cellStyle.Render("Strategy"), cellStyle.Render("Wins"), cellStyle.Render("Win %")),
	}
	for _, seat := range seats {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(seat.Name),
			cellStyle.Render(string(seat.Level)),
			cellStyle.Render(fmt.Sprintf("%d", s.WinsBySeat[seat.Name])),
			cellStyle.Render(fmt.Sprintf("%.1f", 100*s.WinRate(seat.Name))),
		))
	}

	summary := fmt.Sprintf("%d games, %.1f plays per game, pass rate %.1f%%, %d bombs, %d joker bombs",
		s.Games, s.MeanTurns(), 100*s.PassRate(), s.Bombs, s.JokerBombs)
	if s.Rejections > 0 {
		summary += ErrorStyle.Render(fmt.Sprintf(", %d rejected moves", s.Rejections))
	}
	return HeaderStyle.Render("Simulation") + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n" + InfoStyle.Render(summary) + "\n"
}
