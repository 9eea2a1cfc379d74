package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"runfast/internal/app"
	botinternal "runfast/internal/bot/internal"
	"runfast/internal/domain"
)

// HumanBrain asks a person for moves over a line-oriented reader and writer. An empty line or
// "pass" passes, "hint" lists the legal plays, anything else is read as cards.
type HumanBrain struct {
	in     *bufio.Scanner
	out    io.Writer
	played []domain.Card
}

// NewHumanBrain reads moves from in and writes prompts to out.
func NewHumanBrain(in io.Reader, out io.Writer) *HumanBrain {
	return &HumanBrain{in: bufio.NewScanner(in), out: out}
}

func (b *HumanBrain) CalculateMove(ctx context.Context, view View) (Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Move{}, err
		}
		fmt.Fprintf(b.out, "Your hand: %s\n", domain.FormatCards(sortedHand(view.Hand)))
		if view.Table.LastPlay.IsEmpty() {
			fmt.Fprint(b.out, "You lead. Cards> ")
		} else {
			fmt.Fprintf(b.out, "Beat %s from %s. Cards or pass> ", view.Table.LastPlay, view.Table.LastPlayOwner)
		}

		if !b.in.Scan() {
			if err := b.in.Err(); err != nil {
				return Move{}, err
			}
			return Move{}, io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(b.in.Text())

		switch strings.ToLower(line) {
		case "hint", "?":
			b.hint(view)
			continue
		case "", "pass", "p":
			move, err := ValidateDecision(view, Decision{Pass: true})
			if err != nil {
				if view.IsLeader() {
					fmt.Fprintln(b.out, "You can not pass: you lead this round and must play.")
				} else {
					fmt.Fprintln(b.out, "You can not pass: you hold a play that beats the table.")
				}
				continue
			}
			return move, nil
		}

		cards, err := domain.ParseCards(line)
		if err != nil {
			fmt.Fprintf(b.out, "Could not read %q: %v\n", line, err)
			continue
		}
		move, err := ValidateDecision(view, Decision{Cards: cards})
		if err != nil {
			fmt.Fprintln(b.out, rejection(err))
			continue
		}
		return move, nil
	}
}

func (b *HumanBrain) hint(view View) {
	plays := view.LegalPlays()
	if len(plays) == 0 {
		fmt.Fprintln(b.out, "Nothing beats the table. Pass.")
		return
	}
	for _, p := range plays {
		fmt.Fprintf(b.out, "  %s\n", p)
	}
	if stats := botinternal.AnalyzeHand(view.Hand, b.played); len(stats.BossSingles) > 0 {
		fmt.Fprintf(b.out, "Unbeatable singles: %s\n", domain.FormatCards(sortedHand(stats.BossSingles)))
	}
}

// OnEvent remembers the cards played so far for hints.
func (b *HumanBrain) OnEvent(event app.Event) {
	switch p := event.Payload.(type) {
	case app.HandDealtPayload:
		b.played = nil
	case app.CardPlayedPayload:
		b.played = append(b.played, p.Play.Cards...)
	}
}

func rejection(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPattern):
		return "Those cards do not form a valid pattern."
	case errors.Is(err, domain.ErrNotHigherThanTable):
		return "That does not beat the table."
	case errors.Is(err, domain.ErrCardsNotInHand):
		return "You do not hold those cards."
	case errors.Is(err, domain.ErrMalformedCard):
		return "Each card may be named only once."
	default:
		return err.Error()
	}
}

func sortedHand(hand []domain.Card) []domain.Card {
	out := append([]domain.Card{}, hand...)
	domain.SortHand(out)
	return out
}
