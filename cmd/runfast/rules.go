package main

import (
	"fmt"
	"strings"

	"runfast/internal/display"
	"runfast/internal/domain"
)

func parseArgs(args []string) ([]domain.Card, error) {
	cards, err := domain.ParseCards(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCards(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards such as 10H QS SJ"`
}

func (c *ClassifyCmd) Run() error {
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}
	play := domain.Classify(cards)
	fmt.Println(display.Play(play))
	if play.Category == domain.Invalid || play.IsEmpty() {
		return nil
	}
	fmt.Printf("key rank: %s\n", play.KeyRank)
	if play.Chain > 0 {
		fmt.Printf("chain:    %d\n", play.Chain)
	}
	if play.Category == domain.Plane {
		fmt.Printf("wings:    %s\n", play.Wing)
	}
	return nil
}

type BeatsCmd struct {
	Table string   `required:"" help:"Cards on the table"`
	Cards []string `arg:"" help:"Candidate cards"`
}

func (c *BeatsCmd) Run() error {
	table, err := parseArgs([]string{c.Table})
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}
	candidate, onTable := domain.Classify(cards), domain.Classify(table)
	if onTable.IsEmpty() {
		return fmt.Errorf("table: %w", domain.ErrInvalidPattern)
	}
	verdict := display.ErrorStyle.Render("does not beat")
	if domain.IsHigher(candidate, onTable) {
		verdict = display.SuccessStyle.Render("beats")
	}
	fmt.Printf("%s %s %s\n", display.Play(candidate), verdict, display.Play(onTable))
	return nil
}

type MovesCmd struct {
	Hand     string `required:"" help:"Cards in hand"`
	Table    string `help:"Cards on the table; empty when leading"`
	Category string `help:"Only list plays of this category" default:"any"`
}

func (c *MovesCmd) Run() error {
	hand, err := parseArgs([]string{c.Hand})
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	var against domain.Play
	if c.Table != "" {
		table, err := parseArgs([]string{c.Table})
		if err != nil {
			return fmt.Errorf("table: %w", err)
		}
		if against = domain.Classify(table); against.IsEmpty() {
			return fmt.Errorf("table: %w", domain.ErrInvalidPattern)
		}
	}
	category, err := domain.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	plays := domain.FindPlays(hand, category, against)
	for _, p := range plays {
		fmt.Println(display.Play(p))
	}
	fmt.Println(display.InfoStyle.Render(fmt.Sprintf("%d plays", len(plays))))

	table := domain.TableState{LastPlay: against}
	fmt.Printf("pass allowed: %t\n", domain.CanPass(hand, table, against.IsEmpty()))
	return nil
}
