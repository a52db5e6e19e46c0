// handeval 在命令行评估一手牌：
//
//	handeval --hand "As Kd" --board "Qh Jc Ts 2d 3c" --round river
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"

	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/game/table"
	"PokerCoach/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	labelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("#888888"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func main() {
	hand := flag.StringP("hand", "H", "", "two hole cards, e.g. \"As Kd\"")
	board := flag.StringP("board", "b", "", "up to five community cards")
	round := flag.StringP("round", "r", "river", "preflop|flop|turn|river|showdown or a number")
	level := flag.String("log-level", "warn", "debug|info|warn|error")
	flag.Parse()

	utils.Init(*level)

	if err := run(os.Stdout, *hand, *board, *round); err != nil {
		utils.Log.Error("evaluate failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, handArg, boardArg, roundArg string) error {
	hand, err := table.ParseCards(handArg)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	board, err := table.ParseCards(boardArg)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	round, err := table.ParseRound(roundArg)
	if err != nil {
		return err
	}

	res, err := evaluator.Evaluate(hand, board, round)
	if err != nil {
		return err
	}
	utils.Log.Debug("evaluated", "visible", table.Codes(res.Visible), "score", int(res.Score))

	fmt.Fprintln(w, render(round, res))
	return nil
}

func render(round table.Round, res evaluator.Result) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s (%d)", res.Score, int(res.Score))),
		"",
		row("round", round.String()),
		row("visible", cardList(res.Visible)),
		row("best", cardList(res.Best)),
		row("high", fmt.Sprint(res.High)),
		row("suits", fmt.Sprintf("%d %s", res.SuitCount, res.FlushSuit)),
		row("same rank", fmt.Sprint(res.Same)),
		row("pairs", fmt.Sprint(res.Pairs)),
		row("run", fmt.Sprint(res.StraightRun)),
	}
	if rank, name, ok := evaluator.Reference(res.Visible); ok {
		lines = append(lines, row("reference", fmt.Sprintf("%s (#%d)", name, rank)))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func cardList(cards []table.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := blackStyle
		if c.Suit() == table.Heart || c.Suit() == table.Diamond {
			style = redStyle
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}
