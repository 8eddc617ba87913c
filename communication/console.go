package communication

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rpsb/engine"
	"rpsb/game"
)

const rule = "============================================================"

// Console is the terminal input and presenter for a session.
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	printer *message.Printer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader:  bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

// ReadLine prints the prompt and returns the next line without its line ending.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.printer.Fprint(c.out, prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ShowRules() {
	c.printer.Fprintln(c.out, rule)
	c.printer.Fprintln(c.out, "ROCK PAPER SCISSORS BOMB")
	c.printer.Fprintln(c.out, "  rock beats scissors, scissors beats paper, paper beats rock")
	c.printer.Fprintln(c.out, "  bomb beats everything, bomb vs bomb is a draw")
	c.printer.Fprintln(c.out, "  each side may play bomb once per match")
	c.printer.Fprintf(c.out, "  best of %d rounds, an invalid move forfeits the round\n", game.MAX_ROUNDS)
	c.printer.Fprintln(c.out, rule)
}

func (c *Console) ShowNotice(msg string) {
	c.printer.Fprintf(c.out, "! %s\n", msg)
}

func (c *Console) ShowRound(u engine.Update, player string) {
	if u.Forfeit != nil {
		c.printer.Fprintf(c.out, "Round %d: invalid move (%v), round goes to the opponent\n", u.Round, u.Forfeit)
	} else {
		c.printer.Fprintf(c.out, "Round %d: %s played %s, opponent played %s -> %s\n",
			u.Round, player, u.A, u.B, roundResult(u.Label(player)))
	}
	c.printer.Fprintf(c.out, "Score: %s %d - %d Opponent\n", player, u.Record.ScoreA, u.Record.ScoreB)
}

func (c *Console) ShowFinal(s engine.Summary) {
	c.printer.Fprintln(c.out, rule)
	c.printer.Fprintf(c.out, "GAME SUMMARY (%s)\n", s.Difficulty)
	c.printer.Fprintf(c.out, "Rounds played: %d\n", s.Record.Played())
	c.printer.Fprintf(c.out, "%s score: %d\n", strings.ToUpper(s.Player), s.Record.ScoreA)
	c.printer.Fprintf(c.out, "OPPONENT score: %d\n", s.Record.ScoreB)
	for _, u := range s.Rounds {
		c.printer.Fprintf(c.out, "  Round %d: %s\n", u.Round, u.Label(s.Player))
	}
	switch s.Winner {
	case game.FirstWins:
		c.printer.Fprintf(c.out, "WINNER: %s\n", strings.ToUpper(s.Player))
	case game.SecondWins:
		c.printer.Fprintln(c.out, "WINNER: OPPONENT")
	default:
		c.printer.Fprintf(c.out, "IT'S A TIE! Both scored %d point(s)\n", s.Record.ScoreA)
	}
	c.printer.Fprintln(c.out, rule)
}

func roundResult(label string) string {
	if label == "Draw" {
		return "draw"
	}
	return label + " wins"
}
