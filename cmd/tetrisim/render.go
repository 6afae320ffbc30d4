package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/qnkhuat/tetriscore/pkg/event"
	"github.com/qnkhuat/tetriscore/pkg/game"
	"github.com/qnkhuat/tetriscore/pkg/mino"
)

func init() {
	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	emptyColor    = color.New(color.FgHiBlack)
	gameOverColor = color.New(color.FgRed, color.Bold)
)

func kindColor(k mino.Kind) *color.Color {
	r, g, b := k.Color().RGB()
	return color.RGB(int(r), int(g), int(b))
}

// renderSnapshot draws the board two columns per cell, active piece cells
// shaded differently from locked ones.
func renderSnapshot(s game.Snapshot) string {
	var b strings.Builder

	for r := 0; r < s.Rows; r++ {
		b.WriteRune('|')
		for c := 0; c < s.Cols; c++ {
			k, active := s.Cell(r, c)
			switch {
			case k == mino.None:
				b.WriteString(emptyColor.Sprint(" " + string(game.RuneEmpty)))
			case active:
				b.WriteString(kindColor(k).Sprint(strings.Repeat(string(game.RuneActive), 2)))
			default:
				b.WriteString(kindColor(k).Sprint(strings.Repeat(string(game.RuneLocked), 2)))
			}
		}
		b.WriteString("|\n")
	}
	b.WriteRune('+')
	b.WriteString(strings.Repeat("--", s.Cols))
	b.WriteRune('+')

	return b.String()
}

func kindList(kinds []mino.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = kindColor(k).Sprint(k.String())
	}

	return strings.Join(names, " ")
}

func printBoard(w io.Writer, session string, s game.Snapshot, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(struct {
			Session string
			Board   game.Snapshot
		}{session, s})
		if err != nil {
			return fmt.Errorf("failed to encode board: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, renderSnapshot(s))

	next := "-"
	if s.OnDeck != nil {
		next = kindList([]mino.Kind{s.OnDeck.Kind})
	}
	fmt.Fprintf(w, "session %s\nscore %d  lines %d  pieces %d\nnext %s  bag %s\n",
		session, s.Score, s.Lines, s.Pieces, next, kindList(s.Upcoming))

	if s.GameOver {
		gameOverColor.Fprintln(w, "GAME OVER")
	}

	return nil
}

func printEvent(w io.Writer, ev event.Interface, asJSON bool) error {
	if asJSON {
		data, err := event.Encode(ev)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	switch ev := ev.(type) {
	case event.Lock:
		fmt.Fprintf(w, "locked %s, cleared %d (+%d)\n", ev.Kind, ev.Lines, ev.Awarded)
	case event.Score:
		fmt.Fprintf(w, "score %d, lines %d\n", ev.Score, ev.Lines)
	case event.GameOver:
		gameOverColor.Fprintf(w, "game over: score %d, lines %d, pieces %d\n", ev.Score, ev.Lines, ev.Pieces)
	}

	return nil
}
