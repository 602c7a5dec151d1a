// Package terminal plays the game on a text terminal, acting as the chat
// transport for local play without Telegram.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"tictactoe-bot/internal/game/tictactoe"
)

// LocalParty is the party key used for the single terminal player.
const LocalParty int64 = 0

// Renderer prints the board with row and column indexes.
type Renderer struct {
	out    io.Writer
	glyphs tictactoe.Glyphs

	human    *color.Color
	opponent *color.Color
	empty    *color.Color
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, glyphs tictactoe.Glyphs) *Renderer {
	return &Renderer{
		out:      out,
		glyphs:   glyphs,
		human:    color.New(color.FgGreen, color.Bold),
		opponent: color.New(color.FgRed, color.Bold),
		empty:    color.New(color.Faint),
	}
}

func (r *Renderer) paint(c tictactoe.Cell) string {
	label := r.glyphs.Label(c)
	switch c {
	case tictactoe.Human:
		return r.human.Sprint(label)
	case tictactoe.Opponent:
		return r.opponent.Sprint(label)
	default:
		return r.empty.Sprint(label)
	}
}

// RenderBoard implements tictactoe.Renderer.
func (r *Renderer) RenderBoard(_ context.Context, _ int64, board tictactoe.Board, caption tictactoe.Caption) error {
	var sb strings.Builder
	sb.WriteString("\n    0 1 2\n")
	for row := 0; row < tictactoe.Size; row++ {
		fmt.Fprintf(&sb, "  %d", row)
		for col := 0; col < tictactoe.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.paint(board[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(r.glyphs.Text(caption))
	sb.WriteByte('\n')
	_, err := io.WriteString(r.out, sb.String())
	return err
}

const help = "Commands: <row> <col> to place a mark, /start for a new game, /end to stop, /quit to exit"

// Run starts a game and feeds lines from in to the controller until in is
// exhausted, the user quits or ctx is cancelled. Cancellation returns at once
// even while a read is pending; the reading goroutine then exits with its
// next line or at end of input.
func Run(ctx context.Context, in io.Reader, out io.Writer, ctrl *tictactoe.Controller, glyphs tictactoe.Glyphs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := NewRenderer(out, glyphs)
	fmt.Fprintln(out, help)

	if err := ctrl.Start(ctx, LocalParty, r); err != nil {
		return err
	}

	lines, errc := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = strings.TrimSpace(l)
		}

		switch line {
		case "":
			continue
		case "/quit", "/q":
			return nil
		case "/start":
			if err := ctrl.Start(ctx, LocalParty, r); err != nil {
				return err
			}
			continue
		case "/end":
			ctrl.End(LocalParty)
			fmt.Fprintln(out, "Game over. Please, enter /start to start a new game")
			continue
		}

		cell, ok := parseCell(line)
		if !ok {
			fmt.Fprintln(out, help)
			continue
		}

		outcome, err := ctrl.Choose(ctx, LocalParty, cell, r)
		if err != nil {
			return err
		}
		if outcome == tictactoe.OutcomeIgnored {
			log.Debug().Int("row", cell.Row).Int("col", cell.Col).Msg("Move ignored")
			fmt.Fprintln(out, "That cell is not available")
		}
	}
}

// readLines scans in on its own goroutine. lines is closed when scanning
// stops; errc then holds the scan error, or ctx's error if ctx ended first.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// parseCell accepts "r c", "r,c" or "rc" with digits 0..2.
func parseCell(line string) (tictactoe.Coord, bool) {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, line)
	if len(digits) != 2 {
		return tictactoe.Coord{}, false
	}
	c := tictactoe.Coord{Row: int(digits[0]) - '0', Col: int(digits[1]) - '0'}
	return c, c.Valid()
}
