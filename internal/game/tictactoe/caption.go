package tictactoe

import "fmt"

// Caption describes whose turn it is or how the game ended.
type Caption int

const (
	CaptionYourTurn Caption = iota
	CaptionWin
	CaptionLose
	CaptionTie
)

// Glyphs maps cell states to the labels shown on buttons.
type Glyphs struct {
	Empty    string
	Human    string
	Opponent string
}

// DefaultGlyphs are the labels used when none are configured.
var DefaultGlyphs = Glyphs{Empty: ".", Human: "X", Opponent: "O"}

// withDefaults fills blank labels from DefaultGlyphs.
func (g Glyphs) withDefaults() Glyphs {
	if g.Empty == "" {
		g.Empty = DefaultGlyphs.Empty
	}
	if g.Human == "" {
		g.Human = DefaultGlyphs.Human
	}
	if g.Opponent == "" {
		g.Opponent = DefaultGlyphs.Opponent
	}
	return g
}

// Label returns the button label for a cell.
func (g Glyphs) Label(c Cell) string {
	g = g.withDefaults()
	switch c {
	case Human:
		return g.Human
	case Opponent:
		return g.Opponent
	default:
		return g.Empty
	}
}

// Text renders the caption as a chat message.
func (g Glyphs) Text(c Caption) string {
	g = g.withDefaults()
	switch c {
	case CaptionWin:
		return "You win! Please, enter /start to start a new game"
	case CaptionLose:
		return "You lose! Please, enter /start to start a new game"
	case CaptionTie:
		return "Tie! Please, enter /start to start a new game"
	default:
		return fmt.Sprintf("%s (your) turn! Please, put %s to the free place", g.Human, g.Human)
	}
}

// String returns a short name used in logs.
func (c Caption) String() string {
	switch c {
	case CaptionYourTurn:
		return "your_turn"
	case CaptionWin:
		return "win"
	case CaptionLose:
		return "lose"
	case CaptionTie:
		return "tie"
	default:
		return fmt.Sprintf("caption(%d)", int(c))
	}
}
