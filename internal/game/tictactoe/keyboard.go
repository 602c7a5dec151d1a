package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// CallbackPrefix is the prefix for all cell button callback data.
const CallbackPrefix = "ttt_"

// ErrInvalidCallback is returned for callback data that is not a cell button.
var ErrInvalidCallback = errors.New("invalid tic-tac-toe callback data")

// EncodeCallback encodes a cell as callback data, e.g. "ttt_12" for row 1, column 2.
func EncodeCallback(c Coord) string {
	return fmt.Sprintf("%s%d%d", CallbackPrefix, c.Row, c.Col)
}

// IsCallback reports whether data belongs to a cell button.
func IsCallback(data string) bool {
	return strings.HasPrefix(data, CallbackPrefix)
}

// DecodeCallback parses callback data produced by EncodeCallback.
// Only the nine digit pairs 0..2 are accepted.
func DecodeCallback(data string) (Coord, error) {
	digits, ok := strings.CutPrefix(data, CallbackPrefix)
	if !ok || len(digits) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCallback, data)
	}
	c := Coord{Row: int(digits[0]) - '0', Col: int(digits[1]) - '0'}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCallback, data)
	}
	return c, nil
}

// BuildKeyboard builds the 3x3 inline keyboard for board, one keyboard row per board row.
func BuildKeyboard(board Board, glyphs Glyphs) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([][]tele.InlineButton, Size)
	for r := 0; r < Size; r++ {
		rows[r] = make([]tele.InlineButton, Size)
		for c := 0; c < Size; c++ {
			cell := Coord{Row: r, Col: c}
			rows[r][c] = tele.InlineButton{
				Text: glyphs.Label(board.At(cell)),
				Data: EncodeCallback(cell),
			}
		}
	}
	markup.InlineKeyboard = rows
	return markup
}
