package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCallback(t *testing.T) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			want := Coord{Row: r, Col: c}
			got, err := DecodeCallback(EncodeCallback(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	for _, data := range []string{"", "ttt_", "ttt_1", "ttt_123", "ttt_30", "ttt_03", "ttt_ab", "ttt_-1", "12", "sicbo_12"} {
		t.Run(data, func(t *testing.T) {
			_, err := DecodeCallback(data)
			assert.ErrorIs(t, err, ErrInvalidCallback)
		})
	}
}

func TestBuildKeyboard(t *testing.T) {
	b := Board{
		{x, f, f},
		{f, o, f},
		{f, f, x},
	}
	markup := BuildKeyboard(b, Glyphs{Empty: "·", Human: "❌", Opponent: "⭕"})

	require.Len(t, markup.InlineKeyboard, Size)
	for r, row := range markup.InlineKeyboard {
		require.Len(t, row, Size)
		for c, btn := range row {
			assert.Equal(t, EncodeCallback(Coord{Row: r, Col: c}), btn.Data)
		}
	}
	assert.Equal(t, "❌", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "⭕", markup.InlineKeyboard[1][1].Text)
	assert.Equal(t, "·", markup.InlineKeyboard[0][1].Text)
}

func TestGlyphs_Text(t *testing.T) {
	g := Glyphs{}
	assert.Equal(t, "X (your) turn! Please, put X to the free place", g.Text(CaptionYourTurn))
	assert.Equal(t, "You win! Please, enter /start to start a new game", g.Text(CaptionWin))
	assert.Equal(t, "You lose! Please, enter /start to start a new game", g.Text(CaptionLose))
	assert.Equal(t, "Tie! Please, enter /start to start a new game", g.Text(CaptionTie))

	custom := Glyphs{Human: "❌"}
	assert.Equal(t, "❌ (your) turn! Please, put ❌ to the free place", custom.Text(CaptionYourTurn))
	assert.Equal(t, "O", custom.Label(Opponent))
	assert.Equal(t, ".", custom.Label(Empty))
}
