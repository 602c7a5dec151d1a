// Package handler provides Telegram bot command handlers.
package handler

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"tictactoe-bot/internal/game/tictactoe"
)

// GameHandler translates chat commands and button taps into controller events.
// The party key is the Telegram user ID.
type GameHandler struct {
	controller *tictactoe.Controller
	glyphs     tictactoe.Glyphs
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(controller *tictactoe.Controller, glyphs tictactoe.Glyphs) *GameHandler {
	return &GameHandler{
		controller: controller,
		glyphs:     glyphs,
	}
}

// chatRenderer renders the board into the chat of the current update.
// edit selects editing the message that carried the tapped keyboard.
type chatRenderer struct {
	c      tele.Context
	glyphs tictactoe.Glyphs
	edit   bool
}

func (r *chatRenderer) RenderBoard(_ context.Context, _ int64, board tictactoe.Board, caption tictactoe.Caption) error {
	text := r.glyphs.Text(caption)
	markup := tictactoe.BuildKeyboard(board, r.glyphs)
	if r.edit {
		return r.c.Edit(text, markup)
	}
	return r.c.Send(text, markup)
}

// HandleStart handles the /start command.
func (h *GameHandler) HandleStart(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	r := &chatRenderer{c: c, glyphs: h.glyphs}
	if err := h.controller.Start(context.Background(), sender.ID, r); err != nil {
		log.Error().Err(err).Int64("user_id", sender.ID).Msg("Failed to start game")
		return err
	}
	return nil
}

// HandleEnd handles the /end command.
func (h *GameHandler) HandleEnd(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	h.controller.End(sender.ID)
	return c.Send("Game over. Please, enter /start to start a new game")
}

// HandleCallback handles taps on the board buttons.
func (h *GameHandler) HandleCallback(c tele.Context) error {
	callback := c.Callback()
	sender := c.Sender()
	if callback == nil || sender == nil {
		return nil
	}

	// Telebot v3 may add a \f prefix to callback data
	data := strings.TrimPrefix(callback.Data, "\f")

	cell, err := tictactoe.DecodeCallback(data)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", sender.ID).Msg("Dropping callback")
		return c.Respond()
	}

	r := &chatRenderer{c: c, glyphs: h.glyphs, edit: true}
	outcome, err := h.controller.Choose(context.Background(), sender.ID, cell, r)
	if err != nil {
		log.Error().
			Err(err).
			Int64("user_id", sender.ID).
			Int("row", cell.Row).
			Int("col", cell.Col).
			Msg("Failed to render move")
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong, please try again"})
	}

	return c.Respond(&tele.CallbackResponse{Text: responseText(outcome)})
}

// responseText is the short toast shown for a resolved tap.
func responseText(o tictactoe.Outcome) string {
	switch o {
	case tictactoe.OutcomeWin:
		return "🎉 You win!"
	case tictactoe.OutcomeLose:
		return "😢 You lose"
	case tictactoe.OutcomeTie:
		return "🤝 Tie"
	default:
		return ""
	}
}

// IsGameCallback reports whether callback data belongs to the board.
func IsGameCallback(data string) bool {
	return tictactoe.IsCallback(strings.TrimPrefix(data, "\f"))
}
