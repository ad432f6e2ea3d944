package server

import (
	"net/http"
	"time"

	"github.com/guiate/guiate/internal/daily"
)

// DailyPlayerResponse is the body of GET /api/daily-player. Clubs are
// the hint; the name only appears once the caller's game is finished.
type DailyPlayerResponse struct {
	Date        string        `json:"date"`
	NextReset   time.Time     `json:"nextReset"`
	Clubs       []string      `json:"clubs"`
	MaxAttempts int           `json:"maxAttempts"`
	Game        GameStateView `json:"game"`
	Answer      string        `json:"answer,omitempty"`
}

func handleDailyPlayer(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := deps.now()

		dp, err := deps.dailyPlayer(now)
		if err != nil {
			deps.Logger.Error("Failed to resolve daily player", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		player, ok := deps.Players.Get(dp.ID)
		if !ok {
			deps.Logger.Error("Daily player missing from roster", "id", dp.ID)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := DailyPlayerResponse{
			Date:        dp.Date,
			NextReset:   daily.NextReset(now),
			Clubs:       player.Clubs,
			MaxAttempts: deps.Config.MaxPlayerAttempts,
			Game:        gameStateView(nil),
		}

		if username := usernameFromRequest(r); username != "" {
			state, err := deps.Backend.GetPlayerGame(username, dp.Date)
			if err != nil {
				deps.Logger.Error("Failed to load player game", "error", err, "username", username)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			resp.Game = gameStateView(state)
			if state != nil && state.Finished {
				resp.Answer = dp.Name
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
