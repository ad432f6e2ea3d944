package server

import (
	"net/http"
	"time"

	"github.com/guiate/guiate/internal/daily"
)

// DailyCountryResponse is the body of GET /api/daily-country. The
// answer name is only present once the caller's game is finished.
type DailyCountryResponse struct {
	Date      string        `json:"date"`
	NextReset time.Time     `json:"nextReset"`
	Game      GameStateView `json:"game"`
	Answer    string        `json:"answer,omitempty"`
}

func handleDailyCountry(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := deps.now()

		dc, err := deps.dailyCountry(r.Context(), now)
		if err != nil {
			deps.Logger.Error("Failed to resolve daily country", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := DailyCountryResponse{
			Date:      dc.Date,
			NextReset: daily.NextReset(now),
			Game:      gameStateView(nil),
		}

		if username := usernameFromRequest(r); username != "" {
			state, err := deps.Backend.GetCountryGame(username, dc.Date)
			if err != nil {
				deps.Logger.Error("Failed to load country game", "error", err, "username", username)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			resp.Game = gameStateView(state)
			if state != nil && state.Finished {
				resp.Answer = dc.Name
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
