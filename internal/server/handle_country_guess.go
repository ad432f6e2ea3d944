package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/internal/engine"
	"github.com/guiate/guiate/pkg/core"
)

// CountryGuessRequest is the body of POST /api/daily-country/guess.
type CountryGuessRequest struct {
	Username string `json:"username"`
	Guess    string `json:"guess"`
}

// CountryGuessResponse reports the outcome of one country guess.
type CountryGuessResponse struct {
	Correct    bool   `json:"correct"`
	Won        bool   `json:"won"`
	Finished   bool   `json:"finished"`
	DistanceKm int    `json:"distanceKm"`
	Bucket     string `json:"bucket"`
	Color      string `json:"color"`
	Attempts   int    `json:"attempts"`
	Answer     string `json:"answer,omitempty"`
}

func handleCountryGuess(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CountryGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			req.Username = usernameFromRequest(r)
		}
		req.Guess = strings.TrimSpace(req.Guess)
		if req.Username == "" {
			writeError(w, http.StatusBadRequest, "username is required")
			return
		}
		if req.Guess == "" {
			writeError(w, http.StatusBadRequest, "guess is required")
			return
		}

		now := deps.now()
		dc, err := deps.dailyCountry(r.Context(), now)
		if err != nil {
			deps.Logger.Error("Failed to resolve daily country", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		state, err := deps.Backend.GetCountryGame(req.Username, dc.Date)
		if err != nil {
			deps.Logger.Error("Failed to load country game", "error", err, "username", req.Username)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if state == nil {
			state = &core.GameState{}
		}
		if state.Finished {
			writeError(w, http.StatusConflict, "game is already finished for today")
			return
		}

		cat := deps.catalog(r.Context())
		guessed, err := cat.FindByName(req.Guess)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusUnprocessableEntity, "unknown country")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		res := deps.engine(r.Context()).Distance(guessed.Name, dc.Name)

		correct := guessed.Code == dc.Code
		km := res.Km
		if correct {
			km = 0
		}
		// Near misses count as wins on centroid distance only, like the
		// original scale; a shared border is not a win.
		won := correct ||
			(res.Basis == engine.BasisCentroid && res.Km < deps.Config.WinDistanceKm)

		state.Steps = append(state.Steps, core.GuessStep{
			Guess:      guessed.Name,
			DistanceKm: km,
			Correct:    correct,
		})
		state.Won = won
		state.Finished = won

		if err := deps.Backend.SaveCountryGame(req.Username, dc.Date, *state); err != nil {
			deps.Logger.Error("Failed to save country game", "error", err, "username", req.Username)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		deps.Events.Push(core.GuessEvent{
			Time:       time.Now(),
			Game:       core.GameCountry,
			UserID:     req.Username,
			Guess:      guessed.Name,
			DistanceKm: km,
			Correct:    correct,
			Attempt:    state.Attempts(),
		})
		deps.Guesses.Inc()
		setUserCookie(w, req.Username)

		resp := CountryGuessResponse{
			Correct:    correct,
			Won:        won,
			Finished:   state.Finished,
			DistanceKm: km,
			Bucket:     core.DistanceBucket(km),
			Color:      core.DistanceColor(km),
			Attempts:   state.Attempts(),
		}
		if state.Finished {
			resp.Answer = dc.Name
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
