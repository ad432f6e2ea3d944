package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/guiate/guiate/internal/match"
	"github.com/guiate/guiate/pkg/core"
)

// PlayerGuessRequest is the body of POST /api/daily-player/guess.
type PlayerGuessRequest struct {
	Username string `json:"username"`
	Guess    string `json:"guess"`
}

// PlayerGuessResponse reports the outcome of one player guess.
type PlayerGuessResponse struct {
	Correct      bool   `json:"correct"`
	Won          bool   `json:"won"`
	Finished     bool   `json:"finished"`
	Attempts     int    `json:"attempts"`
	AttemptsLeft int    `json:"attemptsLeft"`
	Answer       string `json:"answer,omitempty"`
}

func handlePlayerGuess(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerGuessRequest
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

		state, err := deps.Backend.GetPlayerGame(req.Username, dp.Date)
		if err != nil {
			deps.Logger.Error("Failed to load player game", "error", err, "username", req.Username)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if state == nil {
			state = &core.GameState{}
		}
		if state.Finished || state.Attempts() >= deps.Config.MaxPlayerAttempts {
			writeError(w, http.StatusConflict, "game is already finished for today")
			return
		}

		correct := match.IsCorrectPlayerAnswer(req.Guess, player.Name, player.Surname, player.SurnameIsUnique)

		state.Steps = append(state.Steps, core.GuessStep{
			Guess:   req.Guess,
			Correct: correct,
		})
		state.Won = correct
		state.Finished = correct || state.Attempts() >= deps.Config.MaxPlayerAttempts

		if err := deps.Backend.SavePlayerGame(req.Username, dp.Date, *state); err != nil {
			deps.Logger.Error("Failed to save player game", "error", err, "username", req.Username)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		deps.Events.Push(core.GuessEvent{
			Time:    time.Now(),
			Game:    core.GamePlayer,
			UserID:  req.Username,
			Guess:   req.Guess,
			Correct: correct,
			Attempt: state.Attempts(),
		})
		deps.Guesses.Inc()
		setUserCookie(w, req.Username)

		resp := PlayerGuessResponse{
			Correct:      correct,
			Won:          correct,
			Finished:     state.Finished,
			Attempts:     state.Attempts(),
			AttemptsLeft: deps.Config.MaxPlayerAttempts - state.Attempts(),
		}
		if state.Finished {
			resp.Answer = dp.Name
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
