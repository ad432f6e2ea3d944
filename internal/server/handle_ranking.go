package server

import (
	"net/http"
	"strconv"

	"github.com/guiate/guiate/pkg/core"
)

func handleCountryRanking(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := deps.Backend.CountryRanking(rankingLimit(r, deps))
		if err != nil {
			deps.Logger.Error("Failed to load ranking", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeRanking(w, entries)
	}
}

func handlePlayerRanking(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := deps.Backend.PlayerRanking(rankingLimit(r, deps))
		if err != nil {
			deps.Logger.Error("Failed to load player ranking", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeRanking(w, entries)
	}
}

func rankingLimit(r *http.Request, deps *Deps) int {
	limit := deps.Config.RankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	return limit
}

func writeRanking(w http.ResponseWriter, entries []core.RankingEntry) {
	if entries == nil {
		entries = []core.RankingEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
