package server

import (
	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, deps *Deps) {
	r.Get("/healthz", handleHealth(deps))
	r.Get("/statusz", handleStatus(deps))

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries/search", handleCountrySearch(deps))

		r.Get("/daily-country", handleDailyCountry(deps))
		r.Post("/daily-country/guess", handleCountryGuess(deps))

		r.Get("/daily-player", handleDailyPlayer(deps))
		r.Post("/daily-player/guess", handlePlayerGuess(deps))

		r.Get("/ranking", handleCountryRanking(deps))
		r.Get("/ranking/player", handlePlayerRanking(deps))

		r.Post("/admin/login", handleAdminLogin(deps))
		r.With(adminAuthMiddleware(deps)).
			Post("/admin/daily-country", handleAdminForceCountry(deps))
	})
}
