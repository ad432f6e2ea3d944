package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/pkg/core"
)

const (
	adminCookieName = "guiate_admin"
	adminSessionTTL = 12 * time.Hour

	// Re-rolls avoid the answers of the last week.
	recentRerollWindow = 7
)

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminForceCountryRequest is the body of POST /api/admin/daily-country.
// Name pins a specific country; empty picks a random different one.
type AdminForceCountryRequest struct {
	Name string `json:"name"`
}

func handleAdminLogin(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Config.AdminPasswordHash == "" {
			writeError(w, http.StatusServiceUnavailable, "admin access is not configured")
			return
		}

		var req AdminLoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "password is required")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(deps.Config.AdminPasswordHash), []byte(req.Password)); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := newSessionToken()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		now := deps.now()
		deps.Sessions.Purge(now)
		deps.Sessions.Set(token, now.Add(adminSessionTTL))

		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(adminSessionTTL / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func adminAuthMiddleware(deps *Deps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err != nil || cookie.Value == "" || !deps.Sessions.Valid(cookie.Value, deps.now()) {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleAdminForceCountry(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminForceCountryRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		now := deps.now()
		current, err := deps.dailyCountry(r.Context(), now)
		if err != nil {
			deps.Logger.Error("Failed to resolve daily country", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		cat := deps.catalog(r.Context())

		var next core.Country
		if name := strings.TrimSpace(req.Name); name != "" {
			next, err = cat.FindByName(name)
			if errors.Is(err, catalog.ErrNotFound) {
				writeError(w, http.StatusUnprocessableEntity, "unknown country")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		} else {
			exclude := map[string]bool{current.Code: true}
			if recent, err := deps.Backend.RecentCountryCodes(recentRerollWindow); err == nil {
				for _, code := range recent {
					exclude[code] = true
				}
			}
			next, err = randomOtherCountry(cat, exclude)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}

		dc := core.DailyCountry{
			Date:   current.Date,
			Name:   next.Name,
			Code:   next.Code,
			Forced: true,
		}
		if err := deps.Backend.PutDailyCountry(&dc); err != nil {
			deps.Logger.Error("Failed to force daily country", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		deps.Daily.DropCountry(dc.Date)
		deps.Daily.AddCountry(dc)

		deps.Logger.Info("Daily country forced", "date", dc.Date, "code", dc.Code)
		writeJSON(w, http.StatusOK, dc)
	}
}

func randomOtherCountry(cat *catalog.Catalog, exclude map[string]bool) (core.Country, error) {
	var pool []core.Country
	for _, c := range cat.Roster() {
		if !exclude[c.Code] {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return core.Country{}, errors.New("no countries left to re-roll")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return core.Country{}, err
	}
	return pool[n.Int64()], nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
