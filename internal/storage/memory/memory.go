// Package memory implements the storage backend in process memory.
// It backs tests and development runs; nothing survives a restart.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/guiate/guiate/pkg/core"
)

type gameKey struct {
	username string
	date     string
}

// Store keeps all game state in maps behind one mutex.
type Store struct {
	mu sync.Mutex

	dailyCountries map[string]core.DailyCountry
	dailyPlayers   map[string]core.DailyPlayer
	countryGames   map[gameKey]core.GameState
	playerGames    map[gameKey]core.GameState
	events         []core.GuessEvent
}

func New() *Store {
	return &Store{
		dailyCountries: make(map[string]core.DailyCountry),
		dailyPlayers:   make(map[string]core.DailyPlayer),
		countryGames:   make(map[gameKey]core.GameState),
		playerGames:    make(map[gameKey]core.GameState),
	}
}

func (s *Store) Init() error  { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) GetDailyCountry(date string) (*core.DailyCountry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dc, ok := s.dailyCountries[date]; ok {
		return &dc, nil
	}
	return nil, nil
}

func (s *Store) PutDailyCountry(dc *core.DailyCountry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyCountries[dc.Date] = *dc
	return nil
}

func (s *Store) GetDailyPlayer(date string) (*core.DailyPlayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dp, ok := s.dailyPlayers[date]; ok {
		return &dp, nil
	}
	return nil, nil
}

func (s *Store) PutDailyPlayer(dp *core.DailyPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyPlayers[dp.Date] = *dp
	return nil
}

func (s *Store) RecentCountryCodes(limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := make([]string, 0, len(s.dailyCountries))
	for date := range s.dailyCountries {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if limit > 0 && len(dates) > limit {
		dates = dates[:limit]
	}
	codes := make([]string, 0, len(dates))
	for _, date := range dates {
		codes = append(codes, s.dailyCountries[date].Code)
	}
	return codes, nil
}

func (s *Store) GetCountryGame(username, date string) (*core.GameState, error) {
	return s.getGame(s.countryGames, username, date)
}

func (s *Store) SaveCountryGame(username, date string, state core.GameState) error {
	return s.saveGame(s.countryGames, username, date, state)
}

func (s *Store) GetPlayerGame(username, date string) (*core.GameState, error) {
	return s.getGame(s.playerGames, username, date)
}

func (s *Store) SavePlayerGame(username, date string, state core.GameState) error {
	return s.saveGame(s.playerGames, username, date, state)
}

func (s *Store) getGame(games map[gameKey]core.GameState, username, date string) (*core.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := games[gameKey{strings.TrimSpace(username), date}]; ok {
		copied := st
		copied.Steps = append([]core.GuessStep(nil), st.Steps...)
		return &copied, nil
	}
	return nil, nil
}

func (s *Store) saveGame(games map[gameKey]core.GameState, username, date string, state core.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.Steps = append([]core.GuessStep(nil), state.Steps...)
	games[gameKey{strings.TrimSpace(username), date}] = state
	return nil
}

func (s *Store) CountryRanking(limit int) ([]core.RankingEntry, error) {
	return s.ranking(s.countryGames, limit)
}

func (s *Store) PlayerRanking(limit int) ([]core.RankingEntry, error) {
	return s.ranking(s.playerGames, limit)
}

func (s *Store) ranking(games map[gameKey]core.GameState, limit int) ([]core.RankingEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	byUser := make(map[string]*core.RankingEntry)
	resultsByUser := make(map[string][]core.DatedResult)
	for key, st := range games {
		entry, ok := byUser[key.username]
		if !ok {
			entry = &core.RankingEntry{UserID: key.username, Username: key.username}
			byUser[key.username] = entry
		}
		entry.GamesPlayed++
		if st.Won {
			entry.GamesWon++
		}
		entry.AvgAttempts += float64(st.Attempts())
		resultsByUser[key.username] = append(resultsByUser[key.username], core.DatedResult{Date: key.date, Won: st.Won})
	}

	entries := make([]core.RankingEntry, 0, len(byUser))
	for user, e := range byUser {
		if e.GamesPlayed > 0 {
			e.AvgAttempts /= float64(e.GamesPlayed)
		}
		e.CurrentStreak, e.BestStreak = core.WinStreaks(resultsByUser[user])
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].GamesWon != entries[j].GamesWon {
			return entries[i].GamesWon > entries[j].GamesWon
		}
		if entries[i].AvgAttempts != entries[j].AvgAttempts {
			return entries[i].AvgAttempts < entries[j].AvgAttempts
		}
		return entries[i].Username < entries[j].Username
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) RecordGuessEvent(e *core.GuessEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *e)
	return nil
}

// Events returns a copy of the recorded telemetry, oldest first.
func (s *Store) Events() []core.GuessEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.GuessEvent(nil), s.events...)
}
