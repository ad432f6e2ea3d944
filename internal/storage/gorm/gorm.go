// Package gorm implements the storage backend on a relational database
// through GORM. It works against both Postgres and SQLite; which one is
// behind the *gorm.DB is the database manager's concern.
package gorm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/guiate/guiate/internal/model"
	"github.com/guiate/guiate/pkg/core"
)

// Store persists game state through a GORM connection.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Init migrates the schema.
func (s *Store) Init() error {
	if err := s.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) GetDailyCountry(date string) (*core.DailyCountry, error) {
	var row model.DailyCountry
	err := s.db.Where("date = ?", date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &core.DailyCountry{
		Date:   row.Date,
		Name:   row.CountryName,
		Code:   row.CountryCode,
		Forced: row.Forced,
	}, nil
}

func (s *Store) PutDailyCountry(dc *core.DailyCountry) error {
	row := model.DailyCountry{
		Date:        dc.Date,
		CountryName: dc.Name,
		CountryCode: dc.Code,
		Forced:      dc.Forced,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"country_name", "country_code", "forced"}),
	}).Create(&row).Error
}

func (s *Store) GetDailyPlayer(date string) (*core.DailyPlayer, error) {
	var row model.DailyPlayer
	err := s.db.Where("date = ?", date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &core.DailyPlayer{Date: row.Date, ID: row.PlayerID, Name: row.PlayerName}, nil
}

func (s *Store) PutDailyPlayer(dp *core.DailyPlayer) error {
	row := model.DailyPlayer{
		Date:       dp.Date,
		PlayerID:   dp.ID,
		PlayerName: dp.Name,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"player_id", "player_name"}),
	}).Create(&row).Error
}

func (s *Store) RecentCountryCodes(limit int) ([]string, error) {
	if limit <= 0 {
		limit = 7
	}
	var codes []string
	err := s.db.Model(&model.DailyCountry{}).
		Order("date DESC").
		Limit(limit).
		Pluck("country_code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// ensureUser returns the row for username, creating it on first sight.
func (s *Store) ensureUser(username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("empty username")
	}
	var user model.User
	err := s.db.Where(model.User{Username: username}).FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetCountryGame(username, date string) (*core.GameState, error) {
	var row model.GameResult
	err := s.db.
		Joins("JOIN users ON users.id = game_results.user_id").
		Joins("JOIN daily_countries ON daily_countries.id = game_results.daily_country_id").
		Where("users.username = ? AND daily_countries.date = ?", username, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stateFromRow(row.Won, row.Finished, row.Guesses)
}

func (s *Store) SaveCountryGame(username, date string, state core.GameState) error {
	user, err := s.ensureUser(username)
	if err != nil {
		return err
	}
	var daily model.DailyCountry
	if err := s.db.Where("date = ?", date).First(&daily).Error; err != nil {
		return fmt.Errorf("no daily country for %s: %w", date, err)
	}

	guesses, err := json.Marshal(state.Steps)
	if err != nil {
		return err
	}
	row := model.GameResult{
		UserID:         user.ID,
		DailyCountryID: daily.ID,
		Won:            state.Won,
		Finished:       state.Finished,
		Attempts:       state.Attempts(),
		Guesses:        guesses,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "daily_country_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"won", "finished", "attempts", "guesses"}),
	}).Create(&row).Error
}

func (s *Store) GetPlayerGame(username, date string) (*core.GameState, error) {
	var row model.PlayerGameResult
	err := s.db.
		Joins("JOIN users ON users.id = player_game_results.user_id").
		Joins("JOIN daily_players ON daily_players.id = player_game_results.daily_player_id").
		Where("users.username = ? AND daily_players.date = ?", username, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stateFromRow(row.Won, row.Finished, row.Guesses)
}

func (s *Store) SavePlayerGame(username, date string, state core.GameState) error {
	user, err := s.ensureUser(username)
	if err != nil {
		return err
	}
	var daily model.DailyPlayer
	if err := s.db.Where("date = ?", date).First(&daily).Error; err != nil {
		return fmt.Errorf("no daily player for %s: %w", date, err)
	}

	guesses, err := json.Marshal(state.Steps)
	if err != nil {
		return err
	}
	row := model.PlayerGameResult{
		UserID:        user.ID,
		DailyPlayerID: daily.ID,
		Won:           state.Won,
		Finished:      state.Finished,
		Attempts:      state.Attempts(),
		Guesses:       guesses,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "daily_player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"won", "finished", "attempts", "guesses"}),
	}).Create(&row).Error
}

func (s *Store) CountryRanking(limit int) ([]core.RankingEntry, error) {
	return s.ranking("game_results", "daily_countries", "daily_country_id", limit)
}

func (s *Store) PlayerRanking(limit int) ([]core.RankingEntry, error) {
	return s.ranking("player_game_results", "daily_players", "daily_player_id", limit)
}

type rankingRow struct {
	UserID      uint
	Username    string
	GamesPlayed int
	GamesWon    int
	AvgAttempts float64
}

func (s *Store) ranking(table, dailyTable, dailyFK string, limit int) ([]core.RankingEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []rankingRow
	err := s.db.Table(table).
		Select("users.id AS user_id, users.username AS username, "+
			"COUNT(*) AS games_played, "+
			"SUM(CASE WHEN won THEN 1 ELSE 0 END) AS games_won, "+
			"AVG(attempts) AS avg_attempts").
		Joins(fmt.Sprintf("JOIN users ON users.id = %s.user_id", table)).
		Group("users.id, users.username").
		Order("games_won DESC, avg_attempts ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	streaks, err := s.streaksByUser(table, dailyTable, dailyFK)
	if err != nil {
		return nil, err
	}

	entries := make([]core.RankingEntry, 0, len(rows))
	for _, r := range rows {
		current, best := core.WinStreaks(streaks[r.Username])
		entries = append(entries, core.RankingEntry{
			UserID:        fmt.Sprintf("%d", r.UserID),
			Username:      r.Username,
			GamesPlayed:   r.GamesPlayed,
			GamesWon:      r.GamesWon,
			AvgAttempts:   r.AvgAttempts,
			CurrentStreak: current,
			BestStreak:    best,
		})
	}
	return entries, nil
}

// streaksByUser lists every (date, won) result per username so streaks
// can be derived over consecutive daily dates.
func (s *Store) streaksByUser(table, dailyTable, dailyFK string) (map[string][]core.DatedResult, error) {
	type resultRow struct {
		Username string
		Date     string
		Won      bool
	}
	var rows []resultRow
	err := s.db.Table(table).
		Select(fmt.Sprintf("users.username AS username, %s.date AS date, %s.won AS won", dailyTable, table)).
		Joins(fmt.Sprintf("JOIN users ON users.id = %s.user_id", table)).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.%s", dailyTable, dailyTable, table, dailyFK)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[string][]core.DatedResult)
	for _, r := range rows {
		byUser[r.Username] = append(byUser[r.Username], core.DatedResult{Date: r.Date, Won: r.Won})
	}
	return byUser, nil
}

func (s *Store) RecordGuessEvent(e *core.GuessEvent) error {
	row := model.GuessEvent{
		Time:       e.Time,
		Game:       string(e.Game),
		UserID:     e.UserID,
		Guess:      e.Guess,
		DistanceKm: e.DistanceKm,
		Correct:    e.Correct,
		Attempt:    e.Attempt,
	}
	return s.db.Create(&row).Error
}

func stateFromRow(won, finished bool, guesses []byte) (*core.GameState, error) {
	state := core.GameState{Won: won, Finished: finished}
	if len(guesses) > 0 {
		if err := json.Unmarshal(guesses, &state.Steps); err != nil {
			return nil, fmt.Errorf("decoding stored guesses: %w", err)
		}
	}
	return &state, nil
}
