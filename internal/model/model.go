package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&User{},
	&DailyCountry{},
	&DailyPlayer{},
	&GameResult{},
	&PlayerGameResult{},
	&GuessEvent{},
}

// User is one registered participant. Usernames are free-form handles,
// unique after trimming; there is no password, identity is cookie-held.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:64;uniqueIndex"`
}

func (*User) TableName() string {
	return "users"
}

// DailyCountry pins the secret country for one UTC date. Rows are
// created on first access via get-or-create so every instance agrees;
// Forced marks an admin re-roll that overrode the deterministic pick.
type DailyCountry struct {
	gorm.Model
	Date        string `json:"date" gorm:"size:10;uniqueIndex"`
	CountryName string `json:"countryName" gorm:"size:127"`
	CountryCode string `json:"countryCode" gorm:"size:2"`
	Forced      bool   `json:"forced"`
}

func (*DailyCountry) TableName() string {
	return "daily_countries"
}

// DailyPlayer pins the secret football player for one UTC date.
type DailyPlayer struct {
	gorm.Model
	Date       string `json:"date" gorm:"size:10;uniqueIndex"`
	PlayerID   string `json:"playerId" gorm:"size:32"`
	PlayerName string `json:"playerName" gorm:"size:127"`
}

func (*DailyPlayer) TableName() string {
	return "daily_players"
}

// GameResult is one user's finished or in-progress country game for one
// date. Guesses holds the ordered attempt list as JSON.
type GameResult struct {
	gorm.Model
	UserID         uint           `json:"userId" gorm:"index;uniqueIndex:idx_user_daily_country"`
	User           User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:UserID;"`
	DailyCountryID uint           `json:"dailyCountryId" gorm:"index;uniqueIndex:idx_user_daily_country"`
	DailyCountry   DailyCountry   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:DailyCountryID;"`
	Won            bool           `json:"won"`
	Finished       bool           `json:"finished"`
	Attempts       int            `json:"attempts"`
	Guesses        datatypes.JSON `json:"guesses"`
}

func (*GameResult) TableName() string {
	return "game_results"
}

// PlayerGameResult is the football-variant counterpart of GameResult.
type PlayerGameResult struct {
	gorm.Model
	UserID        uint           `json:"userId" gorm:"index;uniqueIndex:idx_user_daily_player"`
	User          User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:UserID;"`
	DailyPlayerID uint           `json:"dailyPlayerId" gorm:"index;uniqueIndex:idx_user_daily_player"`
	DailyPlayer   DailyPlayer    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:DailyPlayerID;"`
	Won           bool           `json:"won"`
	Finished      bool           `json:"finished"`
	Attempts      int            `json:"attempts"`
	Guesses       datatypes.JSON `json:"guesses"`
}

func (*PlayerGameResult) TableName() string {
	return "player_game_results"
}

// GuessEvent is the telemetry row for one processed guess, written by
// the worker from the queue rather than inline with the request.
type GuessEvent struct {
	gorm.Model
	Time       time.Time `json:"time" gorm:"type:timestamptz;index:idx_guess_time"`
	Game       string    `json:"game" gorm:"size:16;index"`
	UserID     string    `json:"userId" gorm:"size:64"`
	Guess      string    `json:"guess" gorm:"size:127"`
	DistanceKm int       `json:"distanceKm"`
	Correct    bool      `json:"correct"`
	Attempt    int       `json:"attempt"`
}

func (*GuessEvent) TableName() string {
	return "guess_events"
}
