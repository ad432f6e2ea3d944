package server

import (
	"context"
	"errors"
	"time"

	"github.com/guiate/guiate/internal/daily"
	"github.com/guiate/guiate/pkg/core"
)

const dateLayout = "2006-01-02"

var errNoEligiblePlayers = errors.New("no eligible players in roster")

// dailyCountry returns the pinned country for the date, creating it
// with the deterministic selector on first access.
func (d *Deps) dailyCountry(ctx context.Context, t time.Time) (core.DailyCountry, error) {
	date := t.UTC().Format(dateLayout)

	if dc, ok := d.Daily.GetCountry(date); ok {
		return dc, nil
	}

	if dc, err := d.Backend.GetDailyCountry(date); err != nil {
		return core.DailyCountry{}, err
	} else if dc != nil {
		d.Daily.AddCountry(*dc)
		return *dc, nil
	}

	c := daily.CountryFor(t, d.catalog(ctx))
	dc := core.DailyCountry{Date: date, Name: c.Name, Code: c.Code}
	if err := d.Backend.PutDailyCountry(&dc); err != nil {
		return core.DailyCountry{}, err
	}

	// Re-read so concurrent creators converge on the row that won the
	// upsert.
	if stored, err := d.Backend.GetDailyCountry(date); err == nil && stored != nil {
		dc = *stored
	}
	d.Daily.AddCountry(dc)
	return dc, nil
}

// dailyPlayer returns the pinned player for the date, creating it with
// the deterministic selector on first access.
func (d *Deps) dailyPlayer(t time.Time) (core.DailyPlayer, error) {
	date := t.UTC().Format(dateLayout)

	if dp, ok := d.Daily.GetPlayer(date); ok {
		return dp, nil
	}

	if dp, err := d.Backend.GetDailyPlayer(date); err != nil {
		return core.DailyPlayer{}, err
	} else if dp != nil {
		d.Daily.AddPlayer(*dp)
		return *dp, nil
	}

	p, ok := daily.PlayerFor(t, d.Roster)
	if !ok {
		return core.DailyPlayer{}, errNoEligiblePlayers
	}
	dp := core.DailyPlayer{Date: date, ID: p.ID, Name: p.Name}
	if err := d.Backend.PutDailyPlayer(&dp); err != nil {
		return core.DailyPlayer{}, err
	}

	if stored, err := d.Backend.GetDailyPlayer(date); err == nil && stored != nil {
		dp = *stored
	}
	d.Daily.AddPlayer(dp)
	return dp, nil
}

// GuessStepView is a persisted attempt decorated with the share-text
// bucket and color for the client.
type GuessStepView struct {
	Guess      string `json:"guess"`
	DistanceKm int    `json:"distanceKm"`
	Correct    bool   `json:"correct"`
	Bucket     string `json:"bucket"`
	Color      string `json:"color"`
}

// GameStateView is the per-user game block in daily responses.
type GameStateView struct {
	Won      bool            `json:"won"`
	Finished bool            `json:"finished"`
	Attempts int             `json:"attempts"`
	Steps    []GuessStepView `json:"steps"`
}

func gameStateView(state *core.GameState) GameStateView {
	if state == nil {
		return GameStateView{Steps: []GuessStepView{}}
	}
	view := GameStateView{
		Won:      state.Won,
		Finished: state.Finished,
		Attempts: state.Attempts(),
		Steps:    make([]GuessStepView, 0, len(state.Steps)),
	}
	for _, s := range state.Steps {
		view.Steps = append(view.Steps, GuessStepView{
			Guess:      s.Guess,
			DistanceKm: s.DistanceKm,
			Correct:    s.Correct,
			Bucket:     core.DistanceBucket(s.DistanceKm),
			Color:      core.DistanceColor(s.DistanceKm),
		})
	}
	return view
}
