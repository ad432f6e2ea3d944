// Package players loads the football roster bundled with the binary.
// The dataset is a Wikidata-derived list of players with their career
// clubs; surnames and roster-wide surname uniqueness are derived at
// load time, not stored.
package players

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/guiate/guiate/internal/match"
	"github.com/guiate/guiate/pkg/core"
)

//go:embed players.json
var playersJSON []byte

type rawPlayer struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Clubs []string `json:"clubs"`
}

type rawRoster struct {
	Players []rawPlayer `json:"players"`
}

// surnamePrefixes are particles that glue to the following word when
// extracting a surname ("Di María", "Mac Allister").
var surnamePrefixes = map[string]bool{
	"Di": true, "De": true, "Del": true, "Da": true,
	"Van": true, "Von": true, "Mac": true, "Mc": true,
}

// ExtractSurname derives the surname from a full name: the last word,
// or the last two when the second-to-last is a known particle. A
// one-word name is its own surname.
func ExtractSurname(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	last := parts[len(parts)-1]
	if len(parts) > 2 && surnamePrefixes[parts[len(parts)-2]] {
		return parts[len(parts)-2] + " " + last
	}
	return last
}

// Load parses the embedded roster, derives surnames, and computes
// surname uniqueness over the whole roster in one pass. Every entry
// must validate; a bad roster edit fails the load instead of surfacing
// later as a game error.
func Load() ([]core.Player, error) {
	var raw rawRoster
	if err := json.Unmarshal(playersJSON, &raw); err != nil {
		return nil, fmt.Errorf("decoding player roster: %w", err)
	}
	if len(raw.Players) == 0 {
		return nil, fmt.Errorf("player roster is empty")
	}

	roster := make([]core.Player, 0, len(raw.Players))
	for _, rp := range raw.Players {
		p := core.Player{
			ID:      rp.ID,
			Name:    rp.Name,
			Surname: ExtractSurname(rp.Name),
			Clubs:   rp.Clubs,
		}
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("player %q: %w", rp.Name, err)
		}
		roster = append(roster, p)
	}

	markUniqueness(roster)
	return roster, nil
}

// Validate checks that a player carries everything the game needs.
func Validate(p core.Player) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if p.Surname == "" {
		return fmt.Errorf("missing surname")
	}
	if len(p.Clubs) < core.MinimumClubs {
		return fmt.Errorf("has %d clubs, need at least %d", len(p.Clubs), core.MinimumClubs)
	}
	for _, club := range p.Clubs {
		if strings.TrimSpace(club) == "" {
			return fmt.Errorf("empty club name")
		}
	}
	return nil
}

// markUniqueness sets SurnameIsUnique across the roster. Uniqueness is
// a global property of the loaded roster, compared on normalized
// surnames so accents do not split a collision.
func markUniqueness(roster []core.Player) {
	count := make(map[string]int, len(roster))
	for i := range roster {
		count[match.Normalize(roster[i].Surname)]++
	}
	for i := range roster {
		roster[i].SurnameIsUnique = count[match.Normalize(roster[i].Surname)] == 1
	}
}

// FindByID returns the roster entry with the given id.
func FindByID(roster []core.Player, id string) (core.Player, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return core.Player{}, false
}
