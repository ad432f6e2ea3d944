package core

// MinimumClubs is the number of career clubs a player needs before it can
// appear as a daily answer. Fewer clubs make the clues too thin to guess
// from.
const MinimumClubs = 3

// Player is one entry of the football roster. Surname is derived from
// Name at load time; SurnameIsUnique is a roster-wide property computed
// in a single pass over the whole dataset, not a per-player fact.
type Player struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	SurnameIsUnique bool     `json:"surnameIsUnique"`
	Clubs           []string `json:"clubs"`
}

// Eligible reports whether the player may be selected as a daily answer.
func (p Player) Eligible() bool {
	return len(p.Clubs) >= MinimumClubs
}
