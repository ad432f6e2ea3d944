// Package match implements the name normalization and free-text answer
// matching shared by both games. All comparisons in the service go
// through Normalize so that "México", "MEXICO" and "mexico" are the same
// word.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the input, decomposes accented characters and
// strips the combining marks, then trims surrounding whitespace.
// ñ and ç are mapped explicitly because NFD decomposition alone does not
// reduce them to plain ASCII.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'ñ':
			r = 'n'
		case 'ç':
			r = 'c'
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// tokens splits a normalized string into its non-empty words.
func tokens(s string) []string {
	return strings.Fields(s)
}

// containsEitherWay reports whether one string contains the other.
func containsEitherWay(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// IsCorrectPlayerAnswer decides whether a free-text guess identifies the
// secret player.
//
// Accepted:
//   - the exact full name, always;
//   - the exact surname, only when the surname is unique in the roster;
//   - a multi-word guess in which some token matches the surname and
//     every token matches some token of the full name (substring in
//     either direction), so partial and compound names pass as long as
//     each guessed word is attributable to the real name.
//
// Any other single-word guess is rejected: a non-unique surname alone is
// never enough, and a first name alone is never enough.
func IsCorrectPlayerAnswer(guess, fullName, surname string, surnameIsUnique bool) bool {
	g := Normalize(guess)
	name := Normalize(fullName)
	sur := Normalize(surname)

	if g == "" {
		return false
	}
	if g == name {
		return true
	}
	if surnameIsUnique && g == sur {
		return true
	}

	guessWords := tokens(g)
	if len(guessWords) <= 1 {
		return false
	}

	surnamePresent := false
	for _, w := range guessWords {
		if containsEitherWay(w, sur) {
			surnamePresent = true
			break
		}
	}
	if !surnamePresent {
		return false
	}

	nameWords := tokens(name)
	for _, w := range guessWords {
		attributed := false
		for _, nw := range nameWords {
			if containsEitherWay(w, nw) {
				attributed = true
				break
			}
		}
		if !attributed {
			return false
		}
	}
	return true
}
