package game

import (
	"strings"
	"unicode"
)

// MaskWord hides every letter of the secret word behind an underscore.
// Non-letters (spaces, hyphens) pass through so guessers see the word
// shape: "hot dog" -> "___ ___".
func MaskWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
