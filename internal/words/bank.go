// Package words holds the categorized word lists used by the drawing game
// and the per-word point values. The bank is read-only after construction
// and safe to share across rooms.
package words

import (
	"math/rand"
)

// Points per difficulty tier. A word not found in any list scores the easy
// value.
const (
	EasyPoints   = 10
	MediumPoints = 15
	HardPoints   = 25
)

// Mixed-pool slice sizes. The pool offered to a drawer is the first 20 easy,
// first 15 medium and first 5 hard words, shuffled. The composition is an
// inherited gameplay-balance constant; do not resample proportionally.
const (
	mixedEasy   = 20
	mixedMedium = 15
	mixedHard   = 5
)

var easyWords = []string{
	"cat", "dog", "sun", "house", "tree", "car", "fish", "star", "ball",
	"book", "chair", "apple", "moon", "door", "shoe", "clock", "bird",
	"cake", "boat", "hat", "duck", "frog", "kite", "sock", "bed",
	"cup", "key", "egg", "ant", "bee",
}

var mediumWords = []string{
	"elephant", "guitar", "rainbow", "campfire", "tornado", "lighthouse",
	"penguin", "volcano", "sandwich", "umbrella", "telescope", "waterfall",
	"helicopter", "scarecrow", "snowman", "pirate", "dinosaur", "octopus",
	"hot dog", "roller coaster",
}

var hardWords = []string{
	"procrastination", "photosynthesis", "claustrophobia", "silhouette",
	"kaleidoscope", "metamorphosis", "onomatopoeia", "constellation",
	"archaeologist", "hallucination",
}

// Bank produces word choices for drawers and looks up point values.
type Bank struct {
	easy   []string
	medium []string
	hard   []string
	points map[string]int
}

func NewBank() *Bank {
	b := &Bank{
		easy:   easyWords,
		medium: mediumWords,
		hard:   hardWords,
		points: make(map[string]int, len(easyWords)+len(mediumWords)+len(hardWords)),
	}
	for _, w := range b.easy {
		b.points[w] = EasyPoints
	}
	for _, w := range b.medium {
		b.points[w] = MediumPoints
	}
	for _, w := range b.hard {
		b.points[w] = HardPoints
	}
	return b
}

// PickMixed returns n words drawn from the mixed-difficulty pool.
func (b *Bank) PickMixed(n int) []string {
	pool := make([]string, 0, mixedEasy+mixedMedium+mixedHard)
	pool = append(pool, head(b.easy, mixedEasy)...)
	pool = append(pool, head(b.medium, mixedMedium)...)
	pool = append(pool, head(b.hard, mixedHard)...)

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Points returns the score value of a word by its difficulty tier.
func (b *Bank) Points(word string) int {
	if p, ok := b.points[word]; ok {
		return p
	}
	return EasyPoints
}

func head(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}
