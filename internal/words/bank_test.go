package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickMixed_DrawsFromMixedPool(t *testing.T) {
	bank := NewBank()

	// The mixed pool is exactly the first 20 easy, 15 medium and 5 hard
	// entries; nothing outside those slices may ever be offered.
	pool := make(map[string]bool)
	for _, w := range easyWords[:20] {
		pool[w] = true
	}
	for _, w := range mediumWords[:15] {
		pool[w] = true
	}
	for _, w := range hardWords[:5] {
		pool[w] = true
	}

	for i := 0; i < 50; i++ {
		picked := bank.PickMixed(3)
		require.Len(t, picked, 3)
		for _, w := range picked {
			assert.True(t, pool[w], "word %q is outside the mixed pool", w)
		}
	}
}

func TestPickMixed_NoDuplicates(t *testing.T) {
	bank := NewBank()
	for i := 0; i < 50; i++ {
		picked := bank.PickMixed(3)
		seen := make(map[string]bool, len(picked))
		for _, w := range picked {
			assert.False(t, seen[w], "duplicate word %q in one draw", w)
			seen[w] = true
		}
	}
}

func TestPickMixed_ClampsToPoolSize(t *testing.T) {
	bank := NewBank()
	picked := bank.PickMixed(1000)
	assert.Len(t, picked, 40)
}

func TestPoints_Tiers(t *testing.T) {
	bank := NewBank()

	assert.Equal(t, EasyPoints, bank.Points("cat"))
	assert.Equal(t, MediumPoints, bank.Points("elephant"))
	assert.Equal(t, HardPoints, bank.Points("procrastination"))
	assert.Equal(t, EasyPoints, bank.Points("no-such-word"), "unknown words score the easy value")
}
