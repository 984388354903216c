package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardTypeCatalog(t *testing.T) {
	s := SiteSettings{CardTypes: `[{"value":"gold","label":"Gold","unlock_cost":50},{"value":"retro","label":"Retro","unlockable":false}]`}

	catalog := s.CardTypeCatalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "gold", catalog[0].Value)
	assert.Equal(t, 50, catalog[0].UnlockCost)
	assert.True(t, catalog[0].IsUnlockable(), "unlockable defaults to true")
	assert.False(t, catalog[1].IsUnlockable())
}

func TestCardTypeCatalogMalformedJSON(t *testing.T) {
	s := SiteSettings{CardTypes: `{not json`}
	assert.Empty(t, s.CardTypeCatalog(), "malformed catalog reads as empty")
}

func TestFindCardType(t *testing.T) {
	s := SiteSettings{CardTypes: `[{"value":"gold","label":"Gold"}]`}

	ct, ok := s.FindCardType("gold")
	require.True(t, ok)
	assert.Equal(t, "Gold", ct.Label)

	_, ok = s.FindCardType("platinum")
	assert.False(t, ok)
}

func TestBonusForStreakExactThresholdsOnly(t *testing.T) {
	s := SiteSettings{StreakBonus3: 15, StreakBonus5: 25, StreakBonus10: 50}

	assert.Equal(t, 15, s.BonusForStreak(3))
	assert.Equal(t, 25, s.BonusForStreak(5))
	assert.Equal(t, 50, s.BonusForStreak(10))

	for _, streak := range []int{0, 1, 2, 4, 6, 9, 11, 20} {
		assert.Zero(t, s.BonusForStreak(streak), "streak of %d pays nothing", streak)
	}
}
