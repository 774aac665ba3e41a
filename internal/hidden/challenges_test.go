package hidden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/catalog"
)

func TestChallenges_RewardHiddenIcons(t *testing.T) {
	cat := catalog.New(catalog.NewRandSource(1))
	require.NoError(t, cat.InitializeDefault())

	seen := make(map[string]bool)
	for _, c := range Challenges() {
		icon, ok := cat.GetByID(c.RewardIconID)
		require.True(t, ok, "challenge %s rewards unknown icon %s", c.ID, c.RewardIconID)
		assert.True(t, icon.Hidden, "challenge %s rewards drawable icon %s", c.ID, c.RewardIconID)
		assert.False(t, seen[c.RewardIconID], "icon %s rewarded twice", c.RewardIconID)
		seen[c.RewardIconID] = true

		id, ok := RewardIconID(c.ID)
		require.True(t, ok)
		assert.Equal(t, c.RewardIconID, id)
	}
}
