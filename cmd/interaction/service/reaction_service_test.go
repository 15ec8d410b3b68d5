package service

import (
	"testing"

	"ViewTube.com/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestPlanToggle(t *testing.T) {
	cases := []struct {
		name        string
		existing    string
		requested   string
		wantResult  string
		wantLike    int64
		wantDislike int64
	}{
		{"first like creates", "", constants.ReactionLike, ToggleResultCreated, 1, 0},
		{"first dislike creates", "", constants.ReactionDislike, ToggleResultCreated, 0, 1},
		{"repeated like removes", constants.ReactionLike, constants.ReactionLike, ToggleResultRemoved, -1, 0},
		{"repeated dislike removes", constants.ReactionDislike, constants.ReactionDislike, ToggleResultRemoved, 0, -1},
		{"like over dislike switches", constants.ReactionDislike, constants.ReactionLike, ToggleResultSwitched, 1, -1},
		{"dislike over like switches", constants.ReactionLike, constants.ReactionDislike, ToggleResultSwitched, -1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := planToggle(tc.existing, tc.requested)
			assert.Equal(t, tc.wantResult, plan.result)
			assert.Equal(t, tc.wantLike, plan.likeDelta)
			assert.Equal(t, tc.wantDislike, plan.dislikeDelta)
		})
	}
}

// The switch path must never move the counter pair by more than one in
// each direction, so a toggle storm cannot drift the totals.
func TestPlanToggleDeltasBounded(t *testing.T) {
	kinds := []string{"", constants.ReactionLike, constants.ReactionDislike}
	for _, existing := range kinds {
		for _, requested := range []string{constants.ReactionLike, constants.ReactionDislike} {
			plan := planToggle(existing, requested)
			assert.LessOrEqual(t, plan.likeDelta, int64(1))
			assert.GreaterOrEqual(t, plan.likeDelta, int64(-1))
			assert.LessOrEqual(t, plan.dislikeDelta, int64(1))
			assert.GreaterOrEqual(t, plan.dislikeDelta, int64(-1))
			assert.False(t, plan.likeDelta > 0 && plan.dislikeDelta > 0,
				"deltas must not raise both counters")
			assert.False(t, plan.likeDelta < 0 && plan.dislikeDelta < 0,
				"deltas must not lower both counters")
		}
	}
}

func TestValidateReactionKind(t *testing.T) {
	assert.NoError(t, validateReactionKind(constants.ReactionLike))
	assert.NoError(t, validateReactionKind(constants.ReactionDislike))
	assert.Error(t, validateReactionKind(""))
	assert.Error(t, validateReactionKind("love"))
}
