package ui_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-miniapp-client/internal/testutil"
	"lottery-miniapp-client/internal/ui"
)

func TestDrawAnimationRollsUntilStopped(t *testing.T) {
	surface := testutil.NewRecordingSurface()
	anim := ui.NewDrawAnimation(surface, 7, 5*time.Millisecond)

	anim.Start()
	anim.Start()
	assert.True(t, anim.Running())

	balls := surface.Balls()
	assert.True(t, balls.Rolling)
	require.Len(t, balls.Values, 7)
	for _, v := range balls.Values {
		assert.True(t, v >= 1 && v <= 36, "value %d out of range", v)
	}

	assert.Eventually(t, func() bool {
		return len(surface.Calls("SetBalls")) >= 3
	}, time.Second, 5*time.Millisecond)

	anim.Stop()
	assert.False(t, anim.Running())
	assert.False(t, surface.Balls().Rolling)

	settled := len(surface.Calls("SetBalls"))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, len(surface.Calls("SetBalls")), "no refresh after stop")

	anim.Stop()
}

func TestClockTick(t *testing.T) {
	surface := testutil.NewRecordingSurface()
	clock := ui.NewClock(surface)

	require.NoError(t, clock.Start())
	<-clock.Stop().Done()

	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}$`), surface.DateTime())
}
