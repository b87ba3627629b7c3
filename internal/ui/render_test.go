package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-miniapp-client/internal/models"
	"lottery-miniapp-client/internal/ui"
)

func TestRenderUserMenu(t *testing.T) {
	view := ui.RenderUserMenu(models.User{Username: "alice", Balance: 100.5})
	assert.Equal(t, "Welcome, alice", view.Greeting)
	assert.Equal(t, "¥100.50", view.Balance)
	assert.Equal(t, "Logout", view.LogoutLabel)
}

func TestRenderDrawResult(t *testing.T) {
	view := ui.RenderDrawResult(models.DrawResult{
		WinningNumbers: "5,1,33,2,8,13,21",
		Winners: []models.Winner{
			{Username: "bob", PrizeLevel: "First prize"},
			{Username: "carol", PrizeLevel: "Third prize"},
		},
	})

	assert.Equal(t, []string{"5", "1", "33", "2", "8", "13", "21"}, view.Balls)
	require.Len(t, view.Winners, 2)
	assert.Equal(t, "bob - First prize", view.Winners[0].Label)
	assert.Equal(t, "carol - Third prize", view.Winners[1].Label)
	assert.Empty(t, view.NoWinner)
}

func TestRenderDrawResultNoWinners(t *testing.T) {
	view := ui.RenderDrawResult(models.DrawResult{WinningNumbers: "1,2,3,4,5,6,7", Winners: []models.Winner{}})

	assert.Empty(t, view.Winners)
	assert.Equal(t, "No jackpot winner this round", view.NoWinner)

	html, err := ui.DrawResultHTML(view)
	require.NoError(t, err)
	assert.Contains(t, html, `<p class="no-winner">No jackpot winner this round</p>`)
	assert.NotContains(t, html, "<ul>")
	assert.Equal(t, 7, strings.Count(html, `class="winning-ball"`))
}

func TestFragmentsEscapeServerStrings(t *testing.T) {
	view := ui.RenderDrawResult(models.DrawResult{
		WinningNumbers: "1",
		Winners:        []models.Winner{{Username: "<script>alert(1)</script>", PrizeLevel: "x"}},
	})

	html, err := ui.DrawResultHTML(view)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")

	menu, err := ui.UserMenuHTML(ui.RenderUserMenu(models.User{Username: `"><img src=x>`}))
	require.NoError(t, err)
	assert.NotContains(t, menu, "<img")
}
