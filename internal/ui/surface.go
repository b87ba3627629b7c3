// Package ui holds the presentation side of the client: view models, the
// Surface they are rendered to, and the timed widgets (notifications,
// loading overlay, draw animation, clock) that drive it.
package ui

import "lottery-miniapp-client/internal/models"

// Surface is the render sink standing in for the page. Implementations must
// treat every string as text, never as markup.
type Surface interface {
	ShowNotification(v NotificationView)
	UpdateNotification(v NotificationView)
	RemoveNotification(id string)

	MountLoading(v LoadingView)
	UpdateLoading(v LoadingView)

	RenderUserMenu(v UserMenuView)
	SetAudience(authenticated bool)
	SetBalance(text string)

	SetBalls(v BallsView)
	ShowDrawResult(v DrawResultView)

	SetNumberInput(v NumberInputView)
	FillNumbers(value string)
	ResetTicketForm()

	SetDateTime(text string)
	Navigate(path string)
	Reload()
}

type NotificationView struct {
	ID      string                   `json:"id"`
	Message string                   `json:"message"`
	Kind    models.NotificationKind  `json:"kind"`
	Phase   models.NotificationPhase `json:"phase"`
}

type LoadingView struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

type UserMenuView struct {
	Greeting    string `json:"greeting"`
	Balance     string `json:"balance"`
	LogoutLabel string `json:"logout_label"`
}

type BallsView struct {
	Values  []int `json:"values"`
	Rolling bool  `json:"rolling"`
}

type WinnerView struct {
	Username   string `json:"username"`
	PrizeLevel string `json:"prize_level"`
	Label      string `json:"label"`
}

type DrawResultView struct {
	Title       string       `json:"title"`
	Balls       []string     `json:"balls"`
	WinnersHead string       `json:"winners_head,omitempty"`
	Winners     []WinnerView `json:"winners,omitempty"`
	NoWinner    string       `json:"no_winner,omitempty"`
}

type NumberInputView struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Flagged bool   `json:"flagged"`
}
