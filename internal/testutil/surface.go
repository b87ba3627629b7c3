package testutil

import (
	"sync"

	"lottery-miniapp-client/internal/ui"
)

// Call is one recorded Surface invocation.
type Call struct {
	Method string
	Arg    interface{}
}

var _ ui.Surface = (*RecordingSurface)(nil)

// RecordingSurface implements ui.Surface in memory.
type RecordingSurface struct {
	mu sync.Mutex

	calls         []Call
	notifications map[string]ui.NotificationView
	order         []string
	loading       ui.LoadingView
	loadingMounts int
	userMenu      *ui.UserMenuView
	authenticated bool
	balance       string
	balls         ui.BallsView
	drawResult    *ui.DrawResultView
	inputs        map[string]ui.NumberInputView
	filled        string
	resets        int
	dateTime      string
	navigations   []string
	reloads       int
}

func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{
		notifications: make(map[string]ui.NotificationView),
		inputs:        make(map[string]ui.NumberInputView),
	}
}

func (s *RecordingSurface) record(method string, arg interface{}) {
	s.calls = append(s.calls, Call{Method: method, Arg: arg})
}

func (s *RecordingSurface) ShowNotification(v ui.NotificationView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ShowNotification", v)
	s.notifications[v.ID] = v
	s.order = append(s.order, v.ID)
}

func (s *RecordingSurface) UpdateNotification(v ui.NotificationView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UpdateNotification", v)
	if _, ok := s.notifications[v.ID]; ok {
		s.notifications[v.ID] = v
	}
}

func (s *RecordingSurface) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("RemoveNotification", id)
	delete(s.notifications, id)
}

func (s *RecordingSurface) MountLoading(v ui.LoadingView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("MountLoading", v)
	s.loadingMounts++
	s.loading = v
}

func (s *RecordingSurface) UpdateLoading(v ui.LoadingView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UpdateLoading", v)
	s.loading = v
}

func (s *RecordingSurface) RenderUserMenu(v ui.UserMenuView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("RenderUserMenu", v)
	s.userMenu = &v
}

func (s *RecordingSurface) SetAudience(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SetAudience", authenticated)
	s.authenticated = authenticated
}

func (s *RecordingSurface) SetBalance(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SetBalance", text)
	s.balance = text
}

func (s *RecordingSurface) SetBalls(v ui.BallsView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SetBalls", v)
	s.balls = v
}

func (s *RecordingSurface) ShowDrawResult(v ui.DrawResultView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ShowDrawResult", v)
	s.drawResult = &v
}

func (s *RecordingSurface) SetNumberInput(v ui.NumberInputView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SetNumberInput", v)
	s.inputs[v.Field] = v
}

func (s *RecordingSurface) FillNumbers(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("FillNumbers", value)
	s.filled = value
}

func (s *RecordingSurface) ResetTicketForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ResetTicketForm", nil)
	s.resets++
}

func (s *RecordingSurface) SetDateTime(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SetDateTime", text)
	s.dateTime = text
}

func (s *RecordingSurface) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Navigate", path)
	s.navigations = append(s.navigations, path)
}

func (s *RecordingSurface) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Reload", nil)
	s.reloads++
}

// Calls returns the recorded calls for method, or all calls when method is
// empty.
func (s *RecordingSurface) Calls(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Call
	for _, c := range s.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// VisibleNotifications returns the notifications currently on screen in
// display order.
func (s *RecordingSurface) VisibleNotifications() []ui.NotificationView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ui.NotificationView
	for _, id := range s.order {
		if v, ok := s.notifications[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

func (s *RecordingSurface) Loading() (ui.LoadingView, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadingMounts
}

func (s *RecordingSurface) UserMenu() *ui.UserMenuView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userMenu
}

func (s *RecordingSurface) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *RecordingSurface) Balance() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

func (s *RecordingSurface) Balls() ui.BallsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balls
}

func (s *RecordingSurface) DrawResult() *ui.DrawResultView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawResult
}

func (s *RecordingSurface) NumberInput(field string) (ui.NumberInputView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.inputs[field]
	return v, ok
}

func (s *RecordingSurface) Filled() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filled
}

func (s *RecordingSurface) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

func (s *RecordingSurface) DateTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dateTime
}

func (s *RecordingSurface) Navigations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.navigations...)
}

func (s *RecordingSurface) Reloads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloads
}
