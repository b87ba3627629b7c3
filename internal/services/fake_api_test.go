package services_test

import (
	"context"
	"sync"

	"lottery-miniapp-client/internal/models"
)

// fakeAPI answers with the configured function and counts calls per path.
type fakeAPI struct {
	mu     sync.Mutex
	calls  map[string]int
	tokens []string

	login     func(models.LoginRequest) (*models.AuthResponse, error)
	register  func(*models.RegisterRequest) (*models.AuthResponse, error)
	buyTicket func(models.TicketRequest) (*models.BalanceResponse, error)
	draw      func() (*models.DrawResponse, error)
	recharge  func(models.RechargeRequest) (*models.BalanceResponse, error)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) record(name, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	f.tokens = append(f.tokens, token)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) lastToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tokens) == 0 {
		return ""
	}
	return f.tokens[len(f.tokens)-1]
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("login", "")
	return f.login(req)
}

func (f *fakeAPI) Register(_ context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("register", "")
	return f.register(req)
}

func (f *fakeAPI) BuyTicket(_ context.Context, token string, req models.TicketRequest) (*models.BalanceResponse, error) {
	f.record("buy", token)
	return f.buyTicket(req)
}

func (f *fakeAPI) Draw(_ context.Context, token string) (*models.DrawResponse, error) {
	f.record("draw", token)
	return f.draw()
}

func (f *fakeAPI) Recharge(_ context.Context, token string, req models.RechargeRequest) (*models.BalanceResponse, error) {
	f.record("recharge", token)
	return f.recharge(req)
}
