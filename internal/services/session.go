package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/phuslu/log"

	"lottery-miniapp-client/internal/logger"
	"lottery-miniapp-client/internal/models"
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrSessionCorrupted = errors.New("stored session is corrupted")
	ErrSessionExpired   = errors.New("stored session has expired")
)

// SessionStore owns the auth token and cached profile. Both keys are always
// written and removed together.
type SessionStore struct {
	storage Storage
	log     *log.Logger
	now     func() time.Time
}

func NewSessionStore(storage Storage, l *log.Logger) *SessionStore {
	if l == nil {
		l = logger.Discard()
	}
	return &SessionStore{
		storage: storage,
		log:     l,
		now:     time.Now,
	}
}

// CheckLoginStatus restores the session persisted by an earlier run. A
// corrupted or expired session is cleared and reported as no session.
func (s *SessionStore) CheckLoginStatus(ctx context.Context) (*models.Session, error) {
	session, err := s.Current(ctx)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, ErrNoSession):
		return nil, nil
	case errors.Is(err, ErrSessionCorrupted), errors.Is(err, ErrSessionExpired):
		s.log.Warn().Err(err).Msg("discarding stored session")
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	default:
		return nil, err
	}
}

// Current reads the stored session without repairing it.
func (s *SessionStore) Current(ctx context.Context) (*models.Session, error) {
	token, err := s.storage.Get(ctx, KeyAuthToken)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	info, err := s.storage.Get(ctx, KeyUserInfo)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	if token == "" || info == "" {
		return nil, ErrNoSession
	}

	var user models.User
	if err := json.Unmarshal([]byte(info), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupted, err)
	}

	if s.tokenExpired(token) {
		return nil, ErrSessionExpired
	}

	return &models.Session{Token: token, User: user}, nil
}

func (s *SessionStore) Save(ctx context.Context, session models.Session) error {
	info, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	return s.storage.SetMany(ctx, map[string]string{
		KeyAuthToken: session.Token,
		KeyUserInfo:  string(info),
	})
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx, KeyAuthToken, KeyUserInfo)
}

// UpdateBalance rewrites the cached profile with a new balance, keeping the
// token.
func (s *SessionStore) UpdateBalance(ctx context.Context, balance float64) (*models.User, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	session.User.Balance = balance
	if err := s.Save(ctx, *session); err != nil {
		return nil, err
	}
	return &session.User, nil
}

// tokenExpired reports whether token is a JWT whose exp lies in the past.
// Opaque tokens never expire here; the server decides.
func (s *SessionStore) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
