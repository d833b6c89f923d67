package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/metrics"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/session"
)

// Demo account that works without a database
const (
	DemoEmail    = "demo@sonyliv.com"
	DemoPassword = "demo123"
	DemoUserID   = "demo_user"
	DemoUsername = "Demo User"
)

// DemoProfile is the public profile of the demo account.
func DemoProfile() models.UserProfile {
	return models.UserProfile{ID: DemoUserID, Username: DemoUsername, Email: DemoEmail}
}

// UserStore persists accounts
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Exists reports whether the email or the username is taken.
	Exists(ctx context.Context, email, username string) (bool, error)
	Create(ctx context.Context, u *models.User) error
}

// Result is returned by Register and Login
type Result struct {
	Token   string
	User    models.UserProfile
	Session *session.Session
}

// Service implements register, login, profile and logout. users may be nil
// when no database is connected; only the demo account works then.
type Service struct {
	users    UserStore
	tokens   *TokenIssuer
	sessions *session.Manager
}

func NewService(users UserStore, tokens *TokenIssuer, sessions *session.Manager) *Service {
	return &Service{users: users, tokens: tokens, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (*Result, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &apperrors.ErrValidation{Fields: missing}
	}
	if s.users == nil {
		return nil, &apperrors.ErrUnavailable{Dependency: "database"}
	}

	exists, err := s.users.Exists(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists || email == DemoEmail {
		return nil, &apperrors.ErrConflict{Resource: "User", Field: "email or username"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Email: email, PasswordHash: hash, CreatedAt: time.Now().UTC()}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Info().Str("user", user.ID.Hex()).Msg("User registered")
	return s.open(user.Profile())
}

// Login checks credentials. The demo account is accepted before any
// database access.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	logger := config.GetLogger()
	email = strings.ToLower(strings.TrimSpace(email))

	if email == DemoEmail && password == DemoPassword {
		metrics.AuthLoginsTotal.WithLabelValues("demo").Inc()
		return s.open(DemoProfile())
	}
	if s.users == nil {
		metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
		return nil, &apperrors.ErrUnavailable{Dependency: "database"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, &apperrors.ErrNotFound{}) {
			metrics.AuthLoginsTotal.WithLabelValues("invalid").Inc()
			return nil, &apperrors.ErrInvalidCredentials{Email: email}
		}
		logger.Error().Err(err).Msg("Login lookup failed")
		metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		metrics.AuthLoginsTotal.WithLabelValues("invalid").Inc()
		return nil, &apperrors.ErrInvalidCredentials{Email: email}
	}

	metrics.AuthLoginsTotal.WithLabelValues("ok").Inc()
	return s.open(user.Profile())
}

func (s *Service) open(profile models.UserProfile) (*Result, error) {
	token, claims, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return nil, err
	}
	sess := &session.Session{
		ID:        claims.ID,
		Token:     token,
		User:      profile,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if s.sessions != nil {
		if err := s.sessions.Open(sess); err != nil {
			return nil, err
		}
	}
	return &Result{Token: token, User: profile, Session: sess}, nil
}

// Verify checks a bearer token without consulting the session store.
func (s *Service) Verify(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

// Authenticate verifies token and loads its open session.
func (s *Service) Authenticate(token string) (*session.Session, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if s.sessions == nil {
		return nil, apperrors.NewUnauthorizedError("sessions disabled")
	}
	return s.sessions.Load(claims.ID)
}

// Profile returns the public profile for userID.
func (s *Service) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	if userID == DemoUserID {
		return DemoProfile(), nil
	}
	if s.users == nil {
		return models.UserProfile{}, &apperrors.ErrUnavailable{Dependency: "database"}
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	return user.Profile(), nil
}

// Logout closes the session behind token.
func (s *Service) Logout(token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}
	if s.sessions != nil {
		s.sessions.Close(claims.ID)
	}
	return nil
}
