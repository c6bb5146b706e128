package accountsrv

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/skilllens/skilllens/account"
	"github.com/skilllens/skilllens/account/accountauth"
	"github.com/skilllens/skilllens/pkg/kernel"
	"github.com/skilllens/skilllens/pkg/logx"
)

// Service implements account registration and authentication.
type Service struct {
	repo     account.Repository
	tokens   *accountauth.TokenService
	validate *validator.Validate
}

func NewService(repo account.Repository, tokens *accountauth.TokenService) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// Register creates an account and returns an access token for it.
func (s *Service) Register(ctx context.Context, req account.RegisterRequest) (*account.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, account.ErrInvalidData().WithDetail("error", err.Error())
	}

	email := kernel.Email(strings.ToLower(strings.TrimSpace(req.Email)))
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, account.ErrRegistry.NewWithCause(account.CodeStorageFailed, err)
	}
	if taken {
		return nil, account.ErrEmailTaken().WithDetail("email", email.String())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, account.ErrRegistry.NewWithCause(account.CodeStorageFailed, err)
	}

	now := time.Now()
	user := &account.User{
		ID:           kernel.NewUserID(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, account.ErrRegistry.NewWithCause(account.CodeStorageFailed, err).
			WithDetail("email", email.String())
	}

	logx.Infof("Registered account %s", user.ID)
	return s.authResponse(user)
}

// Login verifies credentials and returns an access token.
func (s *Service) Login(ctx context.Context, req account.LoginRequest) (*account.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, account.ErrInvalidData().WithDetail("error", err.Error())
	}

	email := kernel.Email(strings.ToLower(strings.TrimSpace(req.Email)))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Indistinguishable from a wrong password on purpose.
		return nil, account.ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials()
	}

	return s.authResponse(user)
}

// GetUser returns the public view of an account.
func (s *Service) GetUser(ctx context.Context, id kernel.UserID) (*account.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, account.ErrUserNotFound().WithDetail("user_id", id.String())
	}
	resp := account.ToUserResponse(user)
	return &resp, nil
}

func (s *Service) authResponse(user *account.User) (*account.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &account.AuthResponse{
		Token: token,
		User:  account.ToUserResponse(user),
	}, nil
}
