package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"ride-management/internal/domain/user"
	"ride-management/internal/ports"
)

// Register creates a new account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (ports.RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.RegisterResult{}, err
	}

	u, err := user.NewUser(in.Username, in.Email, in.Role, string(hash))
	if err != nil {
		return ports.RegisterResult{}, registrationValidationError(err)
	}

	err = s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		return s.userRepo.CreateUser(txCtx, u)
	})
	if err != nil {
		if !errors.Is(err, ports.ErrEmailTaken) {
			s.logger.Error(ctx, "register_failed", "Failed to register user", err, map[string]any{
				"email": in.Email,
			})
		}
		return ports.RegisterResult{}, err
	}

	s.logger.Info(ctx, "user_registered", "User registered", map[string]any{
		"user_id": u.ID,
		"role":    u.Role.String(),
	})

	return ports.RegisterResult{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role.String(),
	}, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, in ports.LoginInput) (ports.LoginResult, error) {
	var u *user.User
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		u, err = s.userRepo.GetByEmail(txCtx, in.Email)
		return err
	})
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.LoginResult{}, ports.ErrInvalidCredentials
		}
		return ports.LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return ports.LoginResult{}, ports.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.IssueUserToken(u.ID, u.Role)
	if err != nil {
		return ports.LoginResult{}, err
	}

	s.logger.Info(ctx, "user_logged_in", "User logged in", map[string]any{
		"user_id": u.ID,
		"role":    u.Role.String(),
	})

	return ports.LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		UserID:    u.ID,
		Role:      u.Role.String(),
	}, nil
}

// registrationValidationError maps entity constructor errors to per-field
// validation failures.
func registrationValidationError(err error) error {
	switch {
	case errors.Is(err, user.ErrUsernameRequired):
		return ports.NewValidationError("username", err.Error())
	case errors.Is(err, user.ErrInvalidEmail):
		return ports.NewValidationError("email", err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return ports.NewValidationError("role", err.Error())
	default:
		return err
	}
}
