// Package user contains account management and credential checks.
package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

const bcryptCost = 10

// Signup is the payload accepted when registering an account.
type Signup struct {
	Email    string
	Username string
	Password string
}

type Service struct {
	Repo repository.UserRepository
}

// List returns every registered account.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// GetByEmail looks an account up by its address. The address is
// normalised and shape-checked before the lookup.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, entity.ErrUserLookup
	}
	return u, nil
}

// Create registers a new account. Email and username uniqueness are
// checked in parallel before the insert; the insert itself still runs
// under the table constraints, so a race loses with a constraint error
// rather than a duplicate row.
func (s *Service) Create(ctx context.Context, in Signup) (*entity.User, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, entity.ErrInvalidUserData
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	var byEmail, byUsername *entity.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byEmail, err = s.Repo.GetByEmail(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		byUsername, err = s.Repo.GetByUsername(gctx, in.Username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case byEmail != nil && byUsername != nil:
		return nil, entity.ErrUserExists
	case byEmail != nil:
		return nil, entity.ErrEmailExists
	case byUsername != nil:
		return nil, entity.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.Repo.Insert(ctx, &entity.User{
		Email:    email,
		Username: in.Username,
		Password: string(hash),
	})
}

// Authenticate verifies a password against the stored hash and returns
// the matching account.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, entity.ErrWrongPassword
	}
	return u, nil
}
