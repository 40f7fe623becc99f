package commands

import (
	"context"

	"vetclinic-booking-api/internal/domain/user"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/pkg/clock"
	"vetclinic-booking-api/internal/pkg/errs"
	"vetclinic-booking-api/internal/pkg/jwt"
	"vetclinic-booking-api/internal/pkg/password"
	"vetclinic-booking-api/internal/usecase/queries"
)

var (
	ErrUserAlreadyExists  = errs.New("user already exists")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
}

type authCommandsImpl struct {
	repo       UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(repo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		repo:       repo,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := user.New(params.Name, email, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := a.repo.Create(ctx, u); err != nil {
		// Unique index on email is the authoritative duplicate signal.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(u.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		User: &queries.UserView{
			ID:        u.ID(),
			Name:      u.Name(),
			Email:     u.Email().Value(),
			CreatedAt: u.CreatedAt(),
		},
		Token: token,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, params.Email)
	if err != nil {
		// Missing user and wrong password are indistinguishable on purpose.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{User: view, Token: token}, nil
}
