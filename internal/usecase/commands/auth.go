package commands

import (
	"context"
	"time"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/infra/session"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/jwt"
	"lendhub/internal/pkg/password"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

// Credentials is the password-hash-bearing read used only by login.
type Credentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}

type AuthReadStore interface {
	CredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
}

type SessionStore interface {
	Save(ctx context.Context, token string, rec session.Record) error
	Load(ctx context.Context, token string) (*session.Record, error)
	Delete(ctx context.Context, token string) error
}

// Identity is the verified identity the rest of the system trusts: the
// lifecycle engine consumes only the email string.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (string, *queries.UserProfileView, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*Identity, error)
}

type authCommandsImpl struct {
	authReads   AuthReadStore
	userQueries queries.UserQueries
	sessions    SessionStore
	jwtService  *jwt.Service
}

func NewAuthCommands(
	authReads AuthReadStore,
	userQueries queries.UserQueries,
	sessions SessionStore,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		authReads:   authReads,
		userQueries: userQueries,
		sessions:    sessions,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.UserProfileView, error) {
	creds, err := a.authReads.CredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	token, err := a.jwtService.GenerateToken(creds.ID, creds.Email, role)
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	rec := session.Record{
		UserID:    creds.ID,
		Email:     creds.Email,
		Role:      creds.Role,
		CreatedAt: time.Now(),
	}
	if err := a.sessions.Save(ctx, token, rec); err != nil {
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	profile, err := a.userQueries.GetProfile(ctx, creds.Email)
	if err != nil {
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return token, profile, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	return a.sessions.Delete(ctx, token)
}

// ValidateToken checks both the JWT signature and the session record,
// so a logout revokes the token immediately.
func (a *authCommandsImpl) ValidateToken(ctx context.Context, token string) (*Identity, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, err := a.sessions.Load(ctx, token); err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}
