package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/crypto"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It stores users through a UserRepository, hashes passwords with a
// PasswordHasher and keeps server-side sessions in a SessionStorage.
type authService struct {
	users      store.UserRepository
	sessions   store.SessionStorage
	transactor store.Transactor

	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       IDGenerator

	// sessionTTL controls how long a newly issued session remains valid.
	sessionTTL time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	users store.UserRepository,
	sessions store.SessionStorage,
	transactor store.Transactor,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids IDGenerator,
	sessionTTL time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		transactor: transactor,
		hasher:     hasher,
		validator:  validator,
		ids:        ids,
		sessionTTL: sessionTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Register validates req, hashes the password and, inside one transaction,
// inserts the user and opens its session. A session saved before a failed
// commit is deleted again. On success any session previously presented by
// the client (see [utils.WithSessionID]) is destroyed.
//
// Returns:
//   - *validators.ValidationError for missing fields or an over-long password.
//   - ErrDuplicateUsername if the username is taken.
//   - A wrapped storage error for anything else.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("signup request is invalid")
		return models.AuthResult{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResult{}, validators.NewValidationError("password must be at most 72 bytes long")
	}
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	var result models.AuthResult
	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := a.users.CreateUser(ctx, req.User(hash))
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return ErrDuplicateUsername
		}
		if err != nil {
			return fmt.Errorf("user creation ended with error: %w", err)
		}

		session, err := a.openSession(ctx, user.ID)
		if err != nil {
			return err
		}

		result = models.AuthResult{Profile: user.Profile(), Session: session}
		return nil
	})
	if err != nil {
		if result.Session.ID != "" {
			a.discardSession(ctx, result.Session.ID)
		}
		if !errors.Is(err, ErrDuplicateUsername) {
			log.Err(err).Str("username", req.Username).Msg("user registration failed")
		}
		return models.AuthResult{}, err
	}

	a.rotateSession(ctx, result.Session.ID)
	log.Info().Int64("user_id", result.Profile.ID).Msg("user registered")

	return result, nil
}

// Login authenticates req and opens a new session.
//
// An unknown username and a wrong password both produce
// ErrInvalidCredentials; for an unknown username the hasher still runs a
// comparison so both paths take the same time.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrValidationFailed) {
			return models.AuthResult{}, validators.NewValidationError(app.MsgLoginRequired)
		}
		return models.AuthResult{}, err
	}

	user, err := a.users.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = a.hasher.Compare("", req.Password)
		log.Debug().Str("username", req.Username).Msg("login for unknown user")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.AuthResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error opening session")
		return models.AuthResult{}, err
	}

	a.rotateSession(ctx, session.ID)

	return models.AuthResult{Profile: user.Profile(), Session: session}, nil
}

// CheckSession resolves sessionID to the profile of its user. A session
// whose user has vanished is destroyed.
func (a *authService) CheckSession(ctx context.Context, sessionID string) (models.Profile, error) {
	session, err := a.ResolveSession(ctx, sessionID)
	if err != nil {
		return models.Profile{}, err
	}

	user, err := a.users.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		logger.FromContext(ctx).Info().Int64("user_id", session.UserID).Msg("destroying session of missing user")
		a.discardSession(ctx, sessionID)
		return models.Profile{}, ErrUnauthenticated
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Profile(), nil
}

func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, ErrUnauthenticated
	}

	session, err := a.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrUnauthenticated
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error reading session")
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	return session, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthenticated
	}

	err := a.sessions.DeleteSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrUnauthenticated
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (a *authService) openSession(ctx context.Context, userID int64) (models.Session, error) {
	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    userID,
		ExpiresAt: a.now().Add(a.sessionTTL),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

// rotateSession destroys the session the client presented with the request,
// unless it is the one just issued.
func (a *authService) rotateSession(ctx context.Context, issuedID string) {
	previousID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok || previousID == issuedID {
		return
	}

	a.discardSession(ctx, previousID)
}

func (a *authService) discardSession(ctx context.Context, sessionID string) {
	err := a.sessions.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Warn().Err(err).Msg("error discarding session")
	}
}
