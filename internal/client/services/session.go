// Package services contains the application stores of the storefront client:
// session, catalog, cart, admin and orders. Each store owns the state it
// fetches and is the only mutator of that state.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// SessionState is the authentication lifecycle state of the client.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateLoading         SessionState = "loading"
	StateAuthenticated   SessionState = "authenticated"
)

// Keys of the persisted credential in the local metadata store.
const (
	tokenKey = "token"
	emailKey = "email"
)

// SessionService owns the credential and the current user.
//
// Contract:
//   - Login/Register: authenticate against the server, persist the returned
//     token, fetch the profile. On failure the state is unchanged and nothing
//     is persisted.
//   - Logout: clear the persisted and in-memory credential; idempotent; no
//     server call.
//   - Restore: at startup, resume a persisted session by re-fetching the
//     profile; an invalid token self-heals via Logout.
//
// Invariant: CurrentUser is non-nil only while a profile fetch with the
// currently held token has succeeded.
type SessionService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte, fullName string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	State() SessionState
	CurrentUser() *models.User
	Token() string
	IsAuthenticated() bool
}

type sessionService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	state SessionState
	token string
	user  *models.User
}

// NewSessionService constructs a SessionService bound to the given API client
// and local DB.
func NewSessionService(client api.Client, db *sql.DB, log logging.Logger) SessionService {
	return &sessionService{client: client, db: db, log: log, state: StateUnauthenticated}
}

func (s *sessionService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *sessionService) Login(ctx context.Context, email string, password []byte) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return s.establish(ctx, token, email)
}

func (s *sessionService) Register(ctx context.Context, email string, password []byte, fullName string) error {
	token, err := s.client.Register(ctx, email, password, fullName)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return s.establish(ctx, token, email)
}

// establish persists the fresh token, fetches the profile and transitions to
// authenticated. A profile-fetch failure rolls the session back to
// unauthenticated via Logout so the credential invariant holds.
func (s *sessionService) establish(ctx context.Context, token, email string) error {
	if err := s.saveCredential(ctx, token, email); err != nil {
		return fmt.Errorf("credential saving error: %w", err)
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		_ = s.Logout(ctx)
		return fmt.Errorf("profile fetch error: %w", err)
	}

	s.token = token
	s.user = user
	s.state = StateAuthenticated
	s.log.Info(ctx, "signed in", "email", user.Email)
	return nil
}

// saveCredential persists the token and email in a single transaction.
func (s *sessionService) saveCredential(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getMetadataRepo(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, emailKey, []byte(email))
	})
}

func (s *sessionService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getMetadataRepo(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, emailKey)
	})
	if err != nil {
		return fmt.Errorf("credential clearing error: %w", err)
	}

	s.token = ""
	s.user = nil
	s.state = StateUnauthenticated
	return nil
}

func (s *sessionService) Restore(ctx context.Context) error {
	repo := s.getMetadataRepo(s.db)

	saved, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("credential reading error: %w", err)
	}
	if saved == nil {
		s.state = StateUnauthenticated
		return nil
	}

	s.state = StateLoading

	user, err := s.client.Me(ctx, string(saved))
	if err != nil {
		// expired or invalid token: self-heal by logging out
		s.log.Warn(ctx, "stored credential rejected, signing out", "error", err)
		return s.Logout(ctx)
	}

	s.token = string(saved)
	s.user = user
	s.state = StateAuthenticated
	s.log.Info(ctx, "session restored", "email", user.Email)
	return nil
}

func (s *sessionService) State() SessionState { return s.state }

func (s *sessionService) CurrentUser() *models.User { return s.user }

func (s *sessionService) Token() string { return s.token }

func (s *sessionService) IsAuthenticated() bool { return s.state == StateAuthenticated }
