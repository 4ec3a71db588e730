// Package services contains the application services behind the CLI: local
// account management with sign-up confirmation, session persistence, and the
// assignment collection workflow.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Hari20032005/assignment-nudge/internal/common"
	"github.com/Hari20032005/assignment-nudge/internal/cryptox"
	"github.com/Hari20032005/assignment-nudge/internal/dbx"
	"github.com/Hari20032005/assignment-nudge/internal/logging"
	"github.com/Hari20032005/assignment-nudge/internal/models"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/metadata"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/users"
)

const (
	saltSize = 16

	metaSessionToken  = "session_token"
	metaInstallSecret = "install_secret"
)

// AuthService manages local accounts: registration with email confirmation,
// login with a persisted session, and password reset. All state lives in the
// local database; the "email" delivery goes through a CodeSender.
type AuthService struct {
	db     *sql.DB
	codes  *CodeStore
	sender CodeSender
	log    logging.Logger

	sessionTTL time.Duration
	now        func() time.Time // replaced in tests
}

func NewAuthService(db *sql.DB, codes *CodeStore, sender CodeSender, log logging.Logger, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		db:         db,
		codes:      codes,
		sender:     sender,
		log:        log,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (a *AuthService) getUserRepo() users.Repository {
	return users.NewSQLiteRepository(a.db)
}

func (a *AuthService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// Register creates an unconfirmed account and sends a confirmation code.
// The password slice is consumed: it is wiped before Register returns.
func (a *AuthService) Register(ctx context.Context, email, name string, password []byte) error {
	defer common.WipeByteArray(password)

	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	// The code store is keyed by email, so the key must match the form the
	// row is stored under.
	u := &models.User{
		ID:       uuid.NewString(),
		Email:    users.NormalizeEmail(email),
		Name:     name,
		Salt:     salt,
		Verifier: cryptox.MakeVerifier(key),
	}

	if err := a.getUserRepo().Create(ctx, u); err != nil {
		return err
	}

	return a.sendCode(ctx, u.Email)
}

// ConfirmSignUp checks the code sent at registration and activates the
// account.
func (a *AuthService) ConfirmSignUp(ctx context.Context, email, code string) error {
	u, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !a.codes.Verify(u.Email, code) {
		return common.ErrInvalidCode
	}

	return a.getUserRepo().Confirm(ctx, u.ID)
}

// ResendCode issues a fresh confirmation code for a not-yet-confirmed
// account.
func (a *AuthService) ResendCode(ctx context.Context, email string) error {
	u, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.Confirmed {
		return common.ErrUserExists
	}
	return a.sendCode(ctx, u.Email)
}

// Login verifies the password, persists a session token, and returns the
// account. The password slice is wiped before Login returns.
func (a *AuthService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	u, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.Confirmed {
		return nil, common.ErrUserNotConfirmed
	}

	if !cryptox.VerifyPassword(password, u.Salt, u.Verifier) {
		return nil, common.ErrUnauthorized
	}

	secret, err := a.installSecret(ctx)
	if err != nil {
		return nil, err
	}

	token, err := generateSessionToken(u.ID, secret, a.sessionTTL, a.now())
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	if err := a.getMetadataRepo().Set(ctx, metaSessionToken, []byte(token)); err != nil {
		return nil, err
	}

	return u, nil
}

// Logout drops the persisted session.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.getMetadataRepo().Delete(ctx, metaSessionToken)
}

// CurrentUser restores the session persisted by a previous Login. Returns
// common.ErrNotLoggedIn when no session is stored, common.ErrSessionExpired
// when the stored one has lapsed.
func (a *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	token, err := a.getMetadataRepo().Get(ctx, metaSessionToken)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, common.ErrNotLoggedIn
	}

	secret, err := a.installSecret(ctx)
	if err != nil {
		return nil, err
	}

	userID, err := userIDFromToken(string(token), secret)
	if err != nil {
		// A stale or foreign token is dropped so the next start is clean.
		_ = a.getMetadataRepo().Delete(ctx, metaSessionToken)
		return nil, err
	}

	return a.getUserRepo().GetByID(ctx, userID)
}

// ForgotPassword sends a reset code to a registered account.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return a.sendCode(ctx, u.Email)
}

// ResetPassword verifies the reset code and replaces the account
// credentials. Any persisted session is dropped. The password slice is
// wiped before ResetPassword returns.
func (a *AuthService) ResetPassword(ctx context.Context, email, code string, newPassword []byte) error {
	defer common.WipeByteArray(newPassword)

	u, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !a.codes.Verify(u.Email, code) {
		return common.ErrInvalidCode
	}

	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveKey(newPassword, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	// Credentials swap and session drop land together or not at all.
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).UpdateCredentials(ctx, u.ID, salt, verifier); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Delete(ctx, metaSessionToken)
	})
}

func (a *AuthService) sendCode(ctx context.Context, email string) error {
	code, err := a.codes.Issue(email)
	if err != nil {
		return fmt.Errorf("failed to issue confirmation code: %w", err)
	}
	return a.sender.Send(ctx, email, code)
}

// installSecret returns the per-install token-signing secret, creating it on
// first use.
func (a *AuthService) installSecret(ctx context.Context) ([]byte, error) {
	secret, err := a.getMetadataRepo().Get(ctx, metaInstallSecret)
	if err != nil {
		return nil, err
	}
	if secret != nil {
		return secret, nil
	}

	secret = common.GenerateRandByteArray(32)
	if err := a.getMetadataRepo().Set(ctx, metaInstallSecret, secret); err != nil {
		return nil, err
	}
	return secret, nil
}
