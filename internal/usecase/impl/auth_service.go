// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies email/password credentials and issues a session token.
//
// Accounts without a password hash are rejected before any hash comparison is
// attempted. Note that this path does not consult IsActive; the active flag
// only gates external sign-in.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.HasPassword() {
		return nil, domainerrors.ErrNoPasswordSet
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrPasswordMismatch
	}

	token, err := srv.tokenService.Issue(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Credentials login succeeded",
		slog.String("accountID", account.ID.String()),
		slog.String("role", account.Role.String()),
	)

	return &usecase.SessionOutput{
		Token:   token,
		Account: account,
	}, nil
}

// GoogleCallback verifies the Google ID token and gates the asserted identity
// against the local account store. Verification alone never grants access:
// the account must already exist, be active, and hold a back-office role.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.SessionOutput, error) {
	identity, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	account, err := srv.accountRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrInactiveAccount
	}

	if !account.Role.CanAccessBackOffice() {
		return nil, domainerrors.ErrAccessDenied
	}

	token, err := srv.tokenService.Issue(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("External sign-in succeeded",
		slog.String("accountID", account.ID.String()),
		slog.String("provider", identity.Provider.String()),
	)

	return &usecase.SessionOutput{
		Token:   token,
		Account: account,
	}, nil
}

// SyncAccount upserts the external-identity profile by email. Existing
// accounts only get their name and avatar refreshed; role and active flag
// stay untouched, so a sync can never escalate or revoke privileges. Missing
// accounts are created as regular active users.
func (srv *authService) SyncAccount(ctx context.Context, input *usecase.SyncAccountInput) (*usecase.SyncAccountOutput, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrMissingEmail
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		if err := srv.accountRepo.UpdateProfile(ctx, account.ID, input.Name, input.AvatarURL); err != nil {
			return nil, errors.Wrap(err, "failed to update account profile")
		}

		account.Name = input.Name
		account.AvatarURL = input.AvatarURL

		return &usecase.SyncAccountOutput{
			Account: account,
			Created: false,
		}, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	newAccount := &entity.Account{
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		Role:      entity.RoleUser,
		IsActive:  true,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		// A concurrent sync may have created the row between the read and the
		// write. Re-read and refresh the profile instead of failing.
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			return srv.syncExisting(ctx, input)
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created by sync", slog.String("accountID", newAccount.ID.String()))

	return &usecase.SyncAccountOutput{
		Account: newAccount,
		Created: true,
	}, nil
}

func (srv *authService) syncExisting(ctx context.Context, input *usecase.SyncAccountInput) (*usecase.SyncAccountOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if err := srv.accountRepo.UpdateProfile(ctx, account.ID, input.Name, input.AvatarURL); err != nil {
		return nil, errors.Wrap(err, "failed to update account profile")
	}

	account.Name = input.Name
	account.AvatarURL = input.AvatarURL

	return &usecase.SyncAccountOutput{
		Account: account,
		Created: false,
	}, nil
}

// ResolveRole looks up the current role of an account by email. Session
// tokens minted before the role was known carry an empty role claim; the
// role gate calls this to fill the gap.
func (srv *authService) ResolveRole(ctx context.Context, email string) (entity.Role, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", domainerrors.ErrAccountNotFound
		}

		return "", errors.Wrap(err, "failed to find account by email")
	}

	return account.Role, nil
}
