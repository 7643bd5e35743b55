package impl

import (
	"context"
	"testing"
	"time"

	"diary/config"
	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/domain/service"
	mockRepo "diary/internal/mocks/repository"
	mockSvc "diary/internal/mocks/service"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newTestConfig(maxActiveSessions, trialDays int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Billing: &config.BillingConfig{
			TrialDays: trialDays,
		},
	}
}

func createTestUserService(t *testing.T, cfg *config.Config) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	userUsecase := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          userUsecase,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 14))

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Email == input.Email && user.Name == input.Name
				})).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.Provider == entity.ProviderTypeEmail &&
						auth.ProviderUserID == input.Email &&
						auth.PasswordHash == "hashed_password"
				})).
				Return(nil)

			mockSubRepo.EXPECT().
				Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
					return record.Status == entity.SubscriptionStatusTrial &&
						record.StartDate != nil &&
						record.EndDate != nil
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestUserService_Register_NoTrialConfigured(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			// No SubscriptionRepo expectation: a zero trial period must not
			// touch the subscription record.
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 14))

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 14))

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password must be at least 8 characters long"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	// No session limit configured: the token is stored without a transaction.
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-token-hash"
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	}

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(2, 0))

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				CountActiveSessionsByUserID(ctx, userID).
				Return(2, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	userID := uuid.New()
	oldToken := "old-refresh-token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(oldToken).
		Return(&service.TokenClaims{UserID: userID}, nil)

	fx.tokenService.EXPECT().HashToken(oldToken).Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(&entity.RefreshToken{
					ID:        uuid.New(),
					UserID:    userID,
					TokenHash: "old-hash",
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID).
				Return("new-access-token", "new-refresh-token", nil)

			mockRefreshRepo.EXPECT().
				DeleteRefreshTokenByHash(ctx, "old-hash").
				Return(nil)

			fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")
			fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
					return token.UserID == userID && token.TokenHash == "new-hash"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, oldToken)

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token signature invalid"))

	output, err := fx.service.Refresh(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_TokenNotStored(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	userID := uuid.New()
	oldToken := "revoked-refresh-token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(oldToken).
		Return(&service.TokenClaims{UserID: userID}, nil)

	fx.tokenService.EXPECT().HashToken(oldToken).Return("revoked-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "revoked-hash").
				Return(nil, repository.ErrRefreshTokenNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired"))

	output, err := fx.service.Refresh(ctx, oldToken)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_TokenBelongsToAnotherUser(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	oldToken := "stolen-refresh-token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(oldToken).
		Return(&service.TokenClaims{UserID: uuid.New()}, nil)

	fx.tokenService.EXPECT().HashToken(oldToken).Return("stolen-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "stolen-hash").
				Return(&entity.RefreshToken{
					ID:     uuid.New(),
					UserID: uuid.New(),
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not belong to user"))

	output, err := fx.service.Refresh(ctx, oldToken)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.TokenClaims{UserID: uuid.New()}, nil)

	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-token-hash").
		Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("expired-token").
		Return(nil, errors.New("token expired"))

	fx.tokenService.EXPECT().HashToken("expired-token").Return("expired-hash")

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "expired-hash").
		Return(nil)

	err := fx.service.Logout(ctx, "expired-token")
	require.NoError(t, err)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockEntryRepo := mockRepo.NewMockEntryRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().EntryRepo().Return(mockEntryRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID}, nil)

			mockEntryRepo.EXPECT().DeleteEntriesByUser(ctx, userID).Return(nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			mockAuthRepo.EXPECT().DeleteAuthenticationsByUser(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_DeleteAccount_UserNotFound(t *testing.T) {
	fx := createTestUserService(t, newTestConfig(0, 0))

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "account not found"))

	err := fx.service.DeleteAccount(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
