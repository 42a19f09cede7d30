package usecase_test

import (
	"context"
	"testing"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)

	partnerID := uuid.New()
	user := &entity.User{
		Email:        "owner@example.com",
		PasswordHash: hash,
		Role:         entity.RolePartner,
		PartnerID:    &partnerID,
		IsActive:     true,
	}
	user.ID = uuid.New()
	return user
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockSessionRepo := mocks.NewSessionRepository(t)
	repo := &repository.Repository{User: mockUserRepo, Session: mockSessionRepo}

	config := testConfig()
	config.Session.ExpiryHours = 24
	service := usecase.NewAuthService(repo, config, zap.NewNop())

	ctx := context.Background()
	user := testUser(t, "correct-horse-battery")

	mockUserRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)
	mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-horse-battery",
	}, "test-agent", "127.0.0.1")

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, user.ID.String(), resp.UserID)
		assert.Equal(t, "partner", resp.Role)
		assert.NotEmpty(t, resp.Token)
		if assert.NotNil(t, resp.PartnerID) {
			assert.Equal(t, user.PartnerID.String(), *resp.PartnerID)
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	repo := &repository.Repository{User: mockUserRepo}
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())

	ctx := context.Background()
	user := testUser(t, "correct-horse-battery")

	mockUserRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password-here",
	}, "test-agent", "127.0.0.1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestLogin_UnknownEmailSameAnswer(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	repo := &repository.Repository{User: mockUserRepo}
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())

	ctx := context.Background()
	mockUserRepo.On("FindByEmail", ctx, "ghost@example.com").Return((*entity.User)(nil), nil)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-password",
	}, "test-agent", "127.0.0.1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestCreateUser_PartnerRoleNeedsPartner(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	repo := &repository.Repository{User: mockUserRepo}
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())

	ctx := context.Background()
	mockUserRepo.On("FindByEmail", ctx, "new@example.com").Return((*entity.User)(nil), nil)

	_, err := service.CreateUser(ctx, utils.SystemActor, &request.CreateUserRequest{
		Email:    "new@example.com",
		Password: "long-enough-pass",
		Role:     "partner",
	})

	svcErr, ok := usecase.AsServiceError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "VALIDATION_FAILED", svcErr.Code)
	}
}
