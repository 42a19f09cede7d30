package usecase_test

import (
	"context"
	"testing"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestValidateCode_PartnerScoped(t *testing.T) {
	mockDiscountRepo := mocks.NewDiscountRepository(t)
	repo := &repository.Repository{Discount: mockDiscountRepo}
	service := usecase.NewDiscountService(repo, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()

	amountOff := int64(500)
	code := &entity.DiscountCode{
		Code:           "CELLAR5",
		PartnerID:      &ownerID,
		AmountOffCents: &amountOff,
		IsActive:       true,
	}
	code.ID = uuid.New()

	mockDiscountRepo.On("FindActiveByCode", ctx, "CELLAR5").Return(code, nil)

	resp, err := service.ValidateCode(ctx, &request.ValidateDiscountRequest{
		Code:       "CELLAR5",
		PartnerID:  ownerID.String(),
		TotalCents: 3000,
	})
	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.True(t, resp.Valid)
		assert.Equal(t, int64(500), resp.DiscountAmountCents)
	}

	// Same code against another partner is invalid, not an error.
	mockDiscountRepo.On("FindActiveByCode", ctx, "CELLAR5").Return(code, nil)
	resp, err = service.ValidateCode(ctx, &request.ValidateDiscountRequest{
		Code:       "CELLAR5",
		PartnerID:  otherID.String(),
		TotalCents: 3000,
	})
	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.False(t, resp.Valid)
		assert.Zero(t, resp.DiscountAmountCents)
	}
}

func TestValidateCode_GlobalCodeWorksEverywhere(t *testing.T) {
	mockDiscountRepo := mocks.NewDiscountRepository(t)
	repo := &repository.Repository{Discount: mockDiscountRepo}
	service := usecase.NewDiscountService(repo, zap.NewNop())

	ctx := context.Background()
	percentOff := 10
	code := &entity.DiscountCode{
		Code:       "OPENING10",
		PercentOff: &percentOff,
		IsActive:   true,
	}
	code.ID = uuid.New()

	mockDiscountRepo.On("FindActiveByCode", ctx, "OPENING10").Return(code, nil)

	resp, err := service.ValidateCode(ctx, &request.ValidateDiscountRequest{
		Code:       "OPENING10",
		PartnerID:  uuid.NewString(),
		TotalCents: 3000,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.True(t, resp.Valid)
		assert.Equal(t, int64(300), resp.DiscountAmountCents)
	}
}

func TestCreateDiscount_RequiresExactlyOneKind(t *testing.T) {
	service := usecase.NewDiscountService(&repository.Repository{}, zap.NewNop())

	ctx := context.Background()
	actor := partnerActor(uuid.New())

	amountOff := int64(500)
	percentOff := 10

	_, err := service.CreateDiscount(ctx, actor, &request.CreateDiscountRequest{
		Code:           "BOTH",
		AmountOffCents: &amountOff,
		PercentOff:     &percentOff,
	})
	svcErr, ok := usecase.AsServiceError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "VALIDATION_FAILED", svcErr.Code)
	}

	_, err = service.CreateDiscount(ctx, actor, &request.CreateDiscountRequest{Code: "NEITHER"})
	svcErr, ok = usecase.AsServiceError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "VALIDATION_FAILED", svcErr.Code)
	}
}

func TestCreateDiscount_PartnerCannotMintForOthers(t *testing.T) {
	service := usecase.NewDiscountService(&repository.Repository{}, zap.NewNop())

	ctx := context.Background()
	actor := partnerActor(uuid.New())
	otherID := uuid.NewString()
	amountOff := int64(500)

	_, err := service.CreateDiscount(ctx, actor, &request.CreateDiscountRequest{
		Code:           "ALIEN",
		PartnerID:      &otherID,
		AmountOffCents: &amountOff,
	})

	assert.ErrorIs(t, err, usecase.ErrForbidden)
}
