package usecase_test

import (
	"testing"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestTotalCents(t *testing.T) {
	partner := &entity.Partner{
		Price1PaxCents:  4000,
		Price2PlusCents: 1500,
		FeePercent:      30,
	}

	assert.Equal(t, int64(4000), usecase.TotalCents(partner, 1))
	assert.Equal(t, int64(3000), usecase.TotalCents(partner, 2))
	assert.Equal(t, int64(4500), usecase.TotalCents(partner, 3))
}

func TestSplitDeposit(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		feePercent  int
		wantDeposit int64
		wantRest    int64
	}{
		{"even split", 3000, 30, 900, 2100},
		{"rounded up", 3000, 33, 990, 2010},
		{"odd total rounds half away from zero", 1001, 50, 501, 500},
		{"full fee leaves nothing on site", 2500, 100, 2500, 0},
		{"zero total", 0, 30, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposit, rest := usecase.SplitDeposit(tt.total, tt.feePercent)
			assert.Equal(t, tt.wantDeposit, deposit)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.total, deposit+rest)
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	amountOff := int64(500)
	percentOff := 10

	t.Run("fixed amount", func(t *testing.T) {
		discounted, off := usecase.ApplyDiscount(3000, &entity.DiscountCode{AmountOffCents: &amountOff})
		assert.Equal(t, int64(2500), discounted)
		assert.Equal(t, int64(500), off)
	})

	t.Run("percentage", func(t *testing.T) {
		discounted, off := usecase.ApplyDiscount(3000, &entity.DiscountCode{PercentOff: &percentOff})
		assert.Equal(t, int64(2700), discounted)
		assert.Equal(t, int64(300), off)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		big := int64(99999)
		discounted, off := usecase.ApplyDiscount(3000, &entity.DiscountCode{AmountOffCents: &big})
		assert.Equal(t, int64(0), discounted)
		assert.Equal(t, int64(3000), off)
	})

	t.Run("nil code is a no-op", func(t *testing.T) {
		discounted, off := usecase.ApplyDiscount(3000, nil)
		assert.Equal(t, int64(3000), discounted)
		assert.Equal(t, int64(0), off)
	})
}

func TestValidatePartnerPricing(t *testing.T) {
	valid := &entity.Partner{Price1PaxCents: 4000, Price2PlusCents: 1500, FeePercent: 30}
	assert.NoError(t, usecase.ValidatePartnerPricing(valid))

	zeroPrice := &entity.Partner{Price1PaxCents: 0, Price2PlusCents: 1500, FeePercent: 30}
	assert.ErrorIs(t, usecase.ValidatePartnerPricing(zeroPrice), usecase.ErrInvalidPricing)

	zeroFee := &entity.Partner{Price1PaxCents: 4000, Price2PlusCents: 1500, FeePercent: 0}
	assert.ErrorIs(t, usecase.ValidatePartnerPricing(zeroFee), usecase.ErrInvalidPricing)

	overFee := &entity.Partner{Price1PaxCents: 4000, Price2PlusCents: 1500, FeePercent: 101}
	assert.ErrorIs(t, usecase.ValidatePartnerPricing(overFee), usecase.ErrInvalidPricing)
}
