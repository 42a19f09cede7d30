package usecase

import (
	"math"

	"partner-booking/internal/data/entity"
)

// TotalCents computes the session price for a party. One player pays the
// solo rate; two and above pay the per-player rate times the headcount.
func TotalCents(partner *entity.Partner, players int) int64 {
	if players <= 1 {
		return partner.Price1PaxCents
	}
	return partner.Price2PlusCents * int64(players)
}

// SplitDeposit divides an amount into the upfront deposit and the
// remainder due on site. The deposit is feePercent of the total,
// rounded half away from zero; the rest never goes negative.
func SplitDeposit(totalCents int64, feePercent int) (depositCents, restCents int64) {
	depositCents = int64(math.Round(float64(totalCents) * float64(feePercent) / 100))
	restCents = totalCents - depositCents
	if restCents < 0 {
		restCents = 0
	}
	return depositCents, restCents
}

// ApplyDiscount reduces a total by a discount code's amount or
// percentage. The discounted total is clamped at zero.
func ApplyDiscount(totalCents int64, code *entity.DiscountCode) (discounted, amountOff int64) {
	if code == nil {
		return totalCents, 0
	}
	if code.AmountOffCents != nil && *code.AmountOffCents > 0 {
		amountOff = *code.AmountOffCents
	} else if code.PercentOff != nil && *code.PercentOff > 0 {
		amountOff = int64(math.Round(float64(totalCents) * float64(*code.PercentOff) / 100))
	}
	if amountOff > totalCents {
		amountOff = totalCents
	}
	return totalCents - amountOff, amountOff
}

// ValidatePartnerPricing rejects partner records whose price or fee
// configuration cannot produce a sane quote.
func ValidatePartnerPricing(partner *entity.Partner) error {
	if partner.Price1PaxCents <= 0 || partner.Price2PlusCents <= 0 {
		return ErrInvalidPricing
	}
	if partner.FeePercent <= 0 || partner.FeePercent > 100 {
		return ErrInvalidPricing
	}
	return nil
}
