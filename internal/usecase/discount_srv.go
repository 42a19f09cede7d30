package usecase

import (
	"context"
	"fmt"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, actor utils.Actor, req *request.CreateDiscountRequest) (*response.DiscountCodeResponse, error)

	// ValidateCode checks a code against a partner and prices the
	// reduction, without reserving anything.
	ValidateCode(ctx context.Context, req *request.ValidateDiscountRequest) (*response.DiscountValidationResponse, error)

	GetPartnerDiscounts(ctx context.Context, actor utils.Actor, partnerID string) ([]response.DiscountCodeResponse, error)
	DeactivateDiscount(ctx context.Context, actor utils.Actor, discountID string) error
}

type discountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDiscountService(
	repo *repository.Repository,
	log *zap.Logger,
) DiscountService {
	return &discountService{
		repo: repo,
		log:  log.With(zap.String("service", "discount")),
	}
}

func (s *discountService) CreateDiscount(ctx context.Context, actor utils.Actor, req *request.CreateDiscountRequest) (*response.DiscountCodeResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}
	if (req.AmountOffCents == nil) == (req.PercentOff == nil) {
		return nil, ValidationError("exactly one of amountOffCents and percentOff must be set")
	}

	var partnerID *uuid.UUID
	switch {
	case actor.PartnerID != nil:
		// Partner users can only mint codes for their own partner.
		if req.PartnerID != nil && *req.PartnerID != actor.PartnerID.String() {
			return nil, ErrForbidden
		}
		partnerID = actor.PartnerID
	case actor.IsAdmin():
		if req.PartnerID != nil {
			id, err := uuid.Parse(*req.PartnerID)
			if err != nil {
				return nil, ValidationError("partnerId: Must be a valid UUID")
			}
			partnerID = &id
		}
	default:
		return nil, ErrForbidden
	}

	existing, err := s.repo.Discount.FindActiveByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("find discount: %w", err)
	}
	if existing != nil {
		return nil, &Error{Code: "CODE_TAKEN", Message: "an active code with this name already exists"}
	}

	code := &entity.DiscountCode{
		Code:           req.Code,
		PartnerID:      partnerID,
		AmountOffCents: req.AmountOffCents,
		PercentOff:     req.PercentOff,
		IsActive:       true,
	}
	if err := s.repo.Discount.Create(ctx, code); err != nil {
		s.log.Error("Failed to create discount", zap.Error(err), zap.String("code", req.Code))
		return nil, fmt.Errorf("create discount: %w", err)
	}

	s.log.Info("Discount created",
		zap.String("discount_id", code.ID.String()),
		zap.String("code", code.Code),
	)

	resp := response.DiscountToResponse(code)
	return &resp, nil
}

func (s *discountService) ValidateCode(ctx context.Context, req *request.ValidateDiscountRequest) (*response.DiscountValidationResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return nil, ValidationError("partnerId: Must be a valid UUID")
	}

	code, err := s.repo.Discount.FindActiveByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("find discount: %w", err)
	}
	if code == nil || (code.PartnerID != nil && *code.PartnerID != partnerID) {
		return &response.DiscountValidationResponse{Valid: false, Code: req.Code}, nil
	}

	_, amountOff := ApplyDiscount(req.TotalCents, code)
	return &response.DiscountValidationResponse{
		Valid:               true,
		Code:                code.Code,
		DiscountAmountCents: amountOff,
	}, nil
}

func (s *discountService) GetPartnerDiscounts(ctx context.Context, actor utils.Actor, partnerID string) ([]response.DiscountCodeResponse, error) {
	scope, err := resolvePartnerScope(actor, partnerID)
	if err != nil {
		return nil, err
	}

	codes, err := s.repo.Discount.FindByPartner(ctx, scope)
	if err != nil {
		s.log.Error("Failed to list discounts", zap.Error(err), zap.String("partner_id", scope.String()))
		return nil, fmt.Errorf("list discounts: %w", err)
	}

	out := make([]response.DiscountCodeResponse, len(codes))
	for i, code := range codes {
		out[i] = response.DiscountToResponse(code)
	}
	return out, nil
}

func (s *discountService) DeactivateDiscount(ctx context.Context, actor utils.Actor, discountID string) error {
	id, err := uuid.Parse(discountID)
	if err != nil {
		return ValidationError("discountId: Must be a valid UUID")
	}

	if actor.PartnerID != nil {
		codes, err := s.repo.Discount.FindByPartner(ctx, *actor.PartnerID)
		if err != nil {
			return fmt.Errorf("list discounts: %w", err)
		}
		owned := false
		for _, code := range codes {
			// Global codes show up in the partner listing but belong to
			// nobody; only partner-owned codes may be deactivated here.
			if code.ID == id && code.PartnerID != nil {
				owned = true
				break
			}
		}
		if !owned {
			return ErrForbidden
		}
	} else if !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := s.repo.Discount.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate discount", zap.Error(err), zap.String("discount_id", discountID))
		return fmt.Errorf("deactivate discount: %w", err)
	}
	return nil
}
