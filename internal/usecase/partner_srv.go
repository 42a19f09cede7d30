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

type PartnerService interface {
	GetActivePartners(ctx context.Context) ([]response.PartnerResponse, error)
	GetPartnerBySlug(ctx context.Context, slug string) (*response.PartnerResponse, error)
	CreatePartner(ctx context.Context, actor utils.Actor, req *request.CreatePartnerRequest) (*response.PartnerResponse, error)
	UpdatePartner(ctx context.Context, actor utils.Actor, partnerID string, req *request.UpdatePartnerRequest) (*response.PartnerResponse, error)
}

type partnerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPartnerService(
	repo *repository.Repository,
	log *zap.Logger,
) PartnerService {
	return &partnerService{
		repo: repo,
		log:  log.With(zap.String("service", "partner")),
	}
}

func (s *partnerService) GetActivePartners(ctx context.Context) ([]response.PartnerResponse, error) {
	partners, err := s.repo.Partner.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active partners", zap.Error(err))
		return nil, fmt.Errorf("list partners: %w", err)
	}

	out := make([]response.PartnerResponse, len(partners))
	for i, partner := range partners {
		out[i] = response.PartnerToResponse(partner)
	}
	return out, nil
}

func (s *partnerService) GetPartnerBySlug(ctx context.Context, slug string) (*response.PartnerResponse, error) {
	partner, err := s.repo.Partner.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find partner by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}

	resp := response.PartnerToResponse(partner)
	return &resp, nil
}

func (s *partnerService) CreatePartner(ctx context.Context, actor utils.Actor, req *request.CreatePartnerRequest) (*response.PartnerResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Partner.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if existing != nil {
		return nil, &Error{Code: "SLUG_TAKEN", Message: "a partner with this slug already exists"}
	}

	partner := &entity.Partner{
		Name:            req.Name,
		Slug:            req.Slug,
		Price1PaxCents:  req.Price1PaxCents,
		Price2PlusCents: req.Price2PlusCents,
		FeePercent:      req.FeePercent,
		IsActive:        true,
	}
	if err := s.repo.Partner.Create(ctx, partner); err != nil {
		s.log.Error("Failed to create partner", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create partner: %w", err)
	}

	s.log.Info("Partner created",
		zap.String("partner_id", partner.ID.String()),
		zap.String("slug", partner.Slug),
	)

	resp := response.PartnerToResponse(partner)
	return &resp, nil
}

func (s *partnerService) UpdatePartner(ctx context.Context, actor utils.Actor, partnerID string, req *request.UpdatePartnerRequest) (*response.PartnerResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, ValidationError("partnerId: Must be a valid UUID")
	}

	partner, err := s.repo.Partner.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	partner.Name = req.Name
	partner.Slug = req.Slug
	partner.Price1PaxCents = req.Price1PaxCents
	partner.Price2PlusCents = req.Price2PlusCents
	partner.FeePercent = req.FeePercent
	partner.IsActive = req.IsActive

	if err := s.repo.Partner.Update(ctx, partner); err != nil {
		s.log.Error("Failed to update partner", zap.Error(err), zap.String("partner_id", partnerID))
		return nil, fmt.Errorf("update partner: %w", err)
	}

	resp := response.PartnerToResponse(partner)
	return &resp, nil
}
