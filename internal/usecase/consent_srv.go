package usecase

import (
	"context"
	"fmt"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/pkg/utils"

	"go.uber.org/zap"
)

type ConsentService interface {
	// RecordConsent appends a consent decision. The log is append-only;
	// a changed mind is a new row, not an update.
	RecordConsent(ctx context.Context, req *request.CreateConsentRequest) (*response.ConsentResponse, error)

	GetConsentLog(ctx context.Context, actor utils.Actor, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ConsentResponse], error)
}

type consentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewConsentService(
	repo *repository.Repository,
	log *zap.Logger,
) ConsentService {
	return &consentService{
		repo: repo,
		log:  log.With(zap.String("service", "consent")),
	}
}

func (s *consentService) RecordConsent(ctx context.Context, req *request.CreateConsentRequest) (*response.ConsentResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	record := &entity.ConsentRecord{
		Email:   req.Email,
		Kind:    req.Kind,
		Granted: *req.Granted,
		Locale:  req.Locale,
	}
	if err := s.repo.Consent.Create(ctx, record); err != nil {
		s.log.Error("Failed to record consent", zap.Error(err), zap.String("kind", req.Kind))
		return nil, fmt.Errorf("record consent: %w", err)
	}

	resp := response.ConsentToResponse(record)
	return &resp, nil
}

func (s *consentService) GetConsentLog(ctx context.Context, actor utils.Actor, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ConsentResponse], error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	records, err := s.repo.Consent.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list consent records", zap.Error(err))
		return nil, fmt.Errorf("list consent records: %w", err)
	}

	total, err := s.repo.Consent.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count consent records: %w", err)
	}

	out := make([]response.ConsentResponse, len(records))
	for i, record := range records {
		out[i] = response.ConsentToResponse(record)
	}
	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}
