package usecase

import (
	"context"
	"fmt"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, actor utils.Actor, req *request.CreateUserRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		// Same answer whether the account is missing, disabled or the
		// password is wrong.
		return nil, ErrUnauthorized
	}

	session := &entity.Session{
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken().String(),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	resp := &response.AuthResponse{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		Token:     session.Token,
		ExpiresAt: &session.ExpiresAt,
	}
	if user.PartnerID != nil {
		partnerID := user.PartnerID.String()
		resp.PartnerID = &partnerID
	}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *authService) CreateUser(ctx context.Context, actor utils.Actor, req *request.CreateUserRequest) (*response.AuthResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, &Error{Code: "EMAIL_TAKEN", Message: "a user with this email already exists"}
	}

	var partnerID *uuid.UUID
	if req.PartnerID != nil {
		id, err := uuid.Parse(*req.PartnerID)
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
		partnerID = &id
	}
	if entity.UserRole(req.Role) == entity.RolePartner && partnerID == nil {
		return nil, ValidationError("partnerId: required for partner users")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.UserRole(req.Role),
		PartnerID:    partnerID,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)

	resp := &response.AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
	}
	if partnerID != nil {
		pid := partnerID.String()
		resp.PartnerID = &pid
	}
	return resp, nil
}
