package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/admin/model"
	"blog-backend/pkg/jwt"
)

// bcrypt cost 12 balances hash strength against login latency.
const bcryptCost = 12

type adminService struct {
	repo       admin.Repository
	jwtManager *jwt.Manager
}

func NewAdminService(repo admin.Repository, jwtManager *jwt.Manager) admin.Service {
	return &adminService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *adminService) Register(ctx context.Context, req admin.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newAdmin := &model.Admin{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Singleton and uniqueness violations surface from the store as
	// ErrAdminExists / ErrCredentialsTaken.
	return s.repo.Create(ctx, newAdmin)
}

func (s *adminService) Login(ctx context.Context, req admin.LoginRequest) (*admin.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// Same error as a wrong password: the response must not
			// reveal whether the username exists.
			return nil, admin.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	// bcrypt comparison is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(a.ID.String(), a.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &admin.LoginResult{
		Token: token,
		Admin: admin.ToDTO(a),
	}, nil
}

func (s *adminService) Verify(ctx context.Context, adminID string) (*admin.AdminDTO, error) {
	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	dto := admin.ToDTO(a)
	return &dto, nil
}
