package usecase

import (
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// UserService covers profile self-service and the admin account
// administration surface: edit, block/unblock, delete, list.
type UserService interface {
	GetProfile(identifier string) (*response.AccountResponse, error)
	UpdateProfile(req *request.UpdateProfileRequest) error
	ChangePassword(email, newPassword string) error
	SetStatus(email string, status entity.AccountStatus) error
	Delete(email string) error
	ListAll() []response.AccountResponse
}

type userService struct {
	accountRepo repository.AccountRepository
	log         *zap.Logger
}

func NewUserService(accountRepo repository.AccountRepository, log *zap.Logger) UserService {
	return &userService{
		accountRepo: accountRepo,
		log:         log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(identifier string) (*response.AccountResponse, error) {
	account := s.accountRepo.Find(identifier)
	if account == nil {
		return nil, repository.ErrNotFound
	}

	return &response.AccountResponse{
		Username:     account.Username,
		Email:        account.Email,
		RegisteredAt: account.RegisteredAt,
		Status:       string(account.Status),
	}, nil
}

func (s *userService) UpdateProfile(req *request.UpdateProfileRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	err := s.accountRepo.UpdateProfile(req.OldEmail, req.NewUsername, req.NewEmail, req.NewPassword)
	if err != nil {
		s.log.Warn("Update profile failed", zap.Error(err), zap.String("email", req.OldEmail))
		return err
	}

	s.log.Info("Profile updated", zap.String("email", req.NewEmail))
	return nil
}

func (s *userService) ChangePassword(email, newPassword string) error {
	if err := s.accountRepo.UpdatePassword(email, newPassword); err != nil {
		s.log.Warn("Change password failed", zap.Error(err), zap.String("email", email))
		return err
	}
	return nil
}

func (s *userService) SetStatus(email string, status entity.AccountStatus) error {
	if err := s.accountRepo.SetStatus(email, status); err != nil {
		s.log.Warn("Set status failed", zap.Error(err), zap.String("email", email))
		return err
	}

	s.log.Info("Account status changed", zap.String("email", email), zap.String("status", string(status)))
	return nil
}

func (s *userService) Delete(email string) error {
	if err := s.accountRepo.Delete(email); err != nil {
		s.log.Warn("Delete account failed", zap.Error(err), zap.String("email", email))
		return err
	}
	return nil
}

func (s *userService) ListAll() []response.AccountResponse {
	accounts := s.accountRepo.ListAll()
	out := make([]response.AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = response.AccountResponse{
			Username:     a.Username,
			Email:        a.Email,
			RegisteredAt: a.RegisteredAt,
			Status:       string(a.Status),
		}
	}
	return out
}
