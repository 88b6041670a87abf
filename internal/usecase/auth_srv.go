package usecase

import (
	"errors"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned by Login when no account matches the
// identifier and password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAccountBlocked is returned by Login when the credentials are valid but
// the account status is Blocked.
var ErrAccountBlocked = errors.New("account is blocked")

type AuthService interface {
	Register(req *request.RegisterRequest) error
	Login(req *request.LoginRequest) (*response.AccountResponse, error)
}

type authService struct {
	accountRepo repository.AccountRepository
	log         *zap.Logger
}

func NewAuthService(accountRepo repository.AccountRepository, log *zap.Logger) AuthService {
	return &authService{
		accountRepo: accountRepo,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(req *request.RegisterRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.accountRepo.Register(req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.log.Warn("Register rejected, account exists", zap.String("email", req.Email))
			return err
		}
		s.log.Error("Failed to register", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (s *authService) Login(req *request.LoginRequest) (*response.AccountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !s.accountRepo.Authenticate(req.Identifier, req.Password) {
		s.log.Warn("Login failed", zap.String("identifier", req.Identifier))
		return nil, ErrInvalidCredentials
	}

	if s.accountRepo.IsBlocked(req.Identifier) {
		s.log.Warn("Blocked account attempted login", zap.String("identifier", req.Identifier))
		return nil, ErrAccountBlocked
	}

	// Profile lookup matches the stored value exactly, unlike Authenticate.
	// A login under a differently-cased identifier succeeds but comes back
	// without profile details.
	account := s.accountRepo.Find(req.Identifier)
	if account == nil {
		return &response.AccountResponse{Username: req.Identifier}, nil
	}

	s.log.Info("Login succeeded", zap.String("username", account.Username))
	return &response.AccountResponse{
		Username:     account.Username,
		Email:        account.Email,
		RegisteredAt: account.RegisteredAt,
		Status:       string(account.Status),
	}, nil
}
