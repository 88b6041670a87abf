package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Catalog   CatalogService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.Account, log),
		User:      NewUserService(repo.Account, log),
		Catalog:   NewCatalogService(repo.Catalog, log),
		Booking:   NewBookingService(repo.Ticket, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
