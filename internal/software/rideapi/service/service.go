package service

import (
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
)

// authService implements registration and login.
type authService struct {
	logger   *logger.Logger
	uow      ports.UnitOfWork
	userRepo ports.UserRepository
	tokens   *jwt.Manager
}

// NewAuthService creates the auth service with the provided dependencies.
func NewAuthService(
	log *logger.Logger,
	uow ports.UnitOfWork,
	userRepo ports.UserRepository,
	tokens *jwt.Manager,
) ports.AuthService {
	return &authService{
		logger:   log,
		uow:      uow,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// rideService implements ride management on top of the repositories.
type rideService struct {
	logger        *logger.Logger
	uow           ports.UnitOfWork
	userRepo      ports.UserRepository
	rideRepo      ports.RideRepository
	rideEventRepo ports.RideEventRepository
	reportCache   ports.ReportCache
	pub           ports.StatusPublisher
}

// NewRideService creates the ride service with the provided dependencies.
// reportCache and pub may be nil in tests; both are best-effort collaborators.
func NewRideService(
	log *logger.Logger,
	uow ports.UnitOfWork,
	userRepo ports.UserRepository,
	rideRepo ports.RideRepository,
	rideEventRepo ports.RideEventRepository,
	reportCache ports.ReportCache,
	pub ports.StatusPublisher,
) ports.RideService {
	return &rideService{
		logger:        log,
		uow:           uow,
		userRepo:      userRepo,
		rideRepo:      rideRepo,
		rideEventRepo: rideEventRepo,
		reportCache:   reportCache,
		pub:           pub,
	}
}
