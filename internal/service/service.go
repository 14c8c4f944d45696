package service

import (
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/photostore"
	"github.com/MobeenM17/SuswearGProject/pkg/redis"
)

// Service aggregates every service
type Service struct {
	Auth         AuthService
	Donation     DonationService
	Inventory    InventoryService
	Notification NotificationService
	Report       ReportService
	Role         RoleService
}

// NewService wires the services. rdb may be nil.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	photos photostore.Store,
	logger *zap.Logger,
) *Service {
	notifier := NewNotificationService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Donation:     NewDonationService(repo, photos, notifier, logger),
		Inventory:    NewInventoryService(repo, logger),
		Notification: notifier,
		Report:       NewReportService(repo, logger),
		Role:         NewRoleService(cfg, repo, logger),
	}
}
