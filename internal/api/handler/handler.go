package handler

import (
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
)

// Handler aggregates every HTTP handler
type Handler struct {
	Auth         *AuthHandler
	Donation     *DonationHandler
	Inventory    *InventoryHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Admin        *AdminHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(cfg *config.Config, svc *service.Service, jwtMgr *jwt.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, jwtMgr, cfg.Auth.Cookie, logger),
		Donation:     NewDonationHandler(svc.Donation, cfg.Storage.MaxPhotoSize, logger),
		Inventory:    NewInventoryHandler(svc.Inventory, logger),
		Notification: NewNotificationHandler(svc.Notification, logger),
		Report:       NewReportHandler(svc.Report, logger),
		Admin:        NewAdminHandler(svc.Role, logger),
	}
}
