package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/api/handler"
	"github.com/MobeenM17/SuswearGProject/internal/api/middleware"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil; photoDir is served under
// the storage public prefix.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, photoDir string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders(cfg.Storage.PublicPrefix))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if photoDir != "" {
		r.Static(cfg.Storage.PublicPrefix, photoDir)
	}

	throttle := middleware.RateLimit(rdb, cfg.Auth.LoginLimit, cfg.Auth.LoginWindow, logger)

	api := r.Group("/api")
	{
		// public
		api.POST("/login", throttle, h.Auth.Login)
		api.POST("/register", throttle, h.Auth.Register)
		api.POST("/logout", h.Auth.Logout)
		api.GET("/inventory", h.Inventory.ListShopItems)
		api.GET("/charities", h.Inventory.ListCharities)
		api.GET("/categories", h.Inventory.ListCategories)

		authorized := api.Group("")
		authorized.Use(middleware.Session(jwtMgr, rdb, logger))
		{
			donor := authorized.Group("", middleware.RoleAuth(model.RoleDonor))
			{
				donor.POST("/donations", h.Donation.Submit)
				donor.GET("/donations/mine", h.Donation.ListMine)
				donor.GET("/donations/sent", h.Donation.ListSent)
				donor.POST("/donations/send", h.Donation.MarkSent)
				donor.GET("/notifications", h.Notification.List)
			}

			staff := authorized.Group("", middleware.RoleAuth(model.RoleStaff))
			{
				staff.GET("/donations", h.Donation.ListPending)
				staff.PUT("/donations/review", h.Donation.Review)
				staff.GET("/staff/notifications", h.Notification.List)
			}

			admin := authorized.Group("", middleware.RoleAuth(model.RoleAdmin))
			{
				admin.POST("/reports/co2", h.Report.Generate)
				admin.GET("/reports/co2/export", h.Report.Export)
				admin.POST("/admin/promote-donor", h.Admin.Promote)
				admin.POST("/admin/depromote-staff", h.Admin.Depromote)
				admin.POST("/admin/create-staff", h.Admin.CreateStaff)
				admin.GET("/admin/donors", h.Admin.ListDonors)
				admin.GET("/admin/staff", h.Admin.ListStaff)
			}
		}
	}

	return r
}
