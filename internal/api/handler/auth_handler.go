package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/api/middleware"
	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// AuthHandler login, logout and registration
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
	cookie  config.CookieConfig
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService, jwtMgr *jwt.Manager, cookie config.CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtMgr: jwtMgr, cookie: cookie, logger: logger}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.setSessionCookies(c, result.Session)
	response.OK(c, dto.LoginResponse{User: result.User, Role: result.User.Role})
}

// Logout POST /api/logout
// Always clears the cookies; a still valid session is also revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	roleTok, _ := c.Cookie(middleware.CookieRole)
	userTok, _ := c.Cookie(middleware.CookieUser)
	if roleTok != "" && userTok != "" {
		if claims, err := h.jwtMgr.ParseSession(roleTok, userTok); err == nil && claims.ExpiresAt != nil {
			if err := h.authSvc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				h.logger.Warn("logout without revocation", zap.Error(err))
			}
		}
	}

	h.clearSessionCookies(c)
	response.OK(c, dto.OKResponse{OK: true})
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.Created(c, resp)
}

// ── cookies ──

func (h *AuthHandler) setSessionCookies(c *gin.Context, s *jwt.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	for name, value := range map[string]string{
		middleware.CookieRole: s.RoleToken,
		middleware.CookieUser: s.UserToken,
	} {
		http.SetCookie(c.Writer, h.newCookie(name, value, maxAge, s.ExpiresAt))
	}
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	for _, name := range []string{middleware.CookieRole, middleware.CookieUser} {
		http.SetCookie(c.Writer, h.newCookie(name, "", -1, time.Unix(0, 0)))
	}
}

func (h *AuthHandler) newCookie(name, value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSiteMode(h.cookie.SameSite),
	}
}

func sameSiteMode(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
