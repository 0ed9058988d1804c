package api

import (
	"github.com/terraincognita07/carty/internal/config"
	"github.com/terraincognita07/carty/internal/db"
	"github.com/terraincognita07/carty/internal/mail"
	"github.com/terraincognita07/carty/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	cfg           config.Config
	logger        *zap.Logger
	sender        mail.Sender
	repositories  *db.Repositories
	otpService    *services.OTPService
	tokenService  *services.TokenService
	searchService *services.SearchService
	verifyLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, cfg config.Config, logger *zap.Logger, sender mail.Sender) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		cfg:           cfg,
		logger:        logger,
		sender:        sender,
		repositories:  repositories,
		otpService:    services.NewOTPService(repositories.OTPs, cfg.OTPTTL()),
		tokenService:  services.NewTokenService(cfg.SecretKey, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL()),
		searchService: services.NewSearchService(repositories.Lists, cfg.SearchRankThreshold, cfg.SearchSimilarityThreshold),
		verifyLimiter: newAttemptLimiter(),
	}
}
