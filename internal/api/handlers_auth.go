package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/carty/internal/services"
	"go.uber.org/zap"
)

type otpRequestInput struct {
	Email string `json:"email"`
}

type otpVerifyInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRefreshInput struct {
	Refresh string `json:"refresh"`
}

// RequestOTP issues or refreshes the challenge for an email. 201 signals a
// brand-new challenge row, 200 a refreshed one.
func (handler *Handler) RequestOTP(c *fiber.Ctx) error {
	var input otpRequestInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	validateEmailField(input.Email, errs)
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	email := services.NormalizeEmail(input.Email)
	code, created, err := handler.otpService.Request(email)
	if err != nil {
		return err
	}

	handler.dispatchOTP(c, email, code)

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message": "OTP sent successfully",
		"email":   email,
	})
}

// VerifyOTP trades a valid code for a token pair, creating the user on first
// login. Wrong, expired and unknown codes all yield the same empty 401.
func (handler *Handler) VerifyOTP(c *fiber.Ctx) error {
	var input otpVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	validateEmailField(input.Email, errs)
	validateOTPCodeField(input.Password, errs)
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	email := services.NormalizeEmail(input.Email)
	now := time.Now()
	if handler.verifyLimiter.tooManyRecent(email, now, handler.cfg.OTPAttemptLimit, handler.cfg.OTPAttemptWindow()) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts"})
	}

	valid, err := handler.otpService.IsValid(email, input.Password)
	if err != nil {
		return err
	}
	if !valid {
		handler.verifyLimiter.addFailure(email, now, handler.cfg.OTPAttemptWindow())
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	handler.verifyLimiter.reset(email)

	// Rotate the code first so it cannot be redeemed twice.
	if err := handler.otpService.Refresh(email); err != nil {
		return err
	}

	user, created, err := handler.repositories.Users.GetOrCreateByEmail(email)
	if err != nil {
		return err
	}

	pair, err := handler.tokenService.IssuePair(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"refresh": pair.Refresh,
		"access":  pair.Access,
		"created": created,
	})
}

// RefreshTokens exchanges a valid refresh token for a fresh pair.
func (handler *Handler) RefreshTokens(c *fiber.Ctx) error {
	var input tokenRefreshInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}
	if input.Refresh == "" {
		return badRequest(c, fieldErrors{"refresh": "this field is required"})
	}

	pair, err := handler.tokenService.RefreshPair(input.Refresh)
	if errors.Is(err, services.ErrInvalidToken) {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"refresh": pair.Refresh,
		"access":  pair.Access,
	})
}

// dispatchOTP delivers the code, degrading transport failures to a logged
// warning: issuance must never fail because mail did. The code is logged on
// failure for operational recovery.
func (handler *Handler) dispatchOTP(c *fiber.Ctx, email string, code string) {
	if err := handler.sender.SendOTP(c.Context(), email, code); err != nil {
		handler.logger.Warn("otp delivery failed",
			zap.String("email", email),
			zap.String("code", code),
			zap.Error(err),
		)
	}
}
