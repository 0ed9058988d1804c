package api

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
var otpCodePattern = regexp.MustCompile(`^\d{6}$`)

const maxNameLength = 100

// maxItemPrice mirrors a 5-digit, 2-fraction decimal column.
var maxItemPrice = decimal.RequireFromString("999.99")

type fieldErrors map[string]string

func badRequest(c *fiber.Ctx, errs fieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
}

func validateEmailField(email string, errs fieldErrors) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		errs["email"] = "this field is required"
		return
	}
	if !emailPattern.MatchString(trimmed) {
		errs["email"] = "enter a valid email address"
	}
}

func validateOTPCodeField(code string, errs fieldErrors) {
	if code == "" {
		errs["password"] = "this field is required"
		return
	}
	if !otpCodePattern.MatchString(code) {
		errs["password"] = "enter the 6-digit code"
	}
}

func validateNameField(name string, errs fieldErrors) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs["name"] = "this field is required"
		return
	}
	if len(trimmed) > maxNameLength {
		errs["name"] = "ensure this field has no more than 100 characters"
	}
}

func validateQuantityField(quantity int, errs fieldErrors) {
	if quantity < 1 {
		errs["quantity"] = "ensure this value is greater than or equal to 1"
	}
}

func validatePriceField(price decimal.Decimal, errs fieldErrors) {
	if !price.IsPositive() {
		errs["price"] = "ensure this value is greater than 0"
		return
	}
	if price.GreaterThan(maxItemPrice) {
		errs["price"] = "ensure there are no more than 5 digits in total"
		return
	}
	if !price.Equal(price.Round(2)) {
		errs["price"] = "ensure there are no more than 2 decimal places"
	}
}
