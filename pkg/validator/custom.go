package validator

import (
	"math"

	"github.com/go-playground/validator/v10"

	"guardDuty/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("radius_m", validateRadiusM)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("alert_kind", validateAlertKind)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return !math.IsNaN(lat) && lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return !math.IsNaN(lng) && lng >= -180.0 && lng <= 180.0
}

func validateRadiusM(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius >= 5 && radius <= 100_000
}

// "HH:MM", 00:00..23:59
func validateClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClockTime(fl.Field().String())
	return err == nil
}

func validateAlertKind(fl validator.FieldLevel) bool {
	return domain.AlertKind(fl.Field().String()).Valid()
}
