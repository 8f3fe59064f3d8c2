package validator

import (
	"errors"
	"fmt"
	"strings"

	"spalatorie/pkg/logger"
	"spalatorie/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return v.Message
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("machine", validateMachine); err != nil {
		log.Fatal("Failed to register 'machine' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateMachine(fl validator.FieldLevel) bool {
	return model.IsValidMachine(fl.Field().String())
}

// Validate checks a booking request and returns at most one category of
// failure, in a fixed order: missing fields first, then PIN length, then
// machine identifier. Callers see the same error regardless of how many
// later checks would also have failed.
func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var missing []string
	var pinLength, badMachine bool
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "len":
			pinLength = true
		case "machine":
			badMachine = true
		}
	}

	if len(missing) > 0 {
		return ValidationErrors{
			ValidationError{
				Field:   strings.Join(missing, ", "),
				Message: "All fields are required",
			},
		}
	}

	if pinLength {
		return ValidationErrors{
			ValidationError{
				Field:   "pin",
				Message: "PIN must be exactly 4 characters",
			},
		}
	}

	if badMachine {
		return ValidationErrors{
			ValidationError{
				Field:   "machineType",
				Message: fmt.Sprintf("machineType must be one of: %s", strings.Join(model.MachineIDs(), ", ")),
			},
		}
	}

	return validationErrs
}
