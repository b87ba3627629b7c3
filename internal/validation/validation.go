// Package validation implements the client-side business rules applied
// before any request leaves the browser context.
package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"lottery-miniapp-client/internal/messages"
	"lottery-miniapp-client/internal/models"
)

// Error is a rule violation. Message is the user-visible text.
type Error struct {
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(rule string) *Error {
	return &Error{Rule: rule, Message: messages.Text(rule)}
}

var (
	Validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

func init() {
	err := Validate.RegisterValidation("cnmobile", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("validation: error registering cnmobile rule: " + err.Error())
	}
}

// ValidateTicketNumbers checks a manual selection: exactly seven comma
// separated integers in [1,36] with no repeats.
func ValidateTicketNumbers(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fail(messages.TicketNumbersRequired)
	}

	tokens := strings.Split(raw, ",")
	if len(tokens) != models.NumbersPerTicket {
		return fail(messages.TicketNumbersCount)
	}

	unique := make(map[int]struct{}, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < models.MinNumber || n > models.MaxNumber {
			return fail(messages.TicketNumberRange)
		}
		unique[n] = struct{}{}
	}

	if len(unique) != models.NumbersPerTicket {
		return fail(messages.TicketNumbersRepeat)
	}
	return nil
}

func ValidateBetCount(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < models.MinBetCount || n > models.MaxBetCount {
		return fail(messages.BetCountRange)
	}
	return nil
}

// ValidateTicket runs the number rules (manual tickets only) and then the
// bet count rule, stopping at the first violation.
func ValidateTicket(form models.TicketForm) error {
	if models.TicketType(form.TicketType) == models.TicketTypeManual {
		if err := ValidateTicketNumbers(form.Numbers); err != nil {
			return err
		}
	}
	return ValidateBetCount(form.BetCount)
}

type registration struct {
	Username string `validate:"min=3,max=20"`
	Password string `validate:"min=6"`
	Phone    string `validate:"cnmobile"`
}

var registrationRules = map[string]string{
	"Username": messages.UsernameLength,
	"Password": messages.PasswordLength,
	"Phone":    messages.PhoneInvalid,
}

// ValidateRegistration reports the first failing field in the order
// username, password, phone.
func ValidateRegistration(req *models.RegisterRequest) error {
	err := Validate.Struct(registration{
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if rule, ok := registrationRules[fieldErrs[0].Field()]; ok {
			return fail(rule)
		}
	}
	return err
}

func ValidateRechargeAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(amount, 0) || !(amount > 0) {
		return 0, fail(messages.RechargeAmount)
	}
	return amount, nil
}

// SanitizeNumberInput strips every non-digit from a keystroke value. A
// non-empty result outside [1,36] is flagged but never clamped.
func SanitizeNumberInput(raw string) (string, bool) {
	value := nonDigits.ReplaceAllString(raw, "")
	if value == "" {
		return value, false
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return value, true
	}
	return value, n < models.MinNumber || n > models.MaxNumber
}
