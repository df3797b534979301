// Package validation turns raw operator input into well-formed passenger
// fields. Every function is total: it returns a value or one of the domain
// field errors and never panics on malformed input.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	MinAge = 0
	MaxAge = 110

	// passportForbidden lists the punctuation a passport number may not contain.
	passportForbidden = "`~!@#$%^&*()-_+=;:<>.?\"|"
)

var genders = []string{"male", "female", "other"}

type passengerFields struct {
	Name           string `validate:"no_digits"`
	Age            int    `validate:"min=0,max=110"`
	Gender         string `validate:"gender"`
	PassportNumber string `validate:"passport"`
}

var fieldErrors = map[string]error{
	"Name":           domain.ErrInvalidName,
	"Age":            domain.ErrInvalidAge,
	"Gender":         domain.ErrInvalidGender,
	"PassportNumber": domain.ErrInvalidPassport,
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"no_digits": validateNoDigits,
		"gender":    validateGenderTag,
		"passport":  validatePassportTag,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// ValidateName rejects names containing the digits 1 through 9. Zero is let through.
func ValidateName(raw string) (string, error) {
	if err := validate.Var(raw, "no_digits"); err != nil {
		return "", domain.ErrInvalidName
	}
	return raw, nil
}

func ValidateAge(age int) (int, error) {
	if err := validate.Var(age, "min=0,max=110"); err != nil {
		return 0, domain.ErrInvalidAge
	}
	return age, nil
}

// ParseAge reads an age token typed by the operator. Anything that is not an
// integer in range is reported as ErrInvalidAge.
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidAge
	}
	return ValidateAge(age)
}

// ValidateGender accepts male, female or other in any letter case and returns
// the input exactly as typed.
func ValidateGender(raw string) (string, error) {
	if err := validate.Var(raw, "gender"); err != nil {
		return "", domain.ErrInvalidGender
	}
	return raw, nil
}

func ValidateDisability(raw string) bool {
	return strings.EqualFold(raw, "yes")
}

func ValidatePassportNumber(raw string) (string, error) {
	if err := validate.Var(raw, "passport"); err != nil {
		return "", domain.ErrInvalidPassport
	}
	return raw, nil
}

// ValidatePassenger checks every field of p and returns the error of the first
// field that fails, in declaration order.
func ValidatePassenger(p domain.Passenger) error {
	err := validate.Struct(passengerFields{
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		PassportNumber: p.PassportNumber,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if fieldErr, ok := fieldErrors[verrs[0].Field()]; ok {
			return fieldErr
		}
	}
	return err
}

func validateNoDigits(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "123456789")
}

func validateGenderTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, g := range genders {
		if strings.EqualFold(value, g) {
			return true
		}
	}
	return false
}

func validatePassportTag(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), passportForbidden)
}
