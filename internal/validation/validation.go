// Package validation implements request validation for account and profile
// operations. Rules are expressed as struct tags on mirror structs so the
// whole input is checked in one pass and every failing field is reported,
// not just the first.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"passport/internal/errors"
	"passport/internal/usecase"
)

// FieldErrors maps a request field name to the messages it failed with.
type FieldErrors map[string][]string

var (
	nameFormatRe   = regexp.MustCompile(`^[A-ZА-ЯЁ][a-zа-яё]*$`)
	loginCharsetRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Validator checks registration, login and profile-update inputs. The strict
// variant enforces the full rule set including the confirm_password
// cross-field check; the loose variant keeps only length bounds and the
// email format.
type Validator struct {
	validate *validator.Validate
	strict   bool
}

// New builds a Validator. Custom rules are registered once here; field names
// in reported errors follow the json tags of the input structs.
func New(strict bool) (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"name_format": func(fl validator.FieldLevel) bool {
			return nameFormatRe.MatchString(fl.Field().String())
		},
		"login_charset": func(fl validator.FieldLevel) bool {
			return loginCharsetRe.MatchString(fl.Field().String())
		},
		"password_chars": func(fl validator.FieldLevel) bool {
			return containsLetterAndDigit(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "register validation rule %q", tag)
		}
	}

	return &Validator{validate: v, strict: strict}, nil
}

// Strict reports which variant this validator runs.
func (v *Validator) Strict() bool {
	return v.strict
}

// strictRegistration mirrors usecase.RegisterInput with the full rule set.
type strictRegistration struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=50,name_format"`
	LastName        string `json:"last_name" validate:"required,min=1,max=50,name_format"`
	Login           string `json:"login" validate:"required,min=3,max=20,login_charset"`
	Password        string `json:"password" validate:"required,min=6,password_chars"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Mail            string `json:"mail" validate:"required,email"`
}

// looseRegistration keeps only length bounds and the email format; the
// confirm_password field is ignored entirely.
type looseRegistration struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=32"`
	LastName  string `json:"last_name" validate:"required,min=2,max=32"`
	Login     string `json:"login" validate:"required,min=2,max=32"`
	Password  string `json:"password" validate:"required,min=4,max=16"`
	Mail      string `json:"mail" validate:"required,min=4,max=64,email"`
}

// profileUpdate validates only the fields present in the request. Nil
// pointers are skipped, so absent fields never produce errors.
type profileUpdate struct {
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Gender         *string `json:"gender" validate:"omitempty,max=16"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Country        *string `json:"country" validate:"omitempty,max=64"`
	City           *string `json:"city" validate:"omitempty,max=64"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=256"`
}

// ValidateRegistration checks a registration input and returns every failing
// field. A nil return means the input passed.
func (v *Validator) ValidateRegistration(input *usecase.RegisterInput) FieldErrors {
	var target any
	if v.strict {
		target = &strictRegistration{
			FirstName:       input.FirstName,
			LastName:        input.LastName,
			Login:           input.Login,
			Password:        input.Password,
			ConfirmPassword: input.ConfirmPassword,
			Mail:            input.Mail,
		}
	} else {
		target = &looseRegistration{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Login:     input.Login,
			Password:  input.Password,
			Mail:      input.Mail,
		}
	}
	return v.collect(v.validate.Struct(target))
}

// ValidateProfileUpdate checks the present fields of a profile update.
func (v *Validator) ValidateProfileUpdate(input *usecase.UpdateProfileInput) FieldErrors {
	target := &profileUpdate{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Gender:         input.Gender,
		DateOfBirth:    input.DateOfBirth,
		Country:        input.Country,
		City:           input.City,
		ProfilePicture: input.ProfilePicture,
	}
	return v.collect(v.validate.Struct(target))
}

// collect flattens validator output into the field error map.
func (v *Validator) collect(err error) FieldErrors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"request": {"invalid request payload"}}
	}
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], messageFor(fe))
	}
	return fields
}

func containsLetterAndDigit(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
		if letter && digit {
			return true
		}
	}
	return false
}

// messageFor renders a single rule failure as a user-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "email":
		return "Must be a valid email address."
	case "name_format":
		return "Must start with an uppercase letter followed by lowercase letters."
	case "login_charset":
		return "May contain only Latin letters, digits and underscores."
	case "password_chars":
		return "Must contain at least one letter and one digit."
	case "eqfield":
		return "Passwords do not match."
	case "datetime":
		return "Must be a date in YYYY-MM-DD format."
	default:
		return "Invalid value."
	}
}
