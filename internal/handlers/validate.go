package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blackshop/internal/i18n"
)

// Form structs. Values are trimmed before validation where the field is
// free text.
type (
	loginForm struct {
		Email    string `form:"email" validate:"required,email"`
		Password string `form:"password" validate:"required"`
	}

	registerForm struct {
		Name     string `form:"name" validate:"required,max=100"`
		Email    string `form:"email" validate:"required,email"`
		Password string `form:"password" validate:"required,min=6"`
	}

	categoryForm struct {
		Name     string `form:"name" validate:"required,max=100"`
		ImageURL string `form:"image_url" validate:"omitempty,url"`
		ParentID string `form:"parent_id"`
		EditID   string `form:"edit_id"`
	}

	cartItemForm struct {
		ProductID string `form:"productId" validate:"required"`
		Quantity  int    `form:"quantity" validate:"gte=1"`
	}
)

var validate = newValidator()

// newValidator reports field errors under their form names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm returns a localized message per invalid field, or nil when
// the form is valid.
func validateForm(loc *i18n.Localizer, form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": loc.T(i18n.ValidationInvalid)}
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = validationMessage(loc, e)
		}
	}
	return fields
}

// validationMessage returns a localized message for a failed tag.
func validationMessage(loc *i18n.Localizer, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return loc.T(i18n.ValidationRequired)
	case "email":
		return loc.T(i18n.ValidationEmail)
	case "min":
		return loc.T(i18n.ValidationMin, e.Param())
	case "max":
		return loc.T(i18n.ValidationMax, e.Param())
	case "url":
		return loc.T(i18n.ValidationURL)
	case "gte":
		return loc.T(i18n.ValidationGTE, e.Param())
	case "numeric":
		return loc.T(i18n.ValidationNumeric)
	default:
		return loc.T(i18n.ValidationInvalid)
	}
}
