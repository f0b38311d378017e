package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/sahakari/go-fd-product/internal/models"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

func init() {
	registerNoSpecialCharacters()
	registerNoSpacesAtStartOrEnd()
	registerDate()
	registerProductCode()
	registerDecimalType()
	registerEffectiveDateRange()
	registerInterestRateBounds()
}

func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				key := fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag())
				if data, found := models.MapErrors[key]; found {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    data.Code,
						Field:   valErr.Field(),
						Message: data.ErrorMessage.Error(),
					})
				} else {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    "UNKNOW",
						Field:   valErr.Field(),
						Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
					})
				}
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerNoSpecialCharacters() {
	validate.RegisterValidation("nospecial", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		// Allow letters, digits and spaces only.
		pattern := "^[a-zA-Z0-9 ]*$"
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		_, err := time.Parse(models.DateLayout, input)
		return err == nil
	})
}

func registerProductCode() {
	validate.RegisterValidation("productCode", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := "^[A-Z0-9]*$"
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerDecimalType() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})
}

// effectiveTill, when present, must fall after effectiveFrom.
func registerEffectiveDateRange() {
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		req, ok := sl.Current().Interface().(models.SaveProductRequest)
		if !ok {
			return
		}

		if req.EffectiveFrom == "" || req.EffectiveTill == "" {
			return
		}

		from, errFrom := time.Parse(models.DateLayout, req.EffectiveFrom)
		till, errTill := time.Parse(models.DateLayout, req.EffectiveTill)
		if errFrom != nil || errTill != nil {
			// format errors are reported by the date tag
			return
		}

		if !till.After(from) {
			sl.ReportError(req.EffectiveTill, "effectiveTill", "EffectiveTill", "dateAfter", "")
		}
	}, models.SaveProductRequest{})
}

// maxRate >= minRate and maxVariation >= minVariation.
func registerInterestRateBounds() {
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		p, ok := sl.Current().Interface().(models.InterestRulesPayload)
		if !ok {
			return
		}

		if p.MaxRate.LessThan(p.MinRate.Decimal) {
			sl.ReportError(p.MaxRate, "maxRate", "MaxRate", "rateRange", "")
		}

		if p.MaxVariation.LessThan(p.MinVariation.Decimal) {
			sl.ReportError(p.MaxVariation, "maxVariation", "MaxVariation", "rateRange", "")
		}
	}, models.InterestRulesPayload{})
}
