package models

import (
	"errors"
	"fmt"
	"strings"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

// Error keys for the service layer.
const (
	ErrKeyDataNotFound     = "DATA_NOT_FOUND"
	ErrKeyDatabaseError    = "DATABASE_ERROR"
	ErrKeyProductNotFound  = "FD_PRODUCT_NOT_FOUND"
	ErrKeyProductDuplicate = "FD_PRODUCT_DUPLICATE"
)

// MapErrors maps both service error keys and `<field>_<tag>` validation
// keys to their response detail.
var MapErrors = MapErrs{
	ErrKeyDataNotFound:     {Code: ErrKeyDataNotFound, ErrorMessage: errors.New("data not found")},
	ErrKeyDatabaseError:    {Code: ErrKeyDatabaseError, ErrorMessage: errors.New("database error")},
	ErrKeyProductNotFound:  {Code: ErrKeyProductNotFound, ErrorMessage: errors.New("fixed deposit product not found in branch")},
	ErrKeyProductDuplicate: {Code: ErrKeyProductDuplicate, ErrorMessage: errors.New("fixed deposit product name or code already used in branch")},

	"name_required":           {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"name_max":                {Code: "INVALID_LENGTH", ErrorMessage: errors.New("field must be at most 255 characters")},
	"name_nospecial":          {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must contain letters, digits and spaces only")},
	"name_noStartEndSpaces":   {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must not start or end with a space")},
	"code_max":                {Code: "INVALID_LENGTH", ErrorMessage: errors.New("field must be at most 10 characters")},
	"code_productCode":        {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must contain uppercase letters and digits only")},
	"effectiveFrom_required":  {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"effectiveFrom_date":      {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must be a date formatted YYYY-MM-DD")},
	"effectiveTill_date":      {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must be a date formatted YYYY-MM-DD")},
	"effectiveTill_dateAfter": {Code: "INVALID_RANGE", ErrorMessage: errors.New("field must be after effectiveFrom")},
	"applicableFrom_required": {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"applicableFrom_date":     {Code: "INVALID_FORMAT", ErrorMessage: errors.New("field must be a date formatted YYYY-MM-DD")},
	"maxRate_rateRange":       {Code: "INVALID_RANGE", ErrorMessage: errors.New("field must be greater than or equal to minRate")},
	"maxVariation_rateRange":  {Code: "INVALID_RANGE", ErrorMessage: errors.New("field must be greater than or equal to minVariation")},
}

// DuplicateFieldsError reports which product fields collide with an
// existing product in the same branch. Both fields can be present at
// once.
type DuplicateFieldsError struct {
	Fields []string
}

func (e DuplicateFieldsError) Error() string {
	return fmt.Sprintf("duplicate value within branch for: %s", strings.Join(e.Fields, ", "))
}
