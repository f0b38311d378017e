package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/sahakari/go-fd-product/internal/common"
	"github.com/sahakari/go-fd-product/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestConflictResponseModel struct {
		Status  string   `json:"status" example:"error"`
		Code    int      `json:"code"`
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}

	RestPaginationResponseModel struct {
		Kind       string            `json:"kind" example:"collection"`
		Contents   interface{}       `json:"contents"`
		Pagination common.Pagination `json:"pagination"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponsePagination(c echo.Context, data interface{}, pagination common.Pagination) error {
	return c.JSON(http.StatusOK, RestPaginationResponseModel{
		Kind:       "collection",
		Contents:   data,
		Pagination: pagination,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}

	return c.JSON(statusCode, res)
}

// RestConflictResponse renders a duplicate-field conflict so the form
// can highlight each offending field.
func RestConflictResponse(c echo.Context, dup models.DuplicateFieldsError) error {
	return c.JSON(http.StatusConflict, RestConflictResponseModel{
		Status:  "error",
		Code:    http.StatusConflict,
		Message: dup.Error(),
		Fields:  dup.Fields,
	})
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
