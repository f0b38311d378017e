package product

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sahakari/go-fd-product/internal/common"
	"github.com/sahakari/go-fd-product/internal/common/constants"
	"github.com/sahakari/go-fd-product/internal/common/http"
	"github.com/sahakari/go-fd-product/internal/common/validation"
	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/services"
)

type productHandler struct {
	productSvc services.ProductService
}

// New product handler will initialize the fd-products/ resources
// endpoint under its branch scope
func New(app *echo.Group, productSvc services.ProductService) {
	handler := productHandler{
		productSvc: productSvc,
	}
	api := app.Group("/branches/:branchId/fd-products")
	api.POST("", handler.createProduct)
	api.GET("", handler.listProducts)
	api.GET("/:id", handler.getProduct)
	api.PUT("/:id", handler.updateProduct)
	api.DELETE("/:id", handler.deleteProduct)
}

func (h *productHandler) createProduct(c echo.Context) error {
	branchID, err := pathID(c, "branchId")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidBranch)
	}

	req := new(models.SaveProductRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToProductIn()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	agg, err := h.productSvc.Create(c.Request().Context(), branchID, in)
	if err != nil {
		return restProductError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, agg.ConvertToAggregateOut())
}

func (h *productHandler) updateProduct(c echo.Context) error {
	branchID, err := pathID(c, "branchId")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidBranch)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.SaveProductRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToProductIn()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	agg, err := h.productSvc.Update(c.Request().Context(), branchID, id, in)
	if err != nil {
		return restProductError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, agg.ConvertToAggregateOut())
}

func (h *productHandler) deleteProduct(c echo.Context) error {
	branchID, err := pathID(c, "branchId")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidBranch)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := h.productSvc.Delete(c.Request().Context(), branchID, id); err != nil {
		return restProductError(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

func (h *productHandler) getProduct(c echo.Context) error {
	branchID, err := pathID(c, "branchId")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidBranch)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	agg, err := h.productSvc.GetByID(c.Request().Context(), branchID, id)
	if err != nil {
		return restProductError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, agg.ConvertToAggregateOut())
}

func (h *productHandler) listProducts(c echo.Context) error {
	branchID, err := pathID(c, "branchId")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidBranch)
	}

	var queryFilter models.ListProductsRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts := queryFilter.ToFilterOptions(branchID)
	opts.Normalize(constants.DefaultPageSize, constants.MaxPageSize)

	list, err := h.productSvc.List(c.Request().Context(), opts)
	if err != nil {
		return restProductError(c, err)
	}

	data := make([]models.ProductAggregateOut, 0, len(list.Items))
	for i := range list.Items {
		data = append(data, *list.Items[i].ConvertToAggregateOut())
	}

	return http.RestSuccessResponsePagination(c, data, common.NewPagination(opts.Page, opts.PageSize, list.Total))
}

// restProductError translates service failures. Duplicates are a 409
// listing every offending field, missing products a 404, anything
// else a 500 carrying only the generic catalog message: the wrapped
// cause stays in the server log, never in the response body.
func restProductError(c echo.Context, err error) error {
	var dup models.DuplicateFieldsError
	if errors.As(err, &dup) {
		return http.RestConflictResponse(c, dup)
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		switch detail.Code {
		case models.ErrKeyProductNotFound, models.ErrKeyDataNotFound:
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}

		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, models.GetErrMap(detail.Code))
	}

	return http.RestErrorResponse(c, nethttp.StatusInternalServerError, models.GetErrMap(models.ErrKeyDatabaseError))
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name + " path parameter")
	}

	return id, nil
}
