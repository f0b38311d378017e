package product

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sahakari/go-fd-product/internal/common/log"
	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/services/mock"
)

func saveRequest() models.SaveProductRequest {
	return models.SaveProductRequest{
		Name:          "Premium Saver",
		Code:          "PRSV1",
		EffectiveFrom: "2024-01-01",
	}
}

func coreAggregate() *models.ProductAggregate {
	return &models.ProductAggregate{
		Core: models.Product{
			ID:            11,
			BranchID:      7,
			Name:          "Premium Saver",
			Code:          "PRSV1",
			EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

const coreAggregateJSON = `{"kind":"fdProduct","id":11,"branchId":7,"name":"Premium Saver","code":"PRSV1","effectiveFrom":"2024-01-01","effectiveTill":null,"separateAccountAllowed":false,"createdAt":null,"updatedAt":null}`

func Test_Handler_createProduct(t *testing.T) {
	testHelper := productTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		req       models.SaveProductRequest
		mockData  mockData
		doMock    func(req models.SaveProductRequest)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/branches/7/fd-products",
			req:       saveRequest(),
			mockData: mockData{
				wantRes:  coreAggregateJSON,
				wantCode: 201,
			},
			doMock: func(req models.SaveProductRequest) {
				in, err := req.ToProductIn()
				require.NoError(t, err)
				testHelper.mockService.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), int64(7), in).
					Return(coreAggregate(), nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/branches/7/fd-products",
			req:       models.SaveProductRequest{Code: "lower!", EffectiveFrom: "2024-01-01"},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"name","message":"field is missing"},{"code":"INVALID_FORMAT","field":"code","message":"field must contain uppercase letters and digits only"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error duplicate name and code",
			urlCalled: "/api/v1/branches/7/fd-products",
			req:       saveRequest(),
			mockData: mockData{
				wantRes:  `{"status":"error","code":409,"message":"duplicate value within branch for: name, code","fields":["name","code"]}`,
				wantCode: 409,
			},
			doMock: func(req models.SaveProductRequest) {
				testHelper.mockService.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), int64(7), gomock.Any()).
					Return(nil, models.DuplicateFieldsError{Fields: []string{"name", "code"}})
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/branches/7/fd-products",
			req:       saveRequest(),
			mockData: mockData{
				wantRes:  `{"status":"error","code":"DATABASE_ERROR","message":"database error"}`,
				wantCode: 500,
			},
			doMock: func(req models.SaveProductRequest) {
				testHelper.mockService.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), int64(7), gomock.Any()).
					Return(nil, models.GetErrMap(models.ErrKeyDatabaseError, "pq: connection refused"))
			},
		},
		{
			name:      "error invalid branch id",
			urlCalled: "/api/v1/branches/abc/fd-products",
			req:       saveRequest(),
			mockData: mockData{
				wantRes:  `{"status":"error","code":400,"message":"invalid branch id"}`,
				wantCode: 400,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.req)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_updateProduct(t *testing.T) {
	testHelper := productTestHelper(t)

	t.Run("success", func(t *testing.T) {
		req := saveRequest()
		in, err := req.ToProductIn()
		require.NoError(t, err)

		testHelper.mockService.EXPECT().
			Update(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(11), in).
			Return(coreAggregate(), nil)

		var b bytes.Buffer
		require.NoError(t, json.NewEncoder(&b).Encode(req))

		httpReq := httptest.NewRequest(http.MethodPut, "/api/v1/branches/7/fd-products/11", &b)
		httpReq.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 200, rec.Code)
		require.Equal(t, coreAggregateJSON, strings.TrimSuffix(rec.Body.String(), "\n"))
	})

	t.Run("error product not found", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			Update(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(99), gomock.Any()).
			Return(nil, models.GetErrMap(models.ErrKeyProductNotFound))

		var b bytes.Buffer
		require.NoError(t, json.NewEncoder(&b).Encode(saveRequest()))

		httpReq := httptest.NewRequest(http.MethodPut, "/api/v1/branches/7/fd-products/99", &b)
		httpReq.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 404, rec.Code)
		require.Equal(t,
			`{"status":"error","code":"FD_PRODUCT_NOT_FOUND","message":"fixed deposit product not found in branch"}`,
			strings.TrimSuffix(rec.Body.String(), "\n"))
	})

	t.Run("error invalid id", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, json.NewEncoder(&b).Encode(saveRequest()))

		httpReq := httptest.NewRequest(http.MethodPut, "/api/v1/branches/7/fd-products/nope", &b)
		httpReq.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 400, rec.Code)
	})
}

func Test_Handler_getProduct(t *testing.T) {
	testHelper := productTestHelper(t)

	t.Run("success", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			GetByID(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(11)).
			Return(coreAggregate(), nil)

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products/11", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 200, rec.Code)
		require.Equal(t, coreAggregateJSON, strings.TrimSuffix(rec.Body.String(), "\n"))
	})

	t.Run("error product not found", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			GetByID(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(99)).
			Return(nil, models.GetErrMap(models.ErrKeyProductNotFound))

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products/99", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 404, rec.Code)
	})

	t.Run("error storage failure hides the cause", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			GetByID(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(11)).
			Return(nil, models.GetErrMap(models.ErrKeyDatabaseError,
				`pq: password authentication failed for user "fd_admin" host 10.0.0.5:5432`))

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products/11", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 500, rec.Code)
		require.Equal(t,
			`{"status":"error","code":"DATABASE_ERROR","message":"database error"}`,
			strings.TrimSuffix(rec.Body.String(), "\n"))
	})
}

func Test_Handler_deleteProduct(t *testing.T) {
	testHelper := productTestHelper(t)

	t.Run("success", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			Delete(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(11)).
			Return(nil)

		httpReq := httptest.NewRequest(http.MethodDelete, "/api/v1/branches/7/fd-products/11", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 204, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("error product not found", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			Delete(gomock.AssignableToTypeOf(context.Background()), int64(7), int64(99)).
			Return(models.GetErrMap(models.ErrKeyProductNotFound))

		httpReq := httptest.NewRequest(http.MethodDelete, "/api/v1/branches/7/fd-products/99", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 404, rec.Code)
	})
}

func Test_Handler_listProducts(t *testing.T) {
	testHelper := productTestHelper(t)

	t.Run("success with pagination", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			List(gomock.AssignableToTypeOf(context.Background()), models.ProductFilterOptions{
				BranchID: 7,
				Search:   "saver",
				Page:     2,
				PageSize: 10,
			}).
			Return(&models.ProductList{
				Items: []models.ProductAggregate{*coreAggregate()},
				Total: 11,
			}, nil)

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products?search=saver&page=2&pageSize=10", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 200, rec.Code)
		require.Equal(t,
			`{"kind":"collection","contents":[`+coreAggregateJSON+`],"pagination":{"currentPage":2,"lastPage":2,"total":11,"perPage":10}}`,
			strings.TrimSuffix(rec.Body.String(), "\n"))
	})

	t.Run("defaults applied to page options", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			List(gomock.AssignableToTypeOf(context.Background()), models.ProductFilterOptions{
				BranchID: 7,
				Page:     1,
				PageSize: 20,
			}).
			Return(&models.ProductList{}, nil)

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"contents":[]`)
		assert.Contains(t, rec.Body.String(), `"total":0`)
	})

	t.Run("error service", func(t *testing.T) {
		testHelper.mockService.EXPECT().
			List(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
			Return(nil, models.GetErrMap(models.ErrKeyDatabaseError))

		httpReq := httptest.NewRequest(http.MethodGet, "/api/v1/branches/7/fd-products", nil)

		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, httpReq)

		require.Equal(t, 500, rec.Code)
	})
}

type testProductHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockProductService
}

func productTestHelper(t *testing.T) testProductHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockProductService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testProductHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
