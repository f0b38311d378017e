package services_test

import (
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/sahakari/go-fd-product/internal/common/log"
	"github.com/sahakari/go-fd-product/internal/config"
	"github.com/sahakari/go-fd-product/internal/repositories/mock"
	"github.com/sahakari/go-fd-product/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl              *gomock.Controller
	config                config.Config
	mockSQLRepository     *mock.MockSQLRepository
	mockProductRepository *mock.MockProductRepository
	mockRulesRepository   *mock.MockProductRulesRepository
	mockHeadsRepository   *mock.MockPostingHeadsRepository
	mockIntRepository     *mock.MockInterestRulesRepository

	productService services.ProductService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockProductRepository := mock.NewMockProductRepository(mockCtrl)
	mockRulesRepository := mock.NewMockProductRulesRepository(mockCtrl)
	mockHeadsRepository := mock.NewMockPostingHeadsRepository(mockCtrl)
	mockIntRepository := mock.NewMockInterestRulesRepository(mockCtrl)

	mockSQLRepository.EXPECT().GetProductRepository().Return(mockProductRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetProductRulesRepository().Return(mockRulesRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetPostingHeadsRepository().Return(mockHeadsRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetInterestRulesRepository().Return(mockIntRepository).AnyTimes()

	conf := config.Config{}

	serv := services.New(conf, mockSQLRepository)

	return testServiceHelper{
		mockCtrl:              mockCtrl,
		config:                conf,
		mockSQLRepository:     mockSQLRepository,
		mockProductRepository: mockProductRepository,
		mockRulesRepository:   mockRulesRepository,
		mockHeadsRepository:   mockHeadsRepository,
		mockIntRepository:     mockIntRepository,
		productService:        serv.Product,
	}
}
