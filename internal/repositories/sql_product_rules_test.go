package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sahakari/go-fd-product/internal/config"
	"github.com/sahakari/go-fd-product/internal/models"
)

func TestProductRulesRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(productRulesTestSuite))
}

type productRulesTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    ProductRulesRepository
}

func (suite *productRulesTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetProductRulesRepository()
}

func (suite *productRulesTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

func productRulesRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"productId", "branchId", "interestAccountType", "reminderMonths", "reminderDays", "createdAt", "updatedAt",
	})
}

func (suite *productRulesTestSuite) TestRepository_Create() {
	in := &models.ProductRules{
		ProductID:           11,
		BranchID:            7,
		InterestAccountType: "SAVINGS",
		ReminderMonths:      3,
		ReminderDays:        10,
	}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := productRulesRows().AddRow(
					int64(11), int64(7), "SAVINGS", 3, 10, date(2024, 1, 2), date(2024, 1, 2),
				)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesCreate)).
					WithArgs(in.ProductID, in.BranchID, in.InterestAccountType, in.ReminderMonths, in.ReminderDays).
					WillReturnRows(rows)
			},
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesCreate)).WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.Create(context.Background(), in)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				assert.Equal(t, "SAVINGS", got.InterestAccountType)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *productRulesTestSuite) TestRepository_GetByProductID() {
	testCases := []struct {
		name       string
		setupMocks func()
		wantNil    bool
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := productRulesRows().AddRow(
					int64(11), int64(7), "SAVINGS", 3, 10, date(2024, 1, 2), date(2024, 1, 2),
				)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesGetByProductID)).
					WithArgs(int64(7), int64(11)).
					WillReturnRows(rows)
			},
		},
		{
			name: "test no rules row",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesGetByProductID)).WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesGetByProductID)).WillReturnError(assert.AnError)
			},
			wantNil: true,
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.GetByProductID(context.Background(), 7, 11)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNil, got == nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *productRulesTestSuite) TestRepository_Update() {
	in := &models.ProductRules{
		ProductID:           11,
		BranchID:            7,
		InterestAccountType: "CURRENT",
		ReminderMonths:      6,
		ReminderDays:        0,
	}

	rows := productRulesRows().AddRow(
		int64(11), int64(7), "CURRENT", 6, 0, date(2024, 1, 2), date(2024, 2, 2),
	)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryProductRulesUpdate)).
		WithArgs(in.BranchID, in.ProductID, in.InterestAccountType, in.ReminderMonths, in.ReminderDays).
		WillReturnRows(rows)

	got, err := suite.repo.Update(context.Background(), in)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "CURRENT", got.InterestAccountType)
	assert.Equal(suite.T(), 6, got.ReminderMonths)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Errorf("there were unfulfilled expectations: %s", err)
	}
}

func (suite *productRulesTestSuite) TestRepository_DeleteByProductID() {
	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				suite.mock.ExpectExec(regexp.QuoteMeta(queryProductRulesDelete)).
					WithArgs(int64(7), int64(11)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "test zero rows is fine",
			setupMocks: func() {
				suite.mock.ExpectExec(regexp.QuoteMeta(queryProductRulesDelete)).
					WithArgs(int64(7), int64(11)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectExec(regexp.QuoteMeta(queryProductRulesDelete)).WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			err := suite.repo.DeleteByProductID(context.Background(), 7, 11)
			assert.Equal(t, tt.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *productRulesTestSuite) TestRepository_ListByProductIDs() {
	query, args, err := buildListProductRulesQuery(7, []int64{11, 12})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), args, 3)

	rows := productRulesRows().
		AddRow(int64(11), int64(7), "SAVINGS", 3, 10, date(2024, 1, 2), date(2024, 1, 2)).
		AddRow(int64(12), int64(7), "CURRENT", 0, 0, date(2024, 1, 2), date(2024, 1, 2))
	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(7), int64(11), int64(12)).
		WillReturnRows(rows)

	got, err := suite.repo.ListByProductIDs(context.Background(), 7, []int64{11, 12})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), int64(12), got[1].ProductID)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Errorf("there were unfulfilled expectations: %s", err)
	}
}
