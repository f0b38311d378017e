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

func TestPostingHeadsRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(postingHeadsTestSuite))
}

type postingHeadsTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    PostingHeadsRepository
}

func (suite *postingHeadsTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetPostingHeadsRepository()
}

func (suite *postingHeadsTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

func postingHeadsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"productId", "branchId", "principalHead", "suspenseHead", "interestPayableHead", "createdAt", "updatedAt",
	})
}

func (suite *postingHeadsTestSuite) TestRepository_Create() {
	in := &models.ProductPostingHeads{
		ProductID:           11,
		BranchID:            7,
		PrincipalHead:       "230001",
		SuspenseHead:        "230002",
		InterestPayableHead: "230003",
	}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := postingHeadsRows().AddRow(
					int64(11), int64(7), "230001", "230002", "230003", date(2024, 1, 2), date(2024, 1, 2),
				)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsCreate)).
					WithArgs(in.ProductID, in.BranchID, in.PrincipalHead, in.SuspenseHead, in.InterestPayableHead).
					WillReturnRows(rows)
			},
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsCreate)).WillReturnError(assert.AnError)
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
				assert.Equal(t, "230001", got.PrincipalHead)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *postingHeadsTestSuite) TestRepository_GetByProductID() {
	testCases := []struct {
		name       string
		setupMocks func()
		wantNil    bool
		wantErr    bool
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := postingHeadsRows().AddRow(
					int64(11), int64(7), "230001", "230002", "230003", date(2024, 1, 2), date(2024, 1, 2),
				)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsGetByProductID)).
					WithArgs(int64(7), int64(11)).
					WillReturnRows(rows)
			},
		},
		{
			name: "test no posting heads row",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsGetByProductID)).WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsGetByProductID)).WillReturnError(assert.AnError)
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

func (suite *postingHeadsTestSuite) TestRepository_Update() {
	in := &models.ProductPostingHeads{
		ProductID:           11,
		BranchID:            7,
		PrincipalHead:       "240001",
		SuspenseHead:        "240002",
		InterestPayableHead: "240003",
	}

	rows := postingHeadsRows().AddRow(
		int64(11), int64(7), "240001", "240002", "240003", date(2024, 1, 2), date(2024, 2, 2),
	)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryPostingHeadsUpdate)).
		WithArgs(in.BranchID, in.ProductID, in.PrincipalHead, in.SuspenseHead, in.InterestPayableHead).
		WillReturnRows(rows)

	got, err := suite.repo.Update(context.Background(), in)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "240002", got.SuspenseHead)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Errorf("there were unfulfilled expectations: %s", err)
	}
}

func (suite *postingHeadsTestSuite) TestRepository_DeleteByProductID() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryPostingHeadsDelete)).
		WithArgs(int64(7), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := suite.repo.DeleteByProductID(context.Background(), 7, 11)
	require.NoError(suite.T(), err)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Errorf("there were unfulfilled expectations: %s", err)
	}
}

func (suite *postingHeadsTestSuite) TestRepository_ListByProductIDs() {
	query, args, err := buildListPostingHeadsQuery(7, []int64{11})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), args, 2)

	rows := postingHeadsRows().
		AddRow(int64(11), int64(7), "230001", "230002", "230003", date(2024, 1, 2), date(2024, 1, 2))
	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(7), int64(11)).
		WillReturnRows(rows)

	got, err := suite.repo.ListByProductIDs(context.Background(), 7, []int64{11})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Errorf("there were unfulfilled expectations: %s", err)
	}
}
