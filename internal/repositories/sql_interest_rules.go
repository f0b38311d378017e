package repositories

import (
	"context"
	"database/sql"

	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/monitoring"
)

type InterestRulesRepository interface {
	Create(ctx context.Context, in *models.ProductInterestRules) (*models.ProductInterestRules, error)
	GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductInterestRules, error)
	Update(ctx context.Context, in *models.ProductInterestRules) (*models.ProductInterestRules, error)
	DeleteByProductID(ctx context.Context, branchID, productID int64) error
	ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductInterestRules, error)
}

type interestRulesRepository sqlRepo

var _ InterestRulesRepository = (*interestRulesRepository)(nil)

// Create implements InterestRulesRepository.
func (r *interestRulesRepository) Create(ctx context.Context, in *models.ProductInterestRules) (*models.ProductInterestRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductInterestRules
	err = db.QueryRowContext(ctx, queryInterestRulesCreate,
		in.ProductID,
		in.BranchID,
		in.ApplicableFrom,
		in.Basis,
		in.MinRate,
		in.MaxRate,
		in.MinVariation,
		in.MaxVariation,
		in.PostingAction,
		in.PostMaturityCalc,
		in.PreMaturityCalc,
		in.DueNoticeDays,
		in.PostingInterval,
		in.PostingDateType,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.ApplicableFrom,
		&result.Basis,
		&result.MinRate,
		&result.MaxRate,
		&result.MinVariation,
		&result.MaxVariation,
		&result.PostingAction,
		&result.PostMaturityCalc,
		&result.PreMaturityCalc,
		&result.DueNoticeDays,
		&result.PostingInterval,
		&result.PostingDateType,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByProductID implements InterestRulesRepository. Returns nil when
// the product has no interest-rules row.
func (r *interestRulesRepository) GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductInterestRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var result models.ProductInterestRules
	err = db.QueryRowContext(ctx, queryInterestRulesGetByProductID, branchID, productID).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.ApplicableFrom,
		&result.Basis,
		&result.MinRate,
		&result.MaxRate,
		&result.MinVariation,
		&result.MaxVariation,
		&result.PostingAction,
		&result.PostMaturityCalc,
		&result.PreMaturityCalc,
		&result.DueNoticeDays,
		&result.PostingInterval,
		&result.PostingDateType,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &result, nil
}

// Update implements InterestRulesRepository.
func (r *interestRulesRepository) Update(ctx context.Context, in *models.ProductInterestRules) (*models.ProductInterestRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductInterestRules
	err = db.QueryRowContext(ctx, queryInterestRulesUpdate,
		in.BranchID,
		in.ProductID,
		in.ApplicableFrom,
		in.Basis,
		in.MinRate,
		in.MaxRate,
		in.MinVariation,
		in.MaxVariation,
		in.PostingAction,
		in.PostMaturityCalc,
		in.PreMaturityCalc,
		in.DueNoticeDays,
		in.PostingInterval,
		in.PostingDateType,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.ApplicableFrom,
		&result.Basis,
		&result.MinRate,
		&result.MaxRate,
		&result.MinVariation,
		&result.MaxVariation,
		&result.PostingAction,
		&result.PostMaturityCalc,
		&result.PreMaturityCalc,
		&result.DueNoticeDays,
		&result.PostingInterval,
		&result.PostingDateType,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteByProductID implements InterestRulesRepository.
func (r *interestRulesRepository) DeleteByProductID(ctx context.Context, branchID, productID int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryInterestRulesDelete, branchID, productID)
	return err
}

// ListByProductIDs implements InterestRulesRepository.
func (r *interestRulesRepository) ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductInterestRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListInterestRulesQuery(branchID, productIDs)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProductInterestRules
	for rows.Next() {
		var rules models.ProductInterestRules
		if err = rows.Scan(
			&rules.ProductID,
			&rules.BranchID,
			&rules.ApplicableFrom,
			&rules.Basis,
			&rules.MinRate,
			&rules.MaxRate,
			&rules.MinVariation,
			&rules.MaxVariation,
			&rules.PostingAction,
			&rules.PostMaturityCalc,
			&rules.PreMaturityCalc,
			&rules.DueNoticeDays,
			&rules.PostingInterval,
			&rules.PostingDateType,
			&rules.CreatedAt,
			&rules.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rules)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
