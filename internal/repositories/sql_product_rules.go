package repositories

import (
	"context"
	"database/sql"

	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/monitoring"
)

type ProductRulesRepository interface {
	Create(ctx context.Context, in *models.ProductRules) (*models.ProductRules, error)
	GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductRules, error)
	Update(ctx context.Context, in *models.ProductRules) (*models.ProductRules, error)
	DeleteByProductID(ctx context.Context, branchID, productID int64) error
	ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductRules, error)
}

type productRulesRepository sqlRepo

var _ ProductRulesRepository = (*productRulesRepository)(nil)

// Create implements ProductRulesRepository.
func (r *productRulesRepository) Create(ctx context.Context, in *models.ProductRules) (*models.ProductRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductRules
	err = db.QueryRowContext(ctx, queryProductRulesCreate,
		in.ProductID,
		in.BranchID,
		in.InterestAccountType,
		in.ReminderMonths,
		in.ReminderDays,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.InterestAccountType,
		&result.ReminderMonths,
		&result.ReminderDays,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByProductID implements ProductRulesRepository. Returns nil when
// the product has no rules row; absence is a legitimate state.
func (r *productRulesRepository) GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var result models.ProductRules
	err = db.QueryRowContext(ctx, queryProductRulesGetByProductID, branchID, productID).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.InterestAccountType,
		&result.ReminderMonths,
		&result.ReminderDays,
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

// Update implements ProductRulesRepository.
func (r *productRulesRepository) Update(ctx context.Context, in *models.ProductRules) (*models.ProductRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductRules
	err = db.QueryRowContext(ctx, queryProductRulesUpdate,
		in.BranchID,
		in.ProductID,
		in.InterestAccountType,
		in.ReminderMonths,
		in.ReminderDays,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.InterestAccountType,
		&result.ReminderMonths,
		&result.ReminderDays,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteByProductID implements ProductRulesRepository. Deleting zero
// rows is not an error, the child is optional.
func (r *productRulesRepository) DeleteByProductID(ctx context.Context, branchID, productID int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryProductRulesDelete, branchID, productID)
	return err
}

// ListByProductIDs implements ProductRulesRepository. Batch load for
// one listing page.
func (r *productRulesRepository) ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductRules, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListProductRulesQuery(branchID, productIDs)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProductRules
	for rows.Next() {
		var rules models.ProductRules
		if err = rows.Scan(
			&rules.ProductID,
			&rules.BranchID,
			&rules.InterestAccountType,
			&rules.ReminderMonths,
			&rules.ReminderDays,
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
