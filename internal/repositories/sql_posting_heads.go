package repositories

import (
	"context"
	"database/sql"

	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/monitoring"
)

type PostingHeadsRepository interface {
	Create(ctx context.Context, in *models.ProductPostingHeads) (*models.ProductPostingHeads, error)
	GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductPostingHeads, error)
	Update(ctx context.Context, in *models.ProductPostingHeads) (*models.ProductPostingHeads, error)
	DeleteByProductID(ctx context.Context, branchID, productID int64) error
	ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductPostingHeads, error)
}

type postingHeadsRepository sqlRepo

var _ PostingHeadsRepository = (*postingHeadsRepository)(nil)

// Create implements PostingHeadsRepository.
func (r *postingHeadsRepository) Create(ctx context.Context, in *models.ProductPostingHeads) (*models.ProductPostingHeads, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductPostingHeads
	err = db.QueryRowContext(ctx, queryPostingHeadsCreate,
		in.ProductID,
		in.BranchID,
		in.PrincipalHead,
		in.SuspenseHead,
		in.InterestPayableHead,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.PrincipalHead,
		&result.SuspenseHead,
		&result.InterestPayableHead,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByProductID implements PostingHeadsRepository. Returns nil when
// the product has no posting-heads row.
func (r *postingHeadsRepository) GetByProductID(ctx context.Context, branchID, productID int64) (*models.ProductPostingHeads, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var result models.ProductPostingHeads
	err = db.QueryRowContext(ctx, queryPostingHeadsGetByProductID, branchID, productID).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.PrincipalHead,
		&result.SuspenseHead,
		&result.InterestPayableHead,
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

// Update implements PostingHeadsRepository.
func (r *postingHeadsRepository) Update(ctx context.Context, in *models.ProductPostingHeads) (*models.ProductPostingHeads, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.ProductPostingHeads
	err = db.QueryRowContext(ctx, queryPostingHeadsUpdate,
		in.BranchID,
		in.ProductID,
		in.PrincipalHead,
		in.SuspenseHead,
		in.InterestPayableHead,
	).Scan(
		&result.ProductID,
		&result.BranchID,
		&result.PrincipalHead,
		&result.SuspenseHead,
		&result.InterestPayableHead,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteByProductID implements PostingHeadsRepository.
func (r *postingHeadsRepository) DeleteByProductID(ctx context.Context, branchID, productID int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryPostingHeadsDelete, branchID, productID)
	return err
}

// ListByProductIDs implements PostingHeadsRepository.
func (r *postingHeadsRepository) ListByProductIDs(ctx context.Context, branchID int64, productIDs []int64) ([]models.ProductPostingHeads, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListPostingHeadsQuery(branchID, productIDs)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProductPostingHeads
	for rows.Next() {
		var heads models.ProductPostingHeads
		if err = rows.Scan(
			&heads.ProductID,
			&heads.BranchID,
			&heads.PrincipalHead,
			&heads.SuspenseHead,
			&heads.InterestPayableHead,
			&heads.CreatedAt,
			&heads.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, heads)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
