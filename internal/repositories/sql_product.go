package repositories

import (
	"context"
	"database/sql"

	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/monitoring"
)

type ProductRepository interface {
	Create(ctx context.Context, in *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, branchID, id int64) (*models.Product, error)
	Update(ctx context.Context, in *models.Product) (*models.Product, error)
	Delete(ctx context.Context, branchID, id int64) error
	FindNameCodeConflicts(ctx context.Context, branchID int64, name, code string, excludeID int64) (*models.ProductConflicts, error)
	List(ctx context.Context, opts models.ProductFilterOptions) ([]models.Product, error)
	Count(ctx context.Context, opts models.ProductFilterOptions) (int, error)
}

type productRepository sqlRepo

var _ ProductRepository = (*productRepository)(nil)

// Create implements ProductRepository.
func (r *productRepository) Create(ctx context.Context, in *models.Product) (*models.Product, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.Product
	err = db.QueryRowContext(ctx, queryProductCreate,
		in.BranchID,
		in.Name,
		in.Code,
		in.EffectiveFrom,
		in.EffectiveTill,
		in.SeparateAccountAllowed,
	).Scan(
		&result.ID,
		&result.BranchID,
		&result.Name,
		&result.Code,
		&result.EffectiveFrom,
		&result.EffectiveTill,
		&result.SeparateAccountAllowed,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByID implements ProductRepository. Returns nil when the product
// does not exist in the branch.
func (r *productRepository) GetByID(ctx context.Context, branchID, id int64) (*models.Product, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var result models.Product
	err = db.QueryRowContext(ctx, queryProductGetByID, branchID, id).Scan(
		&result.ID,
		&result.BranchID,
		&result.Name,
		&result.Code,
		&result.EffectiveFrom,
		&result.EffectiveTill,
		&result.SeparateAccountAllowed,
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

// Update implements ProductRepository. Overwrites the mutable core
// fields; RETURNING guards against the row vanishing mid-flight.
func (r *productRepository) Update(ctx context.Context, in *models.Product) (*models.Product, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var result models.Product
	err = db.QueryRowContext(ctx, queryProductUpdate,
		in.BranchID,
		in.ID,
		in.Name,
		in.Code,
		in.EffectiveFrom,
		in.EffectiveTill,
		in.SeparateAccountAllowed,
	).Scan(
		&result.ID,
		&result.BranchID,
		&result.Name,
		&result.Code,
		&result.EffectiveFrom,
		&result.EffectiveTill,
		&result.SeparateAccountAllowed,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete implements ProductRepository.
func (r *productRepository) Delete(ctx context.Context, branchID, id int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryProductDelete, branchID, id)
	return err
}

// FindNameCodeConflicts implements ProductRepository. One read-only
// query; blank values are excluded inside the statement so blank never
// conflicts with blank. excludeID is zero on create.
func (r *productRepository) FindNameCodeConflicts(ctx context.Context, branchID int64, name, code string, excludeID int64) (*models.ProductConflicts, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var nameMatches, codeMatches int
	err = db.QueryRowContext(ctx, queryProductNameCodeConflicts, branchID, name, code, excludeID).Scan(
		&nameMatches,
		&codeMatches,
	)
	if err != nil {
		return nil, err
	}

	return &models.ProductConflicts{
		NameTaken: nameMatches > 0,
		CodeTaken: codeMatches > 0,
	}, nil
}

// List implements ProductRepository. Page of core rows only; children
// are batch-loaded by the service.
func (r *productRepository) List(ctx context.Context, opts models.ProductFilterOptions) ([]models.Product, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListProductQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var product models.Product
		if err = rows.Scan(
			&product.ID,
			&product.BranchID,
			&product.Name,
			&product.Code,
			&product.EffectiveFrom,
			&product.EffectiveTill,
			&product.SeparateAccountAllowed,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Count implements ProductRepository. Same filter as List, computed
// before pagination.
func (r *productRepository) Count(ctx context.Context, opts models.ProductFilterOptions) (int, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountProductQuery(opts)
	if err != nil {
		return 0, err
	}

	var total int
	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
