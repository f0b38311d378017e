package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sahakari/go-fd-product/internal/common/log"
	"github.com/sahakari/go-fd-product/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	pr  *productRepository
	prr *productRulesRepository
	phr *postingHeadsRepository
	irr *interestRulesRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.pr = (*productRepository)(&rtx.common)
	rtx.prr = (*productRulesRepository)(&rtx.common)
	rtx.phr = (*postingHeadsRepository)(&rtx.common)
	rtx.irr = (*interestRulesRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetProductRepository() ProductRepository
	GetProductRulesRepository() ProductRulesRepository
	GetPostingHeadsRepository() PostingHeadsRepository
	GetInterestRulesRepository() InterestRulesRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside one database transaction. The tx rides the
// context so every repository call inside steps joins it. Rollback on
// error or panic, commit otherwise.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetProductRepository() ProductRepository {
	return r.pr
}

func (r *Repository) GetProductRulesRepository() ProductRulesRepository {
	return r.prr
}

func (r *Repository) GetPostingHeadsRepository() PostingHeadsRepository {
	return r.phr
}

func (r *Repository) GetInterestRulesRepository() InterestRulesRepository {
	return r.irr
}
