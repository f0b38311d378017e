package services

import (
	"context"

	"github.com/sahakari/go-fd-product/internal/common/constants"
	"github.com/sahakari/go-fd-product/internal/common/log"
	"github.com/sahakari/go-fd-product/internal/models"
	"github.com/sahakari/go-fd-product/internal/monitoring"
	"github.com/sahakari/go-fd-product/internal/repositories"
)

// ProductService manages the deposit product aggregate: the core row
// plus its optional rules, posting heads and interest rules children.
// Every write runs inside a single database transaction.
type ProductService interface {
	Create(ctx context.Context, branchID int64, in *models.SaveProductIn) (*models.ProductAggregate, error)
	Update(ctx context.Context, branchID, id int64, in *models.SaveProductIn) (*models.ProductAggregate, error)
	Delete(ctx context.Context, branchID, id int64) error
	GetByID(ctx context.Context, branchID, id int64) (*models.ProductAggregate, error)
	List(ctx context.Context, opts models.ProductFilterOptions) (*models.ProductList, error)
}

type product service

var _ ProductService = (*product)(nil)

func (s *product) Create(ctx context.Context, branchID int64, in *models.SaveProductIn) (agg *models.ProductAggregate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = s.checkNameAndCode(ctx, branchID, in.Name, in.Code, 0); err != nil {
		return nil, err
	}

	agg = &models.ProductAggregate{}
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		core, err := r.GetProductRepository().Create(ctx, in.Product(branchID, 0))
		if err != nil {
			return err
		}
		agg.Core = *core

		if in.Rules != nil {
			rules, err := r.GetProductRulesRepository().Create(ctx, in.Rules.Row(branchID, core.ID))
			if err != nil {
				return err
			}
			agg.Rules = rules
		}

		if in.PostingHeads != nil {
			heads, err := r.GetPostingHeadsRepository().Create(ctx, in.PostingHeads.Row(branchID, core.ID))
			if err != nil {
				return err
			}
			agg.PostingHeads = heads
		}

		if in.InterestRules != nil {
			interest, err := r.GetInterestRulesRepository().Create(ctx, in.InterestRules.Row(branchID, core.ID))
			if err != nil {
				return err
			}
			agg.InterestRules = interest
		}

		return nil
	})
	if err != nil {
		log.Error(ctx, "[ProductService.Create] transaction failed", log.Err(err))
		if dup, ok := duplicateFromPqError(err); ok {
			return nil, dup
		}

		return nil, checkDatabaseError(err)
	}

	return agg, nil
}

func (s *product) Update(ctx context.Context, branchID, id int64, in *models.SaveProductIn) (agg *models.ProductAggregate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	existing, err := s.GetByID(ctx, branchID, id)
	if err != nil {
		return nil, err
	}

	if err = s.checkNameAndCode(ctx, branchID, in.Name, in.Code, id); err != nil {
		return nil, err
	}

	agg = &models.ProductAggregate{}
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		core, err := r.GetProductRepository().Update(ctx, in.Product(branchID, id))
		if err != nil {
			return err
		}
		agg.Core = *core

		// A child payload only updates a child that already exists.
		// Products created without, say, posting heads stay without
		// them until recreated; a supplied section for a missing
		// child is ignored, not inserted.
		if in.Rules != nil && existing.Rules != nil {
			rules, err := r.GetProductRulesRepository().Update(ctx, in.Rules.Row(branchID, id))
			if err != nil {
				return err
			}
			agg.Rules = rules
		} else {
			agg.Rules = existing.Rules
		}

		if in.PostingHeads != nil && existing.PostingHeads != nil {
			heads, err := r.GetPostingHeadsRepository().Update(ctx, in.PostingHeads.Row(branchID, id))
			if err != nil {
				return err
			}
			agg.PostingHeads = heads
		} else {
			agg.PostingHeads = existing.PostingHeads
		}

		if in.InterestRules != nil && existing.InterestRules != nil {
			interest, err := r.GetInterestRulesRepository().Update(ctx, in.InterestRules.Row(branchID, id))
			if err != nil {
				return err
			}
			agg.InterestRules = interest
		} else {
			agg.InterestRules = existing.InterestRules
		}

		return nil
	})
	if err != nil {
		log.Error(ctx, "[ProductService.Update] transaction failed", log.Err(err))
		if dup, ok := duplicateFromPqError(err); ok {
			return nil, dup
		}

		return nil, checkDatabaseError(err)
	}

	return agg, nil
}

func (s *product) Delete(ctx context.Context, branchID, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	core, err := s.srv.sqlRepo.GetProductRepository().GetByID(ctx, branchID, id)
	if err != nil {
		log.Error(ctx, "[ProductService.Delete] failed to get product", log.Err(err))
		return checkDatabaseError(err)
	}
	if core == nil {
		return models.GetErrMap(models.ErrKeyProductNotFound)
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetProductRulesRepository().DeleteByProductID(ctx, branchID, id); err != nil {
			return err
		}
		if err := r.GetPostingHeadsRepository().DeleteByProductID(ctx, branchID, id); err != nil {
			return err
		}
		if err := r.GetInterestRulesRepository().DeleteByProductID(ctx, branchID, id); err != nil {
			return err
		}

		return r.GetProductRepository().Delete(ctx, branchID, id)
	})
	if err != nil {
		log.Error(ctx, "[ProductService.Delete] transaction failed", log.Err(err))
		return checkDatabaseError(err)
	}

	return nil
}

func (s *product) GetByID(ctx context.Context, branchID, id int64) (agg *models.ProductAggregate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	core, err := s.srv.sqlRepo.GetProductRepository().GetByID(ctx, branchID, id)
	if err != nil {
		log.Error(ctx, "[ProductService.GetByID] failed to get product", log.Err(err))
		return nil, checkDatabaseError(err)
	}
	if core == nil {
		return nil, models.GetErrMap(models.ErrKeyProductNotFound)
	}

	agg = &models.ProductAggregate{Core: *core}

	agg.Rules, err = s.srv.sqlRepo.GetProductRulesRepository().GetByProductID(ctx, branchID, id)
	if err != nil {
		log.Error(ctx, "[ProductService.GetByID] failed to get product rules", log.Err(err))
		return nil, checkDatabaseError(err)
	}

	agg.PostingHeads, err = s.srv.sqlRepo.GetPostingHeadsRepository().GetByProductID(ctx, branchID, id)
	if err != nil {
		log.Error(ctx, "[ProductService.GetByID] failed to get posting heads", log.Err(err))
		return nil, checkDatabaseError(err)
	}

	agg.InterestRules, err = s.srv.sqlRepo.GetInterestRulesRepository().GetByProductID(ctx, branchID, id)
	if err != nil {
		log.Error(ctx, "[ProductService.GetByID] failed to get interest rules", log.Err(err))
		return nil, checkDatabaseError(err)
	}

	return agg, nil
}

// List returns one page of aggregates ordered by name, plus the
// filtered total counted before pagination. Children are loaded with
// one batched query per child table and stitched in memory.
func (s *product) List(ctx context.Context, opts models.ProductFilterOptions) (list *models.ProductList, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	opts.Normalize(constants.DefaultPageSize, constants.MaxPageSize)

	total, err := s.srv.sqlRepo.GetProductRepository().Count(ctx, opts)
	if err != nil {
		log.Error(ctx, "[ProductService.List] failed to count products", log.Err(err))
		return nil, checkDatabaseError(err)
	}

	list = &models.ProductList{Total: total}
	if total == 0 {
		return list, nil
	}

	cores, err := s.srv.sqlRepo.GetProductRepository().List(ctx, opts)
	if err != nil {
		log.Error(ctx, "[ProductService.List] failed to list products", log.Err(err))
		return nil, checkDatabaseError(err)
	}
	if len(cores) == 0 {
		return list, nil
	}

	ids := make([]int64, 0, len(cores))
	for i := range cores {
		ids = append(ids, cores[i].ID)
	}

	rules, err := s.srv.sqlRepo.GetProductRulesRepository().ListByProductIDs(ctx, opts.BranchID, ids)
	if err != nil {
		log.Error(ctx, "[ProductService.List] failed to list product rules", log.Err(err))
		return nil, checkDatabaseError(err)
	}
	rulesByProduct := make(map[int64]*models.ProductRules, len(rules))
	for i := range rules {
		rulesByProduct[rules[i].ProductID] = &rules[i]
	}

	heads, err := s.srv.sqlRepo.GetPostingHeadsRepository().ListByProductIDs(ctx, opts.BranchID, ids)
	if err != nil {
		log.Error(ctx, "[ProductService.List] failed to list posting heads", log.Err(err))
		return nil, checkDatabaseError(err)
	}
	headsByProduct := make(map[int64]*models.ProductPostingHeads, len(heads))
	for i := range heads {
		headsByProduct[heads[i].ProductID] = &heads[i]
	}

	interest, err := s.srv.sqlRepo.GetInterestRulesRepository().ListByProductIDs(ctx, opts.BranchID, ids)
	if err != nil {
		log.Error(ctx, "[ProductService.List] failed to list interest rules", log.Err(err))
		return nil, checkDatabaseError(err)
	}
	interestByProduct := make(map[int64]*models.ProductInterestRules, len(interest))
	for i := range interest {
		interestByProduct[interest[i].ProductID] = &interest[i]
	}

	list.Items = make([]models.ProductAggregate, 0, len(cores))
	for i := range cores {
		list.Items = append(list.Items, models.ProductAggregate{
			Core:          cores[i],
			Rules:         rulesByProduct[cores[i].ID],
			PostingHeads:  headsByProduct[cores[i].ID],
			InterestRules: interestByProduct[cores[i].ID],
		})
	}

	return list, nil
}

// checkNameAndCode rejects a save whose non-blank name or code is
// already used by another product of the same branch, comparing
// case-insensitively. Both offending fields are reported at once.
func (s *product) checkNameAndCode(ctx context.Context, branchID int64, name, code string, excludeID int64) error {
	conflicts, err := s.srv.sqlRepo.GetProductRepository().FindNameCodeConflicts(ctx, branchID, name, code, excludeID)
	if err != nil {
		log.Error(ctx, "[ProductService.checkNameAndCode] failed to check uniqueness", log.Err(err))
		return checkDatabaseError(err)
	}

	if fields := conflicts.Fields(); len(fields) > 0 {
		return models.DuplicateFieldsError{Fields: fields}
	}

	return nil
}
