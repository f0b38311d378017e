package services

import (
	"errors"

	"github.com/lib/pq"

	"github.com/sahakari/go-fd-product/internal/common"
	"github.com/sahakari/go-fd-product/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

// uniqueness index names from migrations/0001_init.up.sql
const (
	constraintProductBranchName = "fd_product_branch_lower_name_ux"
	constraintProductBranchCode = "fd_product_branch_lower_code_ux"
)

// duplicateFromPqError converts a unique-index violation into the
// duplicate-conflict outcome. The pre-write uniqueness check and the
// insert are separate statements, so a concurrent writer can slip in
// between; the database index turns that race into a 23505 which is
// reported exactly like a pre-checked conflict.
func duplicateFromPqError(err error) (models.DuplicateFieldsError, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return models.DuplicateFieldsError{}, false
	}

	if pqErr.Code != pq.ErrorCode("23505") {
		return models.DuplicateFieldsError{}, false
	}

	switch pqErr.Constraint {
	case constraintProductBranchName:
		return models.DuplicateFieldsError{Fields: []string{"name"}}, true
	case constraintProductBranchCode:
		return models.DuplicateFieldsError{Fields: []string{"code"}}, true
	}

	return models.DuplicateFieldsError{}, false
}
