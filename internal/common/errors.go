package common

import (
	"database/sql"
	"errors"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidBranch = errors.New("invalid branch id")
	ErrNoRows        = sql.ErrNoRows
)
