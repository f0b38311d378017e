package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/sahakari/go-fd-product/internal/models"
)

// query to fd_product database
var (
	queryProductCreate = `
		INSERT INTO fd_product(
			"branchId", "name", "code", "effectiveFrom", "effectiveTill", "isSeparateAccountAllowed", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, now(), now()
		)
		RETURNING "id", "branchId", "name", "code", "effectiveFrom", "effectiveTill", "isSeparateAccountAllowed", "createdAt", "updatedAt";
	`

	queryProductGetByID = `SELECT
		"id", "branchId", "name", "code", "effectiveFrom", "effectiveTill", "isSeparateAccountAllowed", "createdAt", "updatedAt"
	FROM "fd_product"
	WHERE "branchId" = $1 AND "id" = $2;`

	queryProductUpdate = `
		UPDATE "fd_product"
		SET "name" = $3, "code" = $4, "effectiveFrom" = $5, "effectiveTill" = $6, "isSeparateAccountAllowed" = $7, "updatedAt" = now()
		WHERE "branchId" = $1 AND "id" = $2
		RETURNING "id", "branchId", "name", "code", "effectiveFrom", "effectiveTill", "isSeparateAccountAllowed", "createdAt", "updatedAt";
	`

	queryProductDelete = `DELETE FROM "fd_product" WHERE "branchId" = $1 AND "id" = $2;`

	// blank name/code never matches; excludeID is 0 on create so the
	// id filter is a no-op there
	queryProductNameCodeConflicts = `SELECT
		COUNT(*) FILTER (WHERE $2 <> '' AND lower("name") = lower($2)) AS "nameMatches",
		COUNT(*) FILTER (WHERE $3 <> '' AND lower("code") = lower($3)) AS "codeMatches"
	FROM "fd_product"
	WHERE "branchId" = $1 AND "id" <> $4;`
)

var productColumns = []string{
	`"id"`,
	`"branchId"`,
	`"name"`,
	`"code"`,
	`"effectiveFrom"`,
	`"effectiveTill"`,
	`"isSeparateAccountAllowed"`,
	`"createdAt"`,
	`"updatedAt"`,
}

func buildListProductQuery(opts models.ProductFilterOptions) (sql string, args []interface{}, err error) {
	query := buildFilteredProductQuery(productColumns, opts)

	query = query.
		OrderBy(`"name" ASC, "id" ASC`).
		Offset(uint64(opts.Offset())).
		Limit(uint64(opts.PageSize))

	return query.ToSql()
}

func buildCountProductQuery(opts models.ProductFilterOptions) (sql string, args []interface{}, err error) {
	query := buildFilteredProductQuery([]string{"COUNT(1)"}, opts)

	return query.ToSql()
}

func buildFilteredProductQuery(cols []string, opts models.ProductFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(cols...).
		From(`"fd_product"`).
		Where(sq.Eq{`"branchId"`: opts.BranchID})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{`"name"`: pattern},
			sq.ILike{`"code"`: pattern},
		})
	}

	return query
}
