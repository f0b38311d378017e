package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

// query to fd_product_posting_heads database
var (
	queryPostingHeadsCreate = `
		INSERT INTO fd_product_posting_heads(
			"productId", "branchId", "principalHead", "suspenseHead", "interestPayableHead", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, now(), now()
		)
		RETURNING "productId", "branchId", "principalHead", "suspenseHead", "interestPayableHead", "createdAt", "updatedAt";
	`

	queryPostingHeadsGetByProductID = `SELECT
		"productId", "branchId", "principalHead", "suspenseHead", "interestPayableHead", "createdAt", "updatedAt"
	FROM "fd_product_posting_heads"
	WHERE "branchId" = $1 AND "productId" = $2;`

	queryPostingHeadsUpdate = `
		UPDATE "fd_product_posting_heads"
		SET "principalHead" = $3, "suspenseHead" = $4, "interestPayableHead" = $5, "updatedAt" = now()
		WHERE "branchId" = $1 AND "productId" = $2
		RETURNING "productId", "branchId", "principalHead", "suspenseHead", "interestPayableHead", "createdAt", "updatedAt";
	`

	queryPostingHeadsDelete = `DELETE FROM "fd_product_posting_heads" WHERE "branchId" = $1 AND "productId" = $2;`
)

func buildListPostingHeadsQuery(branchID int64, productIDs []int64) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"productId"`,
			`"branchId"`,
			`"principalHead"`,
			`"suspenseHead"`,
			`"interestPayableHead"`,
			`"createdAt"`,
			`"updatedAt"`,
		).
		From(`"fd_product_posting_heads"`).
		Where(sq.Eq{`"branchId"`: branchID, `"productId"`: productIDs})

	return query.ToSql()
}
