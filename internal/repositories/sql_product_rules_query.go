package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

// query to fd_product_rules database
var (
	queryProductRulesCreate = `
		INSERT INTO fd_product_rules(
			"productId", "branchId", "interestAccountType", "reminderMonths", "reminderDays", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, now(), now()
		)
		RETURNING "productId", "branchId", "interestAccountType", "reminderMonths", "reminderDays", "createdAt", "updatedAt";
	`

	queryProductRulesGetByProductID = `SELECT
		"productId", "branchId", "interestAccountType", "reminderMonths", "reminderDays", "createdAt", "updatedAt"
	FROM "fd_product_rules"
	WHERE "branchId" = $1 AND "productId" = $2;`

	queryProductRulesUpdate = `
		UPDATE "fd_product_rules"
		SET "interestAccountType" = $3, "reminderMonths" = $4, "reminderDays" = $5, "updatedAt" = now()
		WHERE "branchId" = $1 AND "productId" = $2
		RETURNING "productId", "branchId", "interestAccountType", "reminderMonths", "reminderDays", "createdAt", "updatedAt";
	`

	queryProductRulesDelete = `DELETE FROM "fd_product_rules" WHERE "branchId" = $1 AND "productId" = $2;`
)

func buildListProductRulesQuery(branchID int64, productIDs []int64) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"productId"`,
			`"branchId"`,
			`"interestAccountType"`,
			`"reminderMonths"`,
			`"reminderDays"`,
			`"createdAt"`,
			`"updatedAt"`,
		).
		From(`"fd_product_rules"`).
		Where(sq.Eq{`"branchId"`: branchID, `"productId"`: productIDs})

	return query.ToSql()
}
