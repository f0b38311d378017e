package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

// query to fd_product_interest_rules database
var (
	queryInterestRulesCreate = `
		INSERT INTO fd_product_interest_rules(
			"productId", "branchId", "applicableFrom", "basis",
			"minRate", "maxRate", "minVariation", "maxVariation",
			"postingAction", "postMaturityCalc", "preMaturityCalc",
			"dueNoticeDays", "postingInterval", "postingDateType",
			"createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14,
			now(), now()
		)
		RETURNING
			"productId", "branchId", "applicableFrom", "basis",
			"minRate", "maxRate", "minVariation", "maxVariation",
			"postingAction", "postMaturityCalc", "preMaturityCalc",
			"dueNoticeDays", "postingInterval", "postingDateType",
			"createdAt", "updatedAt";
	`

	queryInterestRulesGetByProductID = `SELECT
		"productId", "branchId", "applicableFrom", "basis",
		"minRate", "maxRate", "minVariation", "maxVariation",
		"postingAction", "postMaturityCalc", "preMaturityCalc",
		"dueNoticeDays", "postingInterval", "postingDateType",
		"createdAt", "updatedAt"
	FROM "fd_product_interest_rules"
	WHERE "branchId" = $1 AND "productId" = $2;`

	queryInterestRulesUpdate = `
		UPDATE "fd_product_interest_rules"
		SET "applicableFrom" = $3, "basis" = $4,
			"minRate" = $5, "maxRate" = $6, "minVariation" = $7, "maxVariation" = $8,
			"postingAction" = $9, "postMaturityCalc" = $10, "preMaturityCalc" = $11,
			"dueNoticeDays" = $12, "postingInterval" = $13, "postingDateType" = $14,
			"updatedAt" = now()
		WHERE "branchId" = $1 AND "productId" = $2
		RETURNING
			"productId", "branchId", "applicableFrom", "basis",
			"minRate", "maxRate", "minVariation", "maxVariation",
			"postingAction", "postMaturityCalc", "preMaturityCalc",
			"dueNoticeDays", "postingInterval", "postingDateType",
			"createdAt", "updatedAt";
	`

	queryInterestRulesDelete = `DELETE FROM "fd_product_interest_rules" WHERE "branchId" = $1 AND "productId" = $2;`
)

func buildListInterestRulesQuery(branchID int64, productIDs []int64) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"productId"`,
			`"branchId"`,
			`"applicableFrom"`,
			`"basis"`,
			`"minRate"`,
			`"maxRate"`,
			`"minVariation"`,
			`"maxVariation"`,
			`"postingAction"`,
			`"postMaturityCalc"`,
			`"preMaturityCalc"`,
			`"dueNoticeDays"`,
			`"postingInterval"`,
			`"postingDateType"`,
			`"createdAt"`,
			`"updatedAt"`,
		).
		From(`"fd_product_interest_rules"`).
		Where(sq.Eq{`"branchId"`: branchID, `"productId"`: productIDs})

	return query.ToSql()
}
