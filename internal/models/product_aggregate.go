package models

// ProductAggregate is the combined logical object: one core row plus
// up to three optional children. A nil child is genuinely absent,
// which is distinct from a loaded-but-zero-valued row.
type ProductAggregate struct {
	Core          Product
	Rules         *ProductRules
	PostingHeads  *ProductPostingHeads
	InterestRules *ProductInterestRules
}

func (a *ProductAggregate) ConvertToAggregateOut() *ProductAggregateOut {
	out := &ProductAggregateOut{
		ProductOut: *a.Core.ConvertToProductOut(),
	}
	if a.Rules != nil {
		out.Rules = a.Rules.ConvertToRulesOut()
	}
	if a.PostingHeads != nil {
		out.PostingHeads = a.PostingHeads.ConvertToPostingHeadsOut()
	}
	if a.InterestRules != nil {
		out.InterestRules = a.InterestRules.ConvertToInterestRulesOut()
	}

	return out
}

type ProductAggregateOut struct {
	ProductOut
	Rules         *ProductRulesOut  `json:"rules,omitempty"`
	PostingHeads  *PostingHeadsOut  `json:"postingHeads,omitempty"`
	InterestRules *InterestRulesOut `json:"interestRules,omitempty"`
}

// ProductFilterOptions filters and pages the listing façade.
type ProductFilterOptions struct {
	BranchID int64
	Search   string
	Page     int
	PageSize int
}

// Normalize applies the page defaults and caps.
func (o *ProductFilterOptions) Normalize(defaultPageSize, maxPageSize int) {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = defaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
}

func (o ProductFilterOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// ProductList is one page of aggregates plus the filtered total
// computed before pagination.
type ProductList struct {
	Items []ProductAggregate
	Total int
}
