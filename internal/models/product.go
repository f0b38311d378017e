package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format for the date-only fields of a product.
const DateLayout = "2006-01-02"

// Product is the core row of a fixed-deposit product. Children hang
// off (ID, BranchID).
type Product struct {
	ID                     int64
	BranchID               int64
	Name                   string
	Code                   string
	EffectiveFrom          time.Time
	EffectiveTill          *time.Time
	SeparateAccountAllowed bool
	CreatedAt              *time.Time
	UpdatedAt              *time.Time
}

func (p *Product) ConvertToProductOut() *ProductOut {
	out := &ProductOut{
		Kind:                   "fdProduct",
		ID:                     p.ID,
		BranchID:               p.BranchID,
		Name:                   p.Name,
		Code:                   p.Code,
		EffectiveFrom:          p.EffectiveFrom.Format(DateLayout),
		SeparateAccountAllowed: p.SeparateAccountAllowed,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
	if p.EffectiveTill != nil {
		till := p.EffectiveTill.Format(DateLayout)
		out.EffectiveTill = &till
	}

	return out
}

type ProductOut struct {
	Kind                   string     `json:"kind"`
	ID                     int64      `json:"id"`
	BranchID               int64      `json:"branchId"`
	Name                   string     `json:"name"`
	Code                   string     `json:"code"`
	EffectiveFrom          string     `json:"effectiveFrom"`
	EffectiveTill          *string    `json:"effectiveTill"`
	SeparateAccountAllowed bool       `json:"separateAccountAllowed"`
	CreatedAt              *time.Time `json:"createdAt"`
	UpdatedAt              *time.Time `json:"updatedAt"`
}

// SaveProductRequest is the body for both create and update. The same
// modal form feeds both screens, so the shape is shared; children are
// optional and omitted children stay untouched.
type SaveProductRequest struct {
	Name                   string `json:"name" validate:"required,max=255,nospecial,noStartEndSpaces"`
	Code                   string `json:"code" validate:"omitempty,max=10,productCode"`
	EffectiveFrom          string `json:"effectiveFrom" validate:"required,date"`
	EffectiveTill          string `json:"effectiveTill" validate:"omitempty,date"`
	SeparateAccountAllowed bool   `json:"separateAccountAllowed"`

	Rules         *ProductRulesPayload  `json:"rules"`
	PostingHeads  *PostingHeadsPayload  `json:"postingHeads"`
	InterestRules *InterestRulesPayload `json:"interestRules"`
}

// ToProductIn parses the date fields. Format errors should not happen
// on a validated request but are still returned rather than swallowed.
func (r *SaveProductRequest) ToProductIn() (*SaveProductIn, error) {
	effectiveFrom, err := time.Parse(DateLayout, r.EffectiveFrom)
	if err != nil {
		return nil, err
	}

	in := &SaveProductIn{
		Name:                   r.Name,
		Code:                   r.Code,
		EffectiveFrom:          effectiveFrom,
		SeparateAccountAllowed: r.SeparateAccountAllowed,
	}

	if r.EffectiveTill != "" {
		till, err := time.Parse(DateLayout, r.EffectiveTill)
		if err != nil {
			return nil, err
		}
		in.EffectiveTill = &till
	}

	if r.Rules != nil {
		in.Rules = r.Rules.ToRulesIn()
	}

	if r.PostingHeads != nil {
		in.PostingHeads = r.PostingHeads.ToPostingHeadsIn()
	}

	if r.InterestRules != nil {
		interestIn, err := r.InterestRules.ToInterestRulesIn()
		if err != nil {
			return nil, err
		}
		in.InterestRules = interestIn
	}

	return in, nil
}

// ListProductsRequest carries the listing query string.
type ListProductsRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}

func (r ListProductsRequest) ToFilterOptions(branchID int64) ProductFilterOptions {
	return ProductFilterOptions{
		BranchID: branchID,
		Search:   strings.TrimSpace(r.Search),
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// ProductConflicts is the result of the branch-scope uniqueness
// lookup. Blank values never count as taken.
type ProductConflicts struct {
	NameTaken bool
	CodeTaken bool
}

func (c ProductConflicts) Fields() []string {
	var fields []string
	if c.NameTaken {
		fields = append(fields, "name")
	}
	if c.CodeTaken {
		fields = append(fields, "code")
	}

	return fields
}

// SaveProductIn is the service-layer input for create and update.
// A nil child means "not supplied".
type SaveProductIn struct {
	Name                   string
	Code                   string
	EffectiveFrom          time.Time
	EffectiveTill          *time.Time
	SeparateAccountAllowed bool

	Rules         *ProductRulesIn
	PostingHeads  *PostingHeadsIn
	InterestRules *InterestRulesIn
}

// Product builds the core row. id is zero on create.
func (in *SaveProductIn) Product(branchID, id int64) *Product {
	return &Product{
		ID:                     id,
		BranchID:               branchID,
		Name:                   in.Name,
		Code:                   in.Code,
		EffectiveFrom:          in.EffectiveFrom,
		EffectiveTill:          in.EffectiveTill,
		SeparateAccountAllowed: in.SeparateAccountAllowed,
	}
}
