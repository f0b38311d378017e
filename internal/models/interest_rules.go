package models

import "time"

// Selector values accepted by the interest-rule form.
const (
	InterestBasisDailyProduct   = "DAILY_PRODUCT"
	InterestBasisMonthlyProduct = "MONTHLY_PRODUCT"

	PostingActionCapitalize = "CAPITALIZE"
	PostingActionTransfer   = "TRANSFER"

	CalcTypeSimple   = "SIMPLE"
	CalcTypeCompound = "COMPOUND"

	PostingIntervalMonthly    = "MONTHLY"
	PostingIntervalQuarterly  = "QUARTERLY"
	PostingIntervalHalfYearly = "HALF_YEARLY"
	PostingIntervalYearly     = "YEARLY"

	PostingDateTypeCalendar    = "CALENDAR"
	PostingDateTypeAnniversary = "ANNIVERSARY"
)

// ProductInterestRules is the optional interest-rate child of a
// product. At most one row per (ProductID, BranchID). Rate bounds are
// validated by the request layer; rows store values as given.
type ProductInterestRules struct {
	ProductID        int64
	BranchID         int64
	ApplicableFrom   time.Time
	Basis            string
	MinRate          Decimal
	MaxRate          Decimal
	MinVariation     Decimal
	MaxVariation     Decimal
	PostingAction    string
	PostMaturityCalc string
	PreMaturityCalc  string
	DueNoticeDays    int
	PostingInterval  string
	PostingDateType  string
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}

func (r *ProductInterestRules) ConvertToInterestRulesOut() *InterestRulesOut {
	return &InterestRulesOut{
		ApplicableFrom:   r.ApplicableFrom.Format(DateLayout),
		Basis:            r.Basis,
		MinRate:          r.MinRate,
		MaxRate:          r.MaxRate,
		MinVariation:     r.MinVariation,
		MaxVariation:     r.MaxVariation,
		PostingAction:    r.PostingAction,
		PostMaturityCalc: r.PostMaturityCalc,
		PreMaturityCalc:  r.PreMaturityCalc,
		DueNoticeDays:    r.DueNoticeDays,
		PostingInterval:  r.PostingInterval,
		PostingDateType:  r.PostingDateType,
	}
}

type InterestRulesOut struct {
	ApplicableFrom   string  `json:"applicableFrom"`
	Basis            string  `json:"basis"`
	MinRate          Decimal `json:"minRate"`
	MaxRate          Decimal `json:"maxRate"`
	MinVariation     Decimal `json:"minVariation"`
	MaxVariation     Decimal `json:"maxVariation"`
	PostingAction    string  `json:"postingAction"`
	PostMaturityCalc string  `json:"postMaturityCalc"`
	PreMaturityCalc  string  `json:"preMaturityCalc"`
	DueNoticeDays    int     `json:"dueNoticeDays"`
	PostingInterval  string  `json:"postingInterval"`
	PostingDateType  string  `json:"postingDateType"`
}

type InterestRulesPayload struct {
	ApplicableFrom   string  `json:"applicableFrom" validate:"required,date"`
	Basis            string  `json:"basis" validate:"required,oneof=DAILY_PRODUCT MONTHLY_PRODUCT"`
	MinRate          Decimal `json:"minRate"`
	MaxRate          Decimal `json:"maxRate"`
	MinVariation     Decimal `json:"minVariation"`
	MaxVariation     Decimal `json:"maxVariation"`
	PostingAction    string  `json:"postingAction" validate:"required,oneof=CAPITALIZE TRANSFER"`
	PostMaturityCalc string  `json:"postMaturityCalc" validate:"required,oneof=SIMPLE COMPOUND"`
	PreMaturityCalc  string  `json:"preMaturityCalc" validate:"required,oneof=SIMPLE COMPOUND"`
	DueNoticeDays    int     `json:"dueNoticeDays" validate:"min=0,max=366"`
	PostingInterval  string  `json:"postingInterval" validate:"required,oneof=MONTHLY QUARTERLY HALF_YEARLY YEARLY"`
	PostingDateType  string  `json:"postingDateType" validate:"required,oneof=CALENDAR ANNIVERSARY"`
}

func (p *InterestRulesPayload) ToInterestRulesIn() (*InterestRulesIn, error) {
	applicableFrom, err := time.Parse(DateLayout, p.ApplicableFrom)
	if err != nil {
		return nil, err
	}

	return &InterestRulesIn{
		ApplicableFrom:   applicableFrom,
		Basis:            p.Basis,
		MinRate:          p.MinRate,
		MaxRate:          p.MaxRate,
		MinVariation:     p.MinVariation,
		MaxVariation:     p.MaxVariation,
		PostingAction:    p.PostingAction,
		PostMaturityCalc: p.PostMaturityCalc,
		PreMaturityCalc:  p.PreMaturityCalc,
		DueNoticeDays:    p.DueNoticeDays,
		PostingInterval:  p.PostingInterval,
		PostingDateType:  p.PostingDateType,
	}, nil
}

type InterestRulesIn struct {
	ApplicableFrom   time.Time
	Basis            string
	MinRate          Decimal
	MaxRate          Decimal
	MinVariation     Decimal
	MaxVariation     Decimal
	PostingAction    string
	PostMaturityCalc string
	PreMaturityCalc  string
	DueNoticeDays    int
	PostingInterval  string
	PostingDateType  string
}

func (in *InterestRulesIn) Row(branchID, productID int64) *ProductInterestRules {
	return &ProductInterestRules{
		ProductID:        productID,
		BranchID:         branchID,
		ApplicableFrom:   in.ApplicableFrom,
		Basis:            in.Basis,
		MinRate:          in.MinRate,
		MaxRate:          in.MaxRate,
		MinVariation:     in.MinVariation,
		MaxVariation:     in.MaxVariation,
		PostingAction:    in.PostingAction,
		PostMaturityCalc: in.PostMaturityCalc,
		PreMaturityCalc:  in.PreMaturityCalc,
		DueNoticeDays:    in.DueNoticeDays,
		PostingInterval:  in.PostingInterval,
		PostingDateType:  in.PostingDateType,
	}
}
