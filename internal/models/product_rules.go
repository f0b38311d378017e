package models

import "time"

// ProductRules is the optional maturity/notification child of a
// product. At most one row per (ProductID, BranchID).
//
// Downstream notification jobs expect at least one of the reminder
// values to be non-zero; that expectation is owned by the calling
// screen, not enforced here.
type ProductRules struct {
	ProductID           int64
	BranchID            int64
	InterestAccountType string
	ReminderMonths      int
	ReminderDays        int
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

func (r *ProductRules) ConvertToRulesOut() *ProductRulesOut {
	return &ProductRulesOut{
		InterestAccountType: r.InterestAccountType,
		ReminderMonths:      r.ReminderMonths,
		ReminderDays:        r.ReminderDays,
	}
}

type ProductRulesOut struct {
	InterestAccountType string `json:"interestAccountType"`
	ReminderMonths      int    `json:"reminderMonths"`
	ReminderDays        int    `json:"reminderDays"`
}

type ProductRulesPayload struct {
	InterestAccountType string `json:"interestAccountType" validate:"required,max=50"`
	ReminderMonths      int    `json:"reminderMonths" validate:"min=0,max=120"`
	ReminderDays        int    `json:"reminderDays" validate:"min=0,max=366"`
}

func (p *ProductRulesPayload) ToRulesIn() *ProductRulesIn {
	return &ProductRulesIn{
		InterestAccountType: p.InterestAccountType,
		ReminderMonths:      p.ReminderMonths,
		ReminderDays:        p.ReminderDays,
	}
}

type ProductRulesIn struct {
	InterestAccountType string
	ReminderMonths      int
	ReminderDays        int
}

func (in *ProductRulesIn) Row(branchID, productID int64) *ProductRules {
	return &ProductRules{
		ProductID:           productID,
		BranchID:            branchID,
		InterestAccountType: in.InterestAccountType,
		ReminderMonths:      in.ReminderMonths,
		ReminderDays:        in.ReminderDays,
	}
}
