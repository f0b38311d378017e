package models

import "time"

// ProductPostingHeads maps a product to the three ledger heads its
// financial events post against. At most one row per
// (ProductID, BranchID).
//
// The three heads are expected to be mutually distinct; duplicates
// corrupt downstream postings. The admin screens enforce that, the
// persistence layer stores what it is given.
type ProductPostingHeads struct {
	ProductID           int64
	BranchID            int64
	PrincipalHead       string
	SuspenseHead        string
	InterestPayableHead string
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

func (h *ProductPostingHeads) ConvertToPostingHeadsOut() *PostingHeadsOut {
	return &PostingHeadsOut{
		PrincipalHead:       h.PrincipalHead,
		SuspenseHead:        h.SuspenseHead,
		InterestPayableHead: h.InterestPayableHead,
	}
}

type PostingHeadsOut struct {
	PrincipalHead       string `json:"principalHead"`
	SuspenseHead        string `json:"suspenseHead"`
	InterestPayableHead string `json:"interestPayableHead"`
}

type PostingHeadsPayload struct {
	PrincipalHead       string `json:"principalHead" validate:"required,max=20"`
	SuspenseHead        string `json:"suspenseHead" validate:"required,max=20"`
	InterestPayableHead string `json:"interestPayableHead" validate:"required,max=20"`
}

func (p *PostingHeadsPayload) ToPostingHeadsIn() *PostingHeadsIn {
	return &PostingHeadsIn{
		PrincipalHead:       p.PrincipalHead,
		SuspenseHead:        p.SuspenseHead,
		InterestPayableHead: p.InterestPayableHead,
	}
}

type PostingHeadsIn struct {
	PrincipalHead       string
	SuspenseHead        string
	InterestPayableHead string
}

func (in *PostingHeadsIn) Row(branchID, productID int64) *ProductPostingHeads {
	return &ProductPostingHeads{
		ProductID:           productID,
		BranchID:            branchID,
		PrincipalHead:       in.PrincipalHead,
		SuspenseHead:        in.SuspenseHead,
		InterestPayableHead: in.InterestPayableHead,
	}
}
