package model

import "time"

// CandidateKind identifies which system-side record a candidate wraps.
type CandidateKind string

// Candidate kind constants.
const (
	KindLoan        CandidateKind = "loan"
	KindInstallment CandidateKind = "installment"
	KindInvestor    CandidateKind = "investor"
	KindExpenseType CandidateKind = "expense_type"
)

// Candidate is a read-only view over any system record the engine can match
// a bank entry against: a loan, a schedule installment, an investor, or an
// expense type. Amount is the expected amount (total due for installments,
// loan amount for loans, capital balance movement for investors).
type Candidate struct {
	DueDate      time.Time     `json:"due_date,omitempty"`
	ID           string        `json:"id"`
	Kind         CandidateKind `json:"kind"`
	PersonalName string        `json:"personal_name,omitempty"`
	BusinessName string        `json:"business_name,omitempty"`
	Label        string        `json:"label,omitempty"`
	Number       string        `json:"number,omitempty"`
	Status       string        `json:"status,omitempty"`
	Amount       float64       `json:"amount"`
	PrincipalDue float64       `json:"principal_due,omitempty"`
	InterestDue  float64       `json:"interest_due,omitempty"`
}

// DisplayName returns the most specific name available for human output.
func (c *Candidate) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	if c.PersonalName != "" {
		return c.PersonalName
	}
	return c.Label
}
