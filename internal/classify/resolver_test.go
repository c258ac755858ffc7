package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfin/ledgermatch/internal/model"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassify_LoanRepaymentEndToEnd(t *testing.T) {
	// A repayment arrives one day after the installment due date with the
	// borrower's surname in the description.
	entry := model.BankEntry{
		ID:          "e1",
		Date:        date("2025-03-15"),
		Amount:      1000,
		Description: "FPI J SMITH LOAN REPAY",
	}
	installment := model.Candidate{
		ID:           "inst-42",
		Kind:         model.KindInstallment,
		DueDate:      date("2025-03-14"),
		PersonalName: "John Smith",
		Amount:       1000,
		PrincipalDue: 800,
		InterestDue:  200,
	}

	c := NewResolver().Classify(entry, []model.Candidate{installment}, nil)

	assert.Equal(t, model.IntentLoanRepayment, c.Intent)
	assert.GreaterOrEqual(t, c.Confidence, 85)
	assert.LessOrEqual(t, c.Confidence, 95, "no automatic match is ever fully certain")

	single, ok := c.Match.(model.SingleMatch)
	require.True(t, ok)
	assert.Equal(t, "inst-42", single.Candidate.ID)

	require.NotNil(t, c.Split)
	assert.InDelta(t, 800, c.Split.Principal, 0.001)
	assert.InDelta(t, 200, c.Split.Interest, 0.001)
	assert.Zero(t, c.Split.Fees)
}

func TestClassify_Deterministic(t *testing.T) {
	entry := model.BankEntry{
		ID: "e1", Date: date("2025-03-15"), Amount: 1000,
		Description: "FPI J SMITH LOAN REPAY",
	}
	candidates := []model.Candidate{
		{ID: "inst-1", Kind: model.KindInstallment, DueDate: date("2025-03-14"),
			PersonalName: "John Smith", Amount: 1000, PrincipalDue: 800, InterestDue: 200},
		{ID: "inst-2", Kind: model.KindInstallment, DueDate: date("2025-03-20"),
			PersonalName: "Jane Doe", Amount: 990, PrincipalDue: 700, InterestDue: 290},
	}

	r := NewResolver()
	first := r.Classify(entry, candidates, nil)
	for i := 0; i < 20; i++ {
		c := r.Classify(entry, candidates, nil)
		assert.Equal(t, first.Intent, c.Intent)
		assert.Equal(t, first.Confidence, c.Confidence)
		assert.Equal(t, first.Match, c.Match)
	}
}

func TestClassify_DirectionRestriction(t *testing.T) {
	// A debit can never be a loan repayment, even against a perfect
	// amount/date/name match on an installment.
	entry := model.BankEntry{
		ID: "e1", Date: date("2025-03-15"), Amount: -1000,
		Description: "ACME TRADING LTD",
	}
	candidates := []model.Candidate{
		{ID: "inst-1", Kind: model.KindInstallment, DueDate: date("2025-03-15"),
			BusinessName: "Acme Trading Ltd", Amount: 1000, PrincipalDue: 800, InterestDue: 200},
	}

	c := NewResolver().Classify(entry, candidates, nil)

	assert.Equal(t, model.IntentUnknown, c.Intent)
	assert.Equal(t, 0, c.Confidence)
	assert.IsType(t, model.NoMatch{}, c.Match)
}

func TestClassify_Intents(t *testing.T) {
	day := date("2025-03-15")

	tests := []struct {
		name   string
		amount float64
		cand   model.Candidate
		want   model.Intent
	}{
		{
			name:   "loan disbursement",
			amount: -5000,
			cand: model.Candidate{ID: "loan-1", Kind: model.KindLoan, DueDate: day,
				BusinessName: "Acme Trading Ltd", Amount: 5000},
			want: model.IntentLoanDisbursement,
		},
		{
			name:   "interest only installment",
			amount: 200,
			cand: model.Candidate{ID: "inst-1", Kind: model.KindInstallment, DueDate: day,
				PersonalName: "John Smith", Amount: 200, PrincipalDue: 0, InterestDue: 200},
			want: model.IntentInterestOnlyPayment,
		},
		{
			name:   "investor funding",
			amount: 25000,
			cand: model.Candidate{ID: "inv-1", Kind: model.KindInvestor, DueDate: day,
				PersonalName: "Mary Jones", Amount: 25000},
			want: model.IntentInvestorFunding,
		},
		{
			name:   "investor withdrawal",
			amount: -25000,
			cand: model.Candidate{ID: "inv-1", Kind: model.KindInvestor, DueDate: day,
				PersonalName: "Mary Jones", Amount: 25000},
			want: model.IntentInvestorWithdrawal,
		},
		{
			name:   "investor interest",
			amount: -180,
			cand: model.Candidate{ID: "inv-1", Kind: model.KindInvestor, DueDate: day,
				PersonalName: "Mary Jones", Amount: 180, InterestDue: 180},
			want: model.IntentInvestorInterest,
		},
		{
			name:   "operating expense",
			amount: -79.99,
			cand: model.Candidate{ID: "exp-1", Kind: model.KindExpenseType, DueDate: day,
				Label: "Software subscriptions", BusinessName: "Cloudhost Ltd", Amount: 79.99},
			want: model.IntentOperatingExpense,
		},
		{
			name:   "platform fee",
			amount: -150,
			cand: model.Candidate{ID: "exp-2", Kind: model.KindExpenseType, DueDate: day,
				Label: "Platform fee", BusinessName: "LendTech Ltd", Amount: 150},
			want: model.IntentPlatformFee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := model.BankEntry{
				ID: "e1", Date: day, Amount: tt.amount,
				Description: tt.cand.DisplayName(),
			}
			c := NewResolver().Classify(entry, []model.Candidate{tt.cand}, nil)
			assert.Equal(t, tt.want, c.Intent)
		})
	}
}

func TestClassify_GroupedPayment(t *testing.T) {
	// Three statement lines share one description family and together
	// cover a single expected installment amount.
	siblings := []model.BankEntry{
		{ID: "e1", Date: date("2025-03-15"), Amount: 200, Description: "ACME CORP PART 1"},
		{ID: "e2", Date: date("2025-03-15"), Amount: 250, Description: "ACME CORP PART 2"},
		{ID: "e3", Date: date("2025-03-16"), Amount: 150, Description: "ACME CORP PART 3"},
	}
	installment := model.Candidate{
		ID:           "inst-9",
		Kind:         model.KindInstallment,
		DueDate:      date("2025-03-15"),
		BusinessName: "Acme Corp",
		Amount:       600,
		PrincipalDue: 500,
		InterestDue:  100,
	}

	c := NewResolver().Classify(siblings[0], []model.Candidate{installment}, siblings)

	assert.Equal(t, model.IntentLoanRepayment, c.Intent)

	group, ok := c.Match.(model.GroupMatch)
	require.True(t, ok, "expected a grouped match, got %T", c.Match)
	assert.Equal(t, "inst-9", group.Candidate.ID)
	assert.Len(t, group.Entries, 3)
	assert.Equal(t, "e1", group.Entries[0].ID, "anchor first")
	assert.InDelta(t, 600, group.Total, 0.001)
}

func TestClassify_GroupRequiresRelatedDescriptions(t *testing.T) {
	// Amounts sum perfectly, but the third line is clearly a different
	// payment: no group may be suggested on a coincidental sum.
	siblings := []model.BankEntry{
		{ID: "e1", Date: date("2025-03-15"), Amount: 200, Description: "ACME CORP PART 1"},
		{ID: "e2", Date: date("2025-03-15"), Amount: 250, Description: "ACME CORP PART 2"},
		{ID: "e3", Date: date("2025-03-16"), Amount: 150, Description: "TESCO STORES 2214"},
	}
	installment := model.Candidate{
		ID: "inst-9", Kind: model.KindInstallment, DueDate: date("2025-03-15"),
		BusinessName: "Acme Corp", Amount: 600,
	}

	c := NewResolver().Classify(siblings[0], []model.Candidate{installment}, siblings)

	_, grouped := c.Match.(model.GroupMatch)
	assert.False(t, grouped, "unrelated descriptions must not corroborate a group")
}

func TestClassify_NoCandidates(t *testing.T) {
	entry := model.BankEntry{
		ID: "e1", Date: date("2025-03-15"), Amount: 42.50,
		Description: "MYSTERY CREDIT",
	}

	c := NewResolver().Classify(entry, nil, nil)

	assert.Equal(t, model.IntentUnknown, c.Intent)
	assert.Equal(t, 0, c.Confidence)
	assert.IsType(t, model.NoMatch{}, c.Match)
	assert.Nil(t, c.Split)
	assert.NoError(t, c.Validate())
}

func TestClassify_ZeroAmount(t *testing.T) {
	c := NewResolver().Classify(model.BankEntry{ID: "e1"}, nil, nil)

	assert.Equal(t, model.IntentUnknown, c.Intent)
	assert.IsType(t, model.NoMatch{}, c.Match)
}
