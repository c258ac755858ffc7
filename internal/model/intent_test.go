package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligibleIntents(t *testing.T) {
	credits := EligibleIntents(1000)
	debits := EligibleIntents(-1000)

	assert.Contains(t, credits, IntentLoanRepayment)
	assert.Contains(t, credits, IntentInvestorFunding)
	assert.NotContains(t, credits, IntentLoanDisbursement)
	assert.NotContains(t, credits, IntentOperatingExpense)

	assert.Contains(t, debits, IntentLoanDisbursement)
	assert.Contains(t, debits, IntentInvestorWithdrawal)
	assert.NotContains(t, debits, IntentLoanRepayment)
	assert.NotContains(t, debits, IntentInvestorFunding)

	// Both directions may be a transfer or remain unknown.
	for _, intents := range [][]Intent{credits, debits} {
		assert.Contains(t, intents, IntentTransfer)
		assert.Contains(t, intents, IntentUnknown)
	}
}

func TestIntentEligible(t *testing.T) {
	assert.True(t, IntentEligible(IntentLoanRepayment, 500))
	assert.False(t, IntentEligible(IntentLoanRepayment, -500))
	assert.True(t, IntentEligible(IntentPlatformFee, -150))
	assert.False(t, IntentEligible(IntentPlatformFee, 150))
}

func TestPotForIntent(t *testing.T) {
	tests := []struct {
		intent Intent
		want   Pot
	}{
		{IntentLoanRepayment, PotLoans},
		{IntentLoanDisbursement, PotLoans},
		{IntentInterestOnlyPayment, PotLoans},
		{IntentInvestorFunding, PotInvestors},
		{IntentInvestorWithdrawal, PotInvestors},
		{IntentInvestorInterest, PotInvestors},
		{IntentOperatingExpense, PotExpenses},
		{IntentPlatformFee, PotExpenses},
		{IntentTransfer, PotUnclassified},
		{IntentUnknown, PotUnclassified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PotForIntent(tt.intent), "intent %s", tt.intent)
	}
}
