package model

// Intent is the classified real-world meaning of a bank entry.
type Intent string

// Intent constants.
const (
	IntentLoanRepayment       Intent = "loan_repayment"
	IntentLoanDisbursement    Intent = "loan_disbursement"
	IntentInterestOnlyPayment Intent = "interest_only_payment"
	IntentInvestorFunding     Intent = "investor_funding"
	IntentInvestorWithdrawal  Intent = "investor_withdrawal"
	IntentInvestorInterest    Intent = "investor_interest"
	IntentOperatingExpense    Intent = "operating_expense"
	IntentPlatformFee         Intent = "platform_fee"
	IntentTransfer            Intent = "transfer"
	IntentUnknown             Intent = "unknown"
)

// creditIntents are the intents a money-in entry may carry.
var creditIntents = []Intent{
	IntentLoanRepayment,
	IntentInterestOnlyPayment,
	IntentInvestorFunding,
	IntentTransfer,
	IntentUnknown,
}

// debitIntents are the intents a money-out entry may carry.
var debitIntents = []Intent{
	IntentLoanDisbursement,
	IntentInvestorWithdrawal,
	IntentInvestorInterest,
	IntentOperatingExpense,
	IntentPlatformFee,
	IntentTransfer,
	IntentUnknown,
}

// EligibleIntents returns the intents allowed for an entry with the given
// signed amount. Directionally impossible intents are never offered.
func EligibleIntents(amount float64) []Intent {
	if amount > 0 {
		return creditIntents
	}
	return debitIntents
}

// IntentEligible reports whether the intent is valid for the signed amount.
func IntentEligible(intent Intent, amount float64) bool {
	for _, i := range EligibleIntents(amount) {
		if i == intent {
			return true
		}
	}
	return false
}

// Pot is the workflow bucket an entry is assigned to pending confirmation.
type Pot string

// Pot constants.
const (
	PotUnclassified Pot = "unclassified"
	PotLoans        Pot = "loans"
	PotInvestors    Pot = "investors"
	PotExpenses     Pot = "expenses"
)

// PotForIntent maps a classified intent to its workflow pot.
func PotForIntent(intent Intent) Pot {
	switch intent {
	case IntentLoanRepayment, IntentLoanDisbursement, IntentInterestOnlyPayment:
		return PotLoans
	case IntentInvestorFunding, IntentInvestorWithdrawal, IntentInvestorInterest:
		return PotInvestors
	case IntentOperatingExpense, IntentPlatformFee:
		return PotExpenses
	case IntentTransfer, IntentUnknown:
		return PotUnclassified
	}
	return PotUnclassified
}
