package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name          string
		paid          float64
		principalDue  float64
		interestDue   float64
		wantPrincipal float64
		wantInterest  float64
	}{
		{
			name: "payment mirrors the installment",
			paid: 1000, principalDue: 800, interestDue: 200,
			wantPrincipal: 800, wantInterest: 200,
		},
		{
			name: "overpayment sends excess to principal",
			paid: 1200, principalDue: 800, interestDue: 200,
			wantPrincipal: 1000, wantInterest: 200,
		},
		{
			name: "underpayment satisfies interest first",
			paid: 150, principalDue: 800, interestDue: 200,
			wantPrincipal: 0, wantInterest: 150,
		},
		{
			name: "underpayment covers interest then principal",
			paid: 500, principalDue: 800, interestDue: 200,
			wantPrincipal: 300, wantInterest: 200,
		},
		{
			name: "interest only installment",
			paid: 200, principalDue: 0, interestDue: 200,
			wantPrincipal: 0, wantInterest: 200,
		},
		{
			name: "sign of the payment is ignored",
			paid: -1000, principalDue: 800, interestDue: 200,
			wantPrincipal: 800, wantInterest: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ComputeSplit(tt.paid, tt.principalDue, tt.interestDue)

			assert.InDelta(t, tt.wantPrincipal, split.Principal, 0.001)
			assert.InDelta(t, tt.wantInterest, split.Interest, 0.001)
			assert.Zero(t, split.Fees)
			assert.NoError(t, split.Validate(tt.paid), "split must sum to the payment within a cent")
		})
	}
}
