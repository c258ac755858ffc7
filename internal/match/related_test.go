package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillfin/ledgermatch/internal/model"
)

func TestDescriptionsRelated(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "fragments of one payment",
			a:    "ACME CORP INVOICE PART 1",
			b:    "ACME CORP INVOICE PART 2",
			want: true,
		},
		{
			name: "half overlap is enough",
			a:    "ACME CORP",
			b:    "ACME WHOLESALE SUPPLIES",
			want: true,
		},
		{
			name: "unrelated payments",
			a:    "TESCO STORES 2214",
			b:    "ACME CORP INVOICE",
			want: false,
		},
		{
			name: "empty description",
			a:    "",
			b:    "ACME CORP",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescriptionsRelated(tt.a, tt.b))
			assert.Equal(t, tt.want, DescriptionsRelated(tt.b, tt.a), "relatedness must be symmetric")
		})
	}
}

func TestGroupRelated(t *testing.T) {
	entry := func(id, desc string) model.BankEntry {
		return model.BankEntry{ID: id, Description: desc, Amount: 1}
	}

	tests := []struct {
		name    string
		entries []model.BankEntry
		want    bool
	}{
		{
			name: "all related to the first",
			entries: []model.BankEntry{
				entry("e1", "ACME CORP PART 1"),
				entry("e2", "ACME CORP PART 2"),
				entry("e3", "ACME CORP PART 3"),
			},
			want: true,
		},
		{
			name: "one stray entry breaks the group",
			entries: []model.BankEntry{
				entry("e1", "ACME CORP PART 1"),
				entry("e2", "ACME CORP PART 2"),
				entry("e3", "TESCO STORES 2214"),
			},
			want: false,
		},
		{
			name:    "single entry is trivially related",
			entries: []model.BankEntry{entry("e1", "anything")},
			want:    true,
		},
		{
			name:    "empty group",
			entries: nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupRelated(tt.entries))
		})
	}
}
