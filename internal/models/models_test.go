package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"slash month first", "01/02/2023", "2023-01-02"},
		{"dash month first", "01-02-2023", "2023-01-02"},
		{"year first", "2023-05-01", "2023-05-01"},
		{"year first slashes", "2023/5/1", "2023-05-01"},
		{"two digit year", "1/2/23", "2023-01-02"},
		{"unparseable stays verbatim", "13/05/2023", "13/05/2023"},
		{"not a date at all", "soon", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.raw))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"negative with dollar", "-$4.50", "-4.5", false},
		{"thousands separator", "$3,500.00", "3500", false},
		{"euro symbol", "€12.00", "12", false},
		{"pound symbol", "£7.25", "7.25", false},
		{"plain", "100.00", "100", false},
		{"garbage", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestDocumentValidate(t *testing.T) {
	valid := &Document{Pages: []Page{{Index: 1}, {Index: 3}, {Index: 4}}}
	assert.NoError(t, valid.Validate(), "gaps from failed pages are allowed")

	outOfOrder := &Document{Pages: []Page{{Index: 2}, {Index: 1}}}
	assert.Error(t, outOfOrder.Validate())

	duplicate := &Document{Pages: []Page{{Index: 1}, {Index: 1}}}
	assert.Error(t, duplicate.Validate())
}

func TestDocumentTransactions(t *testing.T) {
	doc := &Document{Pages: []Page{
		{Index: 1, Transactions: []Transaction{{Description: "a"}, {Description: "b"}}},
		{Index: 2, Transactions: []Transaction{{Description: "c"}}},
	}}

	all := doc.Transactions()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Description)
	assert.Equal(t, "c", all[2].Description)
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("Gambling"))
	assert.False(t, IsValidCategory(""))
}

func TestTransactionIsIncome(t *testing.T) {
	assert.True(t, Transaction{Amount: decimal.NewFromInt(5)}.IsIncome())
	assert.True(t, Transaction{Amount: decimal.Zero}.IsIncome(), "zero counts as income")
	assert.False(t, Transaction{Amount: decimal.NewFromInt(-5)}.IsIncome())
}
