// Package txparser locates transaction records in raw statement text.
//
// Parsing is pure and line-oriented: each line either yields exactly one
// transaction or is silently skipped. A line qualifies when it carries a
// recognizable date, at least one amount strictly after that date, and a
// non-empty description between the two.
package txparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// Raw dates are day/month/year with 1-2 digit day and month and a 2-4 digit
// year, or year-first with a 4-digit year. The year-first alternative comes
// first so a leading 4-digit year is not split into a short day/month pair.
var dateRe = regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)

// Amounts carry an optional sign, an optional currency symbol, digit groups
// with optional thousands separators, a literal decimal point and exactly two
// fraction digits.
var amountRe = regexp.MustCompile(`[-+]?[$€£]?\d+(?:,\d{3})*\.\d{2}`)

// Parse scans text line by line and returns the transactions found, in line
// order. Lines that do not look like transactions are dropped without error.
// Dates are left verbatim; normalization happens later, at ingestion merge.
func Parse(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		tx, ok := parseLine(line)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions
}

// parseLine applies the date/amount/description rules to a single line.
func parseLine(line string) (models.Transaction, bool) {
	dateLoc := dateRe.FindStringIndex(line)
	if dateLoc == nil {
		return models.Transaction{}, false
	}

	amountLocs := amountRe.FindAllStringIndex(line, -1)
	if len(amountLocs) == 0 {
		return models.Transaction{}, false
	}

	// The first amount must start strictly after the date match ends,
	// otherwise the description window would be empty or negative.
	first := amountLocs[0]
	if first[0] <= dateLoc[1] {
		return models.Transaction{}, false
	}

	description := strings.TrimSpace(line[dateLoc[1]:first[0]])
	if description == "" {
		return models.Transaction{}, false
	}

	amount, err := models.ParseAmount(line[first[0]:first[1]])
	if err != nil {
		return models.Transaction{}, false
	}

	// When more than one amount matched, the last one is the running balance.
	var balance *decimal.Decimal
	if len(amountLocs) > 1 {
		last := amountLocs[len(amountLocs)-1]
		if b, err := models.ParseAmount(line[last[0]:last[1]]); err == nil {
			balance = &b
		}
	}

	raw := line[dateLoc[0]:dateLoc[1]]
	return models.Transaction{
		RawDate:     raw,
		Date:        raw,
		Description: description,
		Amount:      amount,
		Balance:     balance,
	}, true
}
