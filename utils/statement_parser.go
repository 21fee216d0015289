package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paymonsta/statement-analyzer/dto"
)

// Patterns for Malaysian bank statement text (Maybank Islamic style),
// where transactions collapse into DD/MM/YY DESCRIPTION AMOUNT SIGN BALANCE
// fragments after PDF text extraction. Compiled once, reused per request.
var (
	// Full transaction fragment: date, description, amount, sign, balance.
	txnPattern = regexp.MustCompile(`(\d{2}/\d{2}/\d{2})([A-Z\s\-/]+?)(\d+\.?\d*)([+\-])(\d+\.?\d*)`)

	// Line-level building blocks for the fallback strategy.
	datePattern    = regexp.MustCompile(`(\d{2}/\d{2}/\d{2})`)
	decimalPattern = regexp.MustCompile(`\d+\.\d+`)
	amountPattern  = regexp.MustCompile(`(\d+\.?\d*)([+\-])(\d+\.?\d*)`)

	// Characters that are noise in a description (everything outside
	// word characters, whitespace, hyphen and slash).
	noisePattern = regexp.MustCompile(`[^\w\s\-/]`)
)

// ParseTransactions deterministically recovers transactions from raw
// statement text. It scans the full text for transaction fragments first
// and only falls back to line-by-line extraction when that finds nothing.
// It never fails: unparseable input yields an empty slice.
func ParseTransactions(rawText string) []dto.Transaction {
	transactions := parseFullText(rawText)
	if len(transactions) == 0 {
		transactions = parseLineByLine(rawText)
	}
	return transactions
}

// parseFullText applies the full fragment pattern globally over the text.
// Every non-overlapping match produces one transaction.
func parseFullText(rawText string) []dto.Transaction {
	var transactions []dto.Transaction

	for _, m := range txnPattern.FindAllStringSubmatch(rawText, -1) {
		txn, ok := buildTransaction(m[1], m[2], m[3], m[4], m[5])
		if !ok {
			continue
		}
		transactions = append(transactions, txn)
	}

	return transactions
}

// parseLineByLine scans each line for a date and a decimal amount, then
// searches the line for an AMOUNT SIGN BALANCE group. Lines without a
// recoverable amount group are silently skipped.
func parseLineByLine(rawText string) []dto.Transaction {
	var transactions []dto.Transaction

	for _, line := range strings.Split(rawText, "\n") {
		if !datePattern.MatchString(line) || !decimalPattern.MatchString(line) {
			continue
		}

		dateStr := datePattern.FindString(line)
		amountMatch := amountPattern.FindStringSubmatch(line)
		if amountMatch == nil {
			continue
		}

		// Description is the line with the matched date and amount
		// fragments removed and remaining noise stripped.
		description := strings.Replace(line, dateStr, "", 1)
		description = strings.Replace(description, amountMatch[0], "", 1)
		description = strings.TrimSpace(noisePattern.ReplaceAllString(description, " "))

		txn, ok := buildTransaction(dateStr, description, amountMatch[1], amountMatch[2], amountMatch[3])
		if !ok {
			continue
		}
		transactions = append(transactions, txn)
	}

	return transactions
}

// buildTransaction assembles one transaction from matched fragments.
// Returns false when any fragment fails to parse; the caller skips the
// match rather than surfacing an error.
func buildTransaction(dateStr, description, amountStr, sign, balanceStr string) (dto.Transaction, bool) {
	isoDate, ok := ConvertStatementDate(dateStr)
	if !ok {
		return dto.Transaction{}, false
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return dto.Transaction{}, false
	}
	balance, err := strconv.ParseFloat(balanceStr, 64)
	if err != nil {
		return dto.Transaction{}, false
	}

	txnType := dto.TypeCredit
	if sign != "+" {
		txnType = dto.TypeDebit
		amount = -amount
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = "Transaction"
	}

	return dto.Transaction{
		Date:            isoDate,
		Description:     description,
		Amount:          amount,
		Balance:         balance,
		TransactionType: txnType,
	}, true
}

// ConvertStatementDate converts a DD/MM/YY date to ISO YYYY-MM-DD.
// Two-digit years above 50 map to the 1900s, the rest to the 2000s.
func ConvertStatementDate(dateStr string) (string, bool) {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}

	if year > 50 {
		year += 1900
	} else {
		year += 2000
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
