package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paymonsta/statement-analyzer/dto"
)

func TestFallbackLedgerConsistency(t *testing.T) {
	ledger := FallbackLedger()

	assert.Len(t, ledger, 5)
	assert.Equal(t, dto.TypeCredit, ledger[0].TransactionType)

	// Running balances must chain: each stated balance equals the
	// previous balance plus the signed amount.
	for i := 1; i < len(ledger); i++ {
		assert.InDelta(t, ledger[i-1].Balance+ledger[i].Amount, ledger[i].Balance, 0.001)
	}

	credits, debits := LedgerTotals(ledger)
	assert.InDelta(t, 5500.00, credits, 0.001)
	assert.InDelta(t, 855.40, debits, 0.001)
}

func TestLedgerTotals(t *testing.T) {
	transactions := []dto.Transaction{
		{Amount: 1000.00, TransactionType: dto.TypeCredit},
		{Amount: -250.50, TransactionType: dto.TypeDebit},
		{Amount: 99.90, TransactionType: dto.TypeCredit},
		{Amount: -49.50, TransactionType: dto.TypeDebit},
	}

	credits, debits := LedgerTotals(transactions)

	assert.InDelta(t, 1099.90, credits, 0.001)
	assert.InDelta(t, 300.00, debits, 0.001)
}

func TestLedgerTotalsEmpty(t *testing.T) {
	credits, debits := LedgerTotals(nil)
	assert.Zero(t, credits)
	assert.Zero(t, debits)
}
