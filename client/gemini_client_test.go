package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymonsta/statement-analyzer/dto"
)

func TestCleanModelJSONStripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"date\": \"2023-06-15\"}]\n```"

	clean := cleanModelJSON(raw, "[", "]")

	assert.Equal(t, `[{"date": "2023-06-15"}]`, clean)
}

func TestCleanModelJSONStripsSurroundingText(t *testing.T) {
	raw := "Here is the ledger you asked for:\n[{\"date\": \"2023-06-15\"}]\nLet me know if you need anything else."

	clean := cleanModelJSON(raw, "[", "]")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(clean), &records))
	assert.Len(t, records, 1)
}

func TestCleanModelJSONObjectDelimiters(t *testing.T) {
	raw := "```\n{\"overall_score\": 720}\n```"

	clean := cleanModelJSON(raw, "{", "}")

	var analysis map[string]any
	require.NoError(t, json.Unmarshal([]byte(clean), &analysis))
	assert.Equal(t, float64(720), analysis["overall_score"])
}

func TestCleanModelJSONAlreadyClean(t *testing.T) {
	raw := `[{"date": "2023-06-15"}]`

	assert.Equal(t, raw, cleanModelJSON(raw, "[", "]"))
}

func TestNormalizeRejectsBadDate(t *testing.T) {
	record := rawTransaction{Date: "15/06/23", Description: "SALARY", Amount: 5500, Balance: 8750}

	_, ok := record.normalize()

	assert.False(t, ok)
}

func TestNormalizeDerivesTypeFromAmountSign(t *testing.T) {
	// The model sometimes labels a negative amount as a credit; the sign
	// is authoritative.
	record := rawTransaction{
		Date:            "2023-06-16",
		Description:     "GRAB RIDE",
		Amount:          -15.50,
		Balance:         8534.50,
		TransactionType: "credit",
	}

	txn, ok := record.normalize()

	require.True(t, ok)
	assert.Equal(t, dto.TypeDebit, txn.TransactionType)
	assert.False(t, txn.IsCredit())
}

func TestNormalizeDefaultsEmptyDescription(t *testing.T) {
	record := rawTransaction{Date: "2023-06-15", Description: "   ", Amount: 100, Balance: 200}

	txn, ok := record.normalize()

	require.True(t, ok)
	assert.Equal(t, "Transaction", txn.Description)
	assert.Equal(t, dto.TypeCredit, txn.TransactionType)
}
