package dto

// TransactionType classifies a transaction by the direction of money movement.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// ExtractionSource identifies which strategy produced the transaction ledger.
type ExtractionSource string

const (
	SourceAI       ExtractionSource = "ai"
	SourcePattern  ExtractionSource = "pattern"
	SourceFallback ExtractionSource = "fallback"
)

// Transaction is one dated, signed financial movement recovered from a
// bank statement. Amount is negative for debits and positive for credits;
// Balance is the running balance as stated in the source text.
type Transaction struct {
	Date            string          `json:"date"` // ISO 8601, YYYY-MM-DD
	Description     string          `json:"description"`
	Amount          float64         `json:"amount"`
	Balance         float64         `json:"balance"`
	TransactionType TransactionType `json:"transaction_type"`
}

// IsCredit reports whether the transaction moves money into the account.
func (t Transaction) IsCredit() bool {
	return t.TransactionType == TypeCredit
}

// IncomeBreakdown details the income side of the credit score analysis.
type IncomeBreakdown struct {
	SalaryIncome      float64 `json:"salary_income,omitempty"`
	OtherIncome       float64 `json:"other_income,omitempty"`
	FundTransfersIn   float64 `json:"fund_transfers_in"`
	TotalCredits      float64 `json:"total_credits"`
	CalculationMethod string  `json:"calculation_method"`
}

// ExpenseBreakdown details the expense side of the credit score analysis.
type ExpenseBreakdown struct {
	ActualExpenses    float64 `json:"actual_expenses"`
	FundTransfersOut  float64 `json:"fund_transfers_out"`
	TotalDebits       float64 `json:"total_debits"`
	CalculationMethod string  `json:"calculation_method"`
}

// CreditScoreAnalysis is the scoring collaborator's assessment of a
// transaction ledger.
type CreditScoreAnalysis struct {
	OverallScore            int               `json:"overall_score"`
	ScoreCategory           string            `json:"score_category"`
	MonthlyIncome           float64           `json:"monthly_income,omitempty"`
	MonthlyExpenses         float64           `json:"monthly_expenses,omitempty"`
	IncomeBreakdown         *IncomeBreakdown  `json:"income_breakdown,omitempty"`
	ExpenseBreakdown        *ExpenseBreakdown `json:"expense_breakdown,omitempty"`
	SavingsRate             float64           `json:"savings_rate,omitempty"`
	DebtToIncomeRatio       float64           `json:"debt_to_income_ratio,omitempty"`
	PaymentConsistencyScore int               `json:"payment_consistency_score"`
	AccountStabilityMonths  int               `json:"account_stability_months"`
	RiskFactors             []string          `json:"risk_factors"`
	PositiveFactors         []string          `json:"positive_factors"`
	Recommendations         []string          `json:"recommendations"`
	DetailedAnalysis        string            `json:"detailed_analysis"`
}
