package dto

// ErrorResponse is the error payload returned on any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeResponse is the final response for a statement analysis request.
// Source reports which extraction strategy produced the ledger so that
// illustrative fallback data is distinguishable from genuinely extracted
// transactions.
type AnalyzeResponse struct {
	Success          bool                 `json:"success"`
	Analysis         *CreditScoreAnalysis `json:"analysis"`
	Transactions     []Transaction        `json:"transactions"`
	TransactionCount int                  `json:"transactionCount"`
	Source           ExtractionSource     `json:"source"`
	TotalCredits     float64              `json:"totalCredits"`
	TotalDebits      float64              `json:"totalDebits"`
	RequestID        string               `json:"requestId"`
}
