package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/paymonsta/statement-analyzer/dto"
)

// GeminiClient calls the Gemini inference service for structured
// transaction extraction and credit score analysis. The API key is read
// from the environment by the genai SDK (GEMINI_API_KEY).
type GeminiClient struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// NewGeminiClient creates a Gemini-backed inference client.
func NewGeminiClient(ctx context.Context, model string, log zerolog.Logger) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client: c,
		model:  model,
		log:    log,
	}, nil
}

const extractPrompt = "You are a financial statement parser for Malaysian bank statements.\n\n" +
	"Task:\n" +
	"- Parse ALL transactions in the statement text below.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a JSON array of objects.\n\n" +
	"Each object must have these fields:\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"description\": string\n" +
	"- \"amount\": number (positive for credits, negative for debits)\n" +
	"- \"balance\": number (running balance after the transaction)\n" +
	"- \"transaction_type\": string, \"credit\" or \"debit\"\n\n" +
	"Rules:\n" +
	"- The sign of \"amount\" must match \"transaction_type\".\n" +
	"- Statement amounts carry a trailing + (credit) or - (debit) sign.\n" +
	"- Dates appear as DD/MM/YY; years above 50 are 19xx, the rest 20xx.\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Output must begin with \"[\" and end with \"]\".\n"

const analyzePrompt = "You are a credit scoring analyst for Malaysian retail banking.\n\n" +
	"Task:\n" +
	"- Assess the creditworthiness of the account holder from the JSON transaction\n" +
	"  ledger below (amounts in MYR, credits positive, debits negative).\n" +
	"- Output STRICT JSON only: a single object with these fields:\n" +
	"  \"overall_score\" (integer, 300-850), \"score_category\" (string),\n" +
	"  \"monthly_income\" (number), \"monthly_expenses\" (number),\n" +
	"  \"income_breakdown\" ({\"salary_income\", \"other_income\", \"fund_transfers_in\", \"total_credits\", \"calculation_method\"}),\n" +
	"  \"expense_breakdown\" ({\"actual_expenses\", \"fund_transfers_out\", \"total_debits\", \"calculation_method\"}),\n" +
	"  \"savings_rate\" (number), \"debt_to_income_ratio\" (number),\n" +
	"  \"payment_consistency_score\" (integer, 0-100), \"account_stability_months\" (integer),\n" +
	"  \"risk_factors\" (array of strings), \"positive_factors\" (array of strings),\n" +
	"  \"recommendations\" (array of strings), \"detailed_analysis\" (string).\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Output must begin with \"{\" and end with \"}\".\n"

// ExtractTransactions asks the model for a structured transaction ledger
// from raw statement text. Malformed records are repaired or dropped at
// this boundary so callers only ever see well-formed transactions.
func (g *GeminiClient) ExtractTransactions(ctx context.Context, rawText string) ([]dto.Transaction, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractPrompt},
				{Text: rawText},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawResponse := resp.Text()
	if rawResponse == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var records []rawTransaction
	clean := cleanModelJSON(rawResponse, "[", "]")
	if err := json.Unmarshal([]byte(clean), &records); err != nil {
		return nil, fmt.Errorf("unmarshal model output: %w", err)
	}

	transactions := make([]dto.Transaction, 0, len(records))
	for i, r := range records {
		txn, ok := r.normalize()
		if !ok {
			g.log.Warn().Int("index", i).Str("date", r.Date).Msg("Dropping malformed transaction record")
			continue
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

// AnalyzeBankStatement asks the model to score a transaction ledger.
func (g *GeminiClient) AnalyzeBankStatement(ctx context.Context, transactions []dto.Transaction) (*dto.CreditScoreAnalysis, error) {
	ledgerJSON, err := json.Marshal(transactions)
	if err != nil {
		return nil, fmt.Errorf("marshal transactions: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: analyzePrompt},
				{Text: string(ledgerJSON)},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawResponse := resp.Text()
	if rawResponse == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var analysis dto.CreditScoreAnalysis
	clean := cleanModelJSON(rawResponse, "{", "}")
	if err := json.Unmarshal([]byte(clean), &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}

	return &analysis, nil
}

// rawTransaction is the loosely-typed record shape the model returns.
type rawTransaction struct {
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Balance         float64 `json:"balance"`
	TransactionType string  `json:"transaction_type"`
}

// normalize validates and repairs one model record. Records with
// unparseable dates are rejected; an inconsistent or missing
// transaction_type is derived from the amount sign.
func (r rawTransaction) normalize() (dto.Transaction, bool) {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return dto.Transaction{}, false
	}

	txnType := dto.TypeCredit
	if r.Amount < 0 {
		txnType = dto.TypeDebit
	}

	description := strings.TrimSpace(r.Description)
	if description == "" {
		description = "Transaction"
	}

	return dto.Transaction{
		Date:            r.Date,
		Description:     description,
		Amount:          r.Amount,
		Balance:         r.Balance,
		TransactionType: txnType,
	}, true
}

// cleanModelJSON strips Markdown fences and surrounding junk from a model
// response, keeping only the span between the first open and the last
// close delimiter.
func cleanModelJSON(raw, openDelim, closeDelim string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, openDelim); start != -1 {
		if end := strings.LastIndex(s, closeDelim); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
