package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/paymonsta/statement-analyzer/dto"
	"github.com/paymonsta/statement-analyzer/utils"
)

var (
	// ErrExtractionFailed signals that every AI extraction attempt was
	// exhausted. It is recovered internally by the orchestrator and never
	// reaches the HTTP layer.
	ErrExtractionFailed = errors.New("transaction extraction failed")

	// ErrInvalidPDF signals that the uploaded bytes are not a usable PDF.
	ErrInvalidPDF = errors.New("invalid PDF document")
)

// InferenceClient is the boundary to the external model service.
type InferenceClient interface {
	ExtractTransactions(ctx context.Context, rawText string) ([]dto.Transaction, error)
	AnalyzeBankStatement(ctx context.Context, transactions []dto.Transaction) (*dto.CreditScoreAnalysis, error)
}

type StatementService struct {
	inference    InferenceClient
	pdfProcessor PDFProcessor
	maxAttempts  int
	log          zerolog.Logger

	// sleep waits between retry attempts; injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewStatementService(
	inference InferenceClient,
	pdfProcessor PDFProcessor,
	maxAttempts int,
	log zerolog.Logger,
) *StatementService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &StatementService{
		inference:    inference,
		pdfProcessor: pdfProcessor,
		maxAttempts:  maxAttempts,
		log:          log,
		sleep:        sleepContext,
	}
}

// AnalyzeStatement runs the full pipeline for one uploaded statement:
// PDF validation, text extraction, transaction extraction and the scoring
// call. Only PDF validation and scoring failures surface to the caller;
// everything in between degrades gracefully.
func (s *StatementService) AnalyzeStatement(ctx context.Context, pdfData []byte) (*dto.AnalyzeResponse, error) {
	if err := s.pdfProcessor.Validate(pdfData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	if pages, err := s.pdfProcessor.PageCount(pdfData); err == nil {
		s.log.Info().Int("pages", pages).Int("bytes", len(pdfData)).Msg("Processing statement PDF")
	}

	rawText, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		// A statement without extractable text still flows through the
		// strategy chain and ends at the static fallback.
		s.log.Warn().Err(err).Msg("PDF text extraction failed")
		rawText = ""
	}

	transactions, source := s.ExtractTransactions(ctx, rawText)

	totalCredits, totalDebits := utils.LedgerTotals(transactions)
	s.log.Info().
		Int("count", len(transactions)).
		Str("source", string(source)).
		Float64("total_credits", totalCredits).
		Float64("total_debits", totalDebits).
		Msg("Extracted transaction ledger")

	analysis, err := s.inference.AnalyzeBankStatement(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("statement analysis failed: %w", err)
	}

	return &dto.AnalyzeResponse{
		Success:          true,
		Analysis:         analysis,
		Transactions:     transactions,
		TransactionCount: len(transactions),
		Source:           source,
		TotalCredits:     totalCredits,
		TotalDebits:      totalDebits,
	}, nil
}

// ExtractTransactions composes the three extraction strategies in order of
// decreasing fidelity: AI extraction with retry, deterministic pattern
// parsing, then the fixed fallback ledger. It never fails the caller and
// never returns an empty ledger.
func (s *StatementService) ExtractTransactions(ctx context.Context, rawText string) ([]dto.Transaction, dto.ExtractionSource) {
	transactions, err := s.extractWithRetry(ctx, rawText)
	if err != nil {
		s.log.Warn().Err(err).Msg("AI extraction exhausted, falling back to pattern parser")
	}
	if err == nil && len(transactions) > 0 {
		return transactions, dto.SourceAI
	}

	if parsed := utils.ParseTransactions(rawText); len(parsed) > 0 {
		s.log.Info().Int("count", len(parsed)).Msg("Pattern parser recovered transactions")
		return parsed, dto.SourcePattern
	}

	s.log.Warn().Msg("No transactions extracted by any strategy, substituting fallback ledger")
	return utils.FallbackLedger(), dto.SourceFallback
}

// extractWithRetry calls the inference service up to maxAttempts times
// with exponential backoff (1s, 2s, 4s, ...). The first success wins; the
// last error is retained and wrapped in ErrExtractionFailed once every
// attempt is exhausted. A cancelled context aborts the backoff wait and
// counts as exhaustion.
func (s *StatementService) extractWithRetry(ctx context.Context, rawText string) ([]dto.Transaction, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		transactions, err := s.inference.ExtractTransactions(ctx, rawText)
		if err == nil {
			s.log.Info().Int("attempt", attempt).Msg("AI extraction succeeded")
			return transactions, nil
		}

		lastErr = err
		s.log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", s.maxAttempts).
			Msg("AI extraction attempt failed")

		if attempt < s.maxAttempts {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			if err := s.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("%w after %d attempts: %v", ErrExtractionFailed, attempt, lastErr)
			}
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrExtractionFailed, s.maxAttempts, lastErr)
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
