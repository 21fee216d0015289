package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/paymonsta/statement-analyzer/dto"
	"github.com/paymonsta/statement-analyzer/service"
)

type AnalyzeHandler struct {
	statementService *service.StatementService
	log              zerolog.Logger
}

func NewAnalyzeHandler(statementService *service.StatementService, log zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		statementService: statementService,
		log:              log,
	}
}

// AnalyzeStatement handles the POST /statements/analyze endpoint.
// It accepts a single PDF bank statement as a multipart upload and responds
// with the extracted transaction ledger and its credit score analysis.
func (h *AnalyzeHandler) AnalyzeStatement(c *gin.Context) {
	requestID := uuid.NewString()
	log := h.log.With().Str("request_id", requestID).Logger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided")
		return
	}

	request := &dto.AnalyzeRequest{File: fileHeader}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	log.Info().Str("filename", fileHeader.Filename).Int64("size", fileHeader.Size).
		Msg("Received statement analysis request")

	response, err := h.statementService.AnalyzeStatement(c.Request.Context(), pdfData)
	if err != nil {
		log.Error().Err(err).Msg("Statement analysis failed")
		if errors.Is(err, service.ErrInvalidPDF) {
			h.sendError(c, http.StatusBadRequest, "Only PDF files are supported")
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to analyze bank statement")
		return
	}

	response.RequestID = requestID

	log.Info().Int("transactions", response.TransactionCount).Str("source", string(response.Source)).
		Msg("Statement analysis completed")
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response.
func (h *AnalyzeHandler) sendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}
