package dto

import (
	"errors"
	"mime/multipart"
)

var (
	ErrNoFileProvided    = errors.New("no file provided")
	ErrUnsupportedFormat = errors.New("only PDF files are supported")
)

// AnalyzeRequest represents the incoming statement analysis request.
type AnalyzeRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the request.
func (r *AnalyzeRequest) Validate() error {
	if r.File == nil {
		return ErrNoFileProvided
	}
	if r.File.Header.Get("Content-Type") != "application/pdf" {
		return ErrUnsupportedFormat
	}
	return nil
}
