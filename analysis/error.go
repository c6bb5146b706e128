package analysis

import (
	"net/http"

	"github.com/skilllens/skilllens/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ANALYSIS")

// Error codes
var (
	CodeFileRequired           = ErrRegistry.Register("FILE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume file is required")
	CodeJobDescriptionRequired = ErrRegistry.Register("JOB_DESCRIPTION_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Job description is required")
	CodeUnsupportedFileType    = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported file type. Please upload a PDF or DOCX file")
	CodeFileTooLarge           = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File size exceeds the 10MB limit")
	CodeDecodeFailed           = ErrRegistry.Register("DECODE_FAILED", errx.TypeValidation, http.StatusBadRequest, "Could not extract text from the uploaded file")
	CodeTextTooShort           = ErrRegistry.Register("TEXT_TOO_SHORT", errx.TypeValidation, http.StatusBadRequest, "Extracted text is too short to analyze")
	CodeTextRequired           = ErrRegistry.Register("TEXT_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Text field is required")
	CodeAnalysisFailed         = ErrRegistry.Register("ANALYSIS_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Analysis failed")
	CodeAnalysisNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Analysis not found")
	CodeHistoryUnavailable     = ErrRegistry.Register("HISTORY_UNAVAILABLE", errx.TypeInternal, http.StatusServiceUnavailable, "Analysis history is not available")
)

// Helper functions
func ErrFileRequired() *errx.Error {
	return ErrRegistry.New(CodeFileRequired)
}

func ErrJobDescriptionRequired() *errx.Error {
	return ErrRegistry.New(CodeJobDescriptionRequired)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrDecodeFailed() *errx.Error {
	return ErrRegistry.New(CodeDecodeFailed)
}

func ErrTextTooShort() *errx.Error {
	return ErrRegistry.New(CodeTextTooShort)
}

func ErrTextRequired() *errx.Error {
	return ErrRegistry.New(CodeTextRequired)
}

func ErrAnalysisFailed() *errx.Error {
	return ErrRegistry.New(CodeAnalysisFailed)
}

func ErrAnalysisNotFound() *errx.Error {
	return ErrRegistry.New(CodeAnalysisNotFound)
}

func ErrHistoryUnavailable() *errx.Error {
	return ErrRegistry.New(CodeHistoryUnavailable)
}
