package feedback

import (
	"net/http"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("FEEDBACK")

var (
	CodeInvalidFeedback     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid feedback data")
	CodeInvalidRating       = ErrRegistry.Register("INVALID_RATING", errx.TypeValidation, http.StatusBadRequest, "Rating must be between 1 and 5")
	CodeFeedbackSaveFailed  = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save feedback")
	CodeFeedbackStatsFailed = ErrRegistry.Register("STATS_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to compute feedback statistics")
)

func ErrInvalidFeedback() *errx.Error {
	return ErrRegistry.New(CodeInvalidFeedback)
}

func ErrInvalidRating() *errx.Error {
	return ErrRegistry.New(CodeInvalidRating)
}

func ErrFeedbackSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeFeedbackSaveFailed)
}

func ErrFeedbackStatsFailed() *errx.Error {
	return ErrRegistry.New(CodeFeedbackStatsFailed)
}
