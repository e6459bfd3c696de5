package leavehistoryerrors

import (
	"net/http"

	"go-cuti/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of ALL, PENDING, APPROVED, REJECTED",
		http.StatusBadRequest,
	)
	ErrHistoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave history is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
)
