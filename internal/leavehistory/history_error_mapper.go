package leavehistory

import (
	"context"
	"errors"
	"net"
	"strings"

	leavehistoryerrors "go-cuti/internal/leavehistory/errors"
	"go-cuti/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapSourceError turns connectivity failures of the data stores into
// ErrHistoryUnavailable. Anything else is returned unchanged.
func mapSourceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	if isUnavailable(err) {
		e := leavehistoryerrors.ErrHistoryUnavailable
		return apperror.Wrap(err, e.Code, e.Message, e.HTTPStatus)
	}
	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection exception, 53xxx insufficient resources, 57P0x operator intervention
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "53") ||
			strings.HasPrefix(pgErr.Code, "57P0")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return pgconn.SafeToRetry(err)
}
