package cli

import (
	"errors"
	"log/slog"
)

// ErrorAttr returns err as a log attribute keyed "error". Errors returned
// by commands arrive wrapped by kong, so the first [slog.LogValuer] in the
// chain is logged to keep its structured fields.
func ErrorAttr(err error) slog.Attr {
	var lv slog.LogValuer
	if errors.As(err, &lv) {
		return slog.Any("error", lv)
	}

	return slog.Any("error", err)
}
