package prompt

import (
	"errors"
	"strings"

	"academicevents/internal/domain"
	"academicevents/internal/ports/output"
)

// ErrorMessage resolves err to a user-facing message through the translator.
// Validation errors list every rejected field.
func ErrorMessage(tr output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	msg := tr.T(locale, "errors."+domain.Code(err), nil)

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		parts := make([]string, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			parts = append(parts, f.Field+" "+f.Message)
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	return msg
}
