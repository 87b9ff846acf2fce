package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	authService "github.com/allisson/inventory/internal/auth/service"
)

type verifyTokenOutput struct {
	Valid     bool           `json:"valid"`
	Subject   string         `json:"subject,omitempty"`
	IssuedAt  *time.Time     `json:"issued_at,omitempty"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	Claims    map[string]any `json:"claims"`
}

// RunVerifyToken checks a bearer token with the same verifier the API uses and prints
// its claims. A rejected token is returned as an error so the process exits non-zero.
func RunVerifyToken(
	verifier authService.TokenVerifier,
	logger *slog.Logger,
	writer io.Writer,
	token string,
	format string,
) error {
	claims, err := verifier.Verify(token)
	if err != nil {
		logger.Warn("token rejected", slog.Any("error", err))
		return fmt.Errorf("token rejected: %w", err)
	}

	out := verifyTokenOutput{
		Valid:   true,
		Subject: claims.Subject,
		Claims:  claims.Raw,
	}
	if !claims.IssuedAt.IsZero() {
		out.IssuedAt = &claims.IssuedAt
	}
	if !claims.ExpiresAt.IsZero() {
		out.ExpiresAt = &claims.ExpiresAt
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
		return nil
	}

	outputVerifyTokenText(writer, out)
	return nil
}

func outputVerifyTokenText(writer io.Writer, out verifyTokenOutput) {
	subject := out.Subject
	if subject == "" {
		subject = "(none)"
	}
	expires := "never"
	if out.ExpiresAt != nil {
		expires = out.ExpiresAt.UTC().Format(time.RFC3339)
	}

	_, _ = fmt.Fprintln(writer, "Token is valid")
	_, _ = fmt.Fprintf(writer, "Subject:    %s\n", subject)
	if out.IssuedAt != nil {
		_, _ = fmt.Fprintf(writer, "Issued at:  %s\n", out.IssuedAt.UTC().Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(writer, "Expires at: %s\n", expires)
}
