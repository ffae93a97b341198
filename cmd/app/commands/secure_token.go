package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
	"github.com/allisson/go-credential/internal/token/usecase"
)

// RunSecureToken generates a secure random token in the requested encoding.
// A byte length of zero uses the configured default. In text format the token
// is printed on a single line for piping into other tools. The generated token
// never reaches the logger.
func RunSecureToken(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	byteLength int,
	encoding string,
	format string,
) error {
	// Parse the requested token encoding
	tokenFormat, err := parseTokenFormat(encoding)
	if err != nil {
		return err
	}

	// Generate the token
	var token string
	if tokenFormat == tokenDomain.FormatHex {
		token, err = tokenUseCase.GenerateSecureToken(ctx, byteLength)
	} else {
		token, err = tokenUseCase.GenerateToken(ctx, tokenFormat, byteLength)
	}
	if err != nil {
		return err
	}

	// Output result based on format
	if format == "json" {
		outputTokenJSON(token, writer)
	} else {
		_, _ = fmt.Fprintln(writer, token)
	}

	logger.Info("secure token generated", slog.String("encoding", encoding))

	return nil
}

// outputTokenJSON outputs the token in JSON format for machine consumption.
func outputTokenJSON(token string, writer io.Writer) {
	result := map[string]string{
		"token": token,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
