package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/go-credential/internal/token/usecase"
)

// RunRandomBytes generates the requested number of random bytes and prints them
// encoded as lowercase hexadecimal. In text format the value is printed on a
// single line for piping into other tools. The generated value never reaches
// the logger.
func RunRandomBytes(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	length int,
	format string,
) error {
	// Generate random bytes encoded as hexadecimal
	value, err := tokenUseCase.GenerateRandomBytes(ctx, length)
	if err != nil {
		return err
	}

	// Output result based on format
	if format == "json" {
		outputRandomBytesJSON(value, writer)
	} else {
		_, _ = fmt.Fprintln(writer, value)
	}

	logger.Info("random bytes generated", slog.Int("length", length))

	return nil
}

// outputRandomBytesJSON outputs the value in JSON format for machine consumption.
func outputRandomBytesJSON(value string, writer io.Writer) {
	result := map[string]string{
		"value": value,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
