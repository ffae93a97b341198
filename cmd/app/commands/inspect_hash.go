package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/go-credential/internal/credential/usecase"
)

// RunInspectHash reads the cost embedded in a stored hash and reports whether
// the hash should be regenerated under the current configuration. Useful for
// checking which deployment mode produced a hash and for planning rehashes
// after a cost or algorithm change.
func RunInspectHash(
	ctx context.Context,
	credentialUseCase usecase.CredentialUseCase,
	logger *slog.Logger,
	writer io.Writer,
	hashedPassword string,
	format string,
) error {
	// Read the cost from the self-describing hash encoding
	cost, err := credentialUseCase.HashCost(ctx, hashedPassword)
	if err != nil {
		return err
	}

	// Compare the hash against the current configuration
	needsRehash, err := credentialUseCase.NeedsRehash(ctx, hashedPassword)
	if err != nil {
		return err
	}

	// Output result based on format
	if format == "json" {
		outputInspectJSON(cost, needsRehash, writer)
	} else {
		outputInspectText(cost, needsRehash, writer)
	}

	logger.Info("hash inspected", slog.Int("cost", cost), slog.Bool("needs_rehash", needsRehash))

	return nil
}

// outputInspectText outputs the inspection result in human-readable text format.
func outputInspectText(cost int, needsRehash bool, writer io.Writer) {
	_, _ = fmt.Fprintf(writer, "Cost: %d\n", cost)
	_, _ = fmt.Fprintf(writer, "Needs rehash: %t\n", needsRehash)
}

// outputInspectJSON outputs the inspection result in JSON format for machine consumption.
func outputInspectJSON(cost int, needsRehash bool, writer io.Writer) {
	result := map[string]any{
		"cost":         cost,
		"needs_rehash": needsRehash,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
