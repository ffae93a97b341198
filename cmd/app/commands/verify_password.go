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

// RunVerifyPassword verifies a plain text password against a stored hash and
// reports whether they match. A mismatch is a normal outcome, not an error.
// When password is empty the user is prompted interactively.
func RunVerifyPassword(
	ctx context.Context,
	credentialUseCase usecase.CredentialUseCase,
	logger *slog.Logger,
	password string,
	hashedPassword string,
	format string,
	io IOTuple,
) error {
	// Prompt for the password when not provided via flag
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	// Verify the password against the stored hash
	match, err := credentialUseCase.VerifyPassword(ctx, password, hashedPassword)
	if err != nil {
		return err
	}

	// Output result based on format
	if format == "json" {
		outputVerifyJSON(match, io.Writer)
	} else {
		outputVerifyText(match, io.Writer)
	}

	logger.Info("password verification completed", slog.Bool("match", match))

	return nil
}

// outputVerifyText outputs the verification result in human-readable text format.
func outputVerifyText(match bool, writer io.Writer) {
	if match {
		_, _ = fmt.Fprintln(writer, "Password matches the stored hash.")
	} else {
		_, _ = fmt.Fprintln(writer, "Password does not match the stored hash.")
	}
}

// outputVerifyJSON outputs the verification result in JSON format for machine consumption.
func outputVerifyJSON(match bool, writer io.Writer) {
	result := map[string]bool{
		"match": match,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
