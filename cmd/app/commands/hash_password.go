package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/go-credential/internal/credential/usecase"
)

// RunHashPassword hashes a plain text password and prints the resulting hash.
// When password is empty the user is prompted interactively. Outputs in either
// text or JSON format. The plain password never reaches the logger.
func RunHashPassword(
	ctx context.Context,
	credentialUseCase usecase.CredentialUseCase,
	logger *slog.Logger,
	password string,
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

	// Hash the password with the configured algorithm
	hashedPassword, err := credentialUseCase.HashPassword(ctx, password)
	if err != nil {
		return err
	}

	// Output result based on format
	if format == "json" {
		outputHashJSON(hashedPassword, io.Writer)
	} else {
		outputHashText(hashedPassword, io.Writer)
	}

	logger.Info("password hashed successfully")

	return nil
}

// promptForPassword interactively prompts the user to enter a password.
// Only the trailing newline is stripped, other whitespace is preserved.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(password, "\r\n"), nil
}

// outputHashText outputs the hash in human-readable text format.
func outputHashText(hashedPassword string, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nPassword hashed successfully!")
	_, _ = fmt.Fprintf(writer, "Hash: %s\n", hashedPassword)
}

// outputHashJSON outputs the hash in JSON format for machine consumption.
func outputHashJSON(hashedPassword string, writer io.Writer) {
	result := map[string]string{
		"hash": hashedPassword,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
