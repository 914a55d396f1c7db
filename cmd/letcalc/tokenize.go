package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"letcalc/internal/diagfmt"
	"letcalc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.calc",
	Short: "Tokenize a letcalc source file",
	Long:  `Tokenize breaks a letcalc source file into its tokens, reporting unknown characters along the way`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	printer, err := newDiagPrinter(cmd)
	if err != nil {
		return err
	}

	// Выполняем токенизацию
	result, err := driver.Tokenize(cmd.Context(), filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, если есть
	if err := printer.print(os.Stderr, result.Bag, result.FileSet); err != nil {
		return err
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return silenceDiagnostics(cmd)
	}
	return nil
}
