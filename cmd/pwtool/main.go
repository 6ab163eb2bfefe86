package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
)

var (
	// Flags for generate command
	genLength  int
	genShuffle bool

	// Flags for passphrase command
	phraseWords int

	// Flags for token command
	tokenSubject string
	tokenRole    string

	// Flags for import-leaks command
	importFile string
)

var rootCmd = &cobra.Command{
	Use:   "pwtool",
	Short: "Check password strength and generate credentials",
	Long: `pwtool checks passwords against breach corpora and a strength model,
and generates random passwords and passphrases.`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the strength of a password read from the terminal or stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random password",
	Long: `Generate a random password of 12 to 25 characters.

Examples:
  pwtool generate              # 16 characters
  pwtool generate -l 24        # 24 characters
  pwtool generate --shuffle    # spread the guaranteed characters`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate a dash-joined passphrase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPassphrase(cmd)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an operator token for the admin API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToken(cmd)
	},
}

var importCmd = &cobra.Command{
	Use:   "import-leaks",
	Short: "Load a breach corpus into the breach table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd)
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", crypto.DefaultLength, "Password length (12-25)")
	generateCmd.Flags().BoolVar(&genShuffle, "shuffle", false, "Shuffle the guaranteed characters into random positions")

	passphraseCmd.Flags().IntVarP(&phraseWords, "words", "w", crypto.DefaultWordCount, "Number of words (3-8)")

	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "operator", "Token subject")
	tokenCmd.Flags().StringVarP(&tokenRole, "role", "r", crypto.RoleAdmin, "Token role")

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Corpus file (defaults to LEAK_CORPUS_PATH)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(passphraseCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	_ = godotenv.Load()
	return config.Load()
}
