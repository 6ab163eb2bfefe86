package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/repository"
	"github.com/vaultpass/passcheck-go/internal/service"
	"golang.org/x/term"
)

func runCheck(cmd *cobra.Command) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	res := service.NewResources(loadConfig())
	resp, err := service.NewStrengthService(res).Evaluate(cmd.Context(), model.StrengthRequest{Password: password})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(resp))
	return nil
}

// readPassword prompts without echo on a terminal and otherwise reads the
// first line of stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runGenerate(cmd *cobra.Command) error {
	resp, err := service.NewGeneratorService(nil).Generate(model.GenerateRequest{
		Length:  genLength,
		Shuffle: genShuffle,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Password)
	return nil
}

func runPassphrase(cmd *cobra.Command) error {
	res := service.NewResources(loadConfig())
	resp, err := service.NewGeneratorService(res).Passphrase(model.PassphraseRequest{WordCount: phraseWords})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Passphrase)
	return nil
}

func runToken(cmd *cobra.Command) error {
	cfg := loadConfig()
	token, err := crypto.GenerateToken(tokenSubject, tokenRole, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func runImport(cmd *cobra.Command) error {
	cfg := loadConfig()
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is not set")
	}
	path := importFile
	if path == "" {
		path = cfg.LeakCorpusPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	repo := repository.NewBreachRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating breach table: %w", err)
	}
	n, err := repo.Import(ctx, strings.Split(string(data), "\n"))
	if err != nil {
		return fmt.Errorf("importing corpus: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d new entries from %s\n", n, path)
	return nil
}
