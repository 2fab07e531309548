package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Save and query parsed candidates",
	Long:  "Candidates are kept in Postgres when --db-url or DB_URL is set, otherwise in a local SQLite file.",
}

var (
	storeDatabaseURL string
	storeSQLitePath  string
)

func init() {
	storeCmd.PersistentFlags().StringVar(&storeDatabaseURL, "db-url", "", "Postgres URL (overrides DB_URL)")
	storeCmd.PersistentFlags().StringVar(&storeSQLitePath, "sqlite", "", "SQLite file (overrides SQLITE_PATH)")

	storeCmd.AddCommand(&cobra.Command{
		Use:   "add <resume>...",
		Short: "Parse resumes and store the candidates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStoreAdd,
	})
	storeCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every stored candidate",
		Args:  cobra.NoArgs,
		RunE:  runStoreList,
	})
	storeCmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Print the candidate with the exact name",
		Args:  cobra.ExactArgs(1),
		RunE:  runStoreGet,
	})

	rootCmd.AddCommand(storeCmd)
}

// openStore picks Postgres or SQLite from flags and configuration.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, io.Closer, error) {
	url := storeDatabaseURL
	if url == "" {
		url = cfg.DatabaseURL
	}
	if url != "" {
		db, err := store.OpenPostgres(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgres(database.New(db)), db, nil
	}

	path := storeSQLitePath
	if path == "" {
		path = cfg.SQLitePath
	}
	s, err := store.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}

func withStore(cmd *cobra.Command, fn func(context.Context, store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	s, closer, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	return fn(ctx, s)
}

func runStoreAdd(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, s store.Store) error {
		parser := &resume.Parser{}
		var failed int
		for _, path := range args {
			c, err := parseFile(parser, path)
			if err != nil {
				slog.Warn("skipping resume", "path", path, "error", err)
				failed++
				continue
			}
			id, err := s.Insert(ctx, c)
			if err != nil {
				slog.Warn("skipping resume", "path", path, "error", err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, c.Name)
		}
		if failed == len(args) {
			return errors.New("no candidates stored")
		}
		return nil
	})
}

func runStoreList(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, s store.Store) error {
		all, err := s.GetAll(ctx)
		if err != nil {
			return err
		}
		if all == nil {
			return writeJSON(cmd.OutOrStdout(), []any{})
		}
		return writeJSON(cmd.OutOrStdout(), all)
	})
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, s store.Store) error {
		c, err := s.GetByName(ctx, args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), c)
	})
}
