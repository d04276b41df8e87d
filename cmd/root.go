package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/molkkylog/internal/app"
	"github.com/abhisek/molkkylog/internal/practice"
	"github.com/abhisek/molkkylog/internal/prefs"
	"github.com/abhisek/molkkylog/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "molkkylog",
	Short: "Mölkky practice tracker",
	Long:  "Molkkylog — terminal app for logging Mölkky throwing practice across players, distances and conditions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MOLKKYLOG_DB env var)")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MOLKKYLOG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the relational store for a subcommand.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// runApp opens the store and snapshot file, builds the session registry,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prefsPath, err := store.PrefsPathFor(dbPath)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	p, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("load session prefs: %w", err)
	}

	reg := practice.NewRegistry(st.ThrowRepo(), st.UserRepo(), p)
	defer reg.Close()

	return app.Run(app.Options{
		Registry: reg,
		Throws:   st.ThrowRepo(),
	})
}
