package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/molkkylog/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage players",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		users, err := st.UserRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		for _, u := range users {
			n, err := st.ThrowRepo().CountDrafts(cmd.Context(), u.ID)
			if err != nil {
				return fmt.Errorf("count drafts: %w", err)
			}
			records, err := st.ThrowRepo().RecordsForUser(cmd.Context(), u.ID)
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}
			fmt.Printf("%4d  %-20s  %d logged, %d staged\n", u.ID, u.Name, len(records), n)
		}
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		existing, err := st.UserRepo().ByName(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("player %q already exists", existing.Name)
		}
		u, err := st.UserRepo().Insert(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("add player: %w", err)
		}
		fmt.Printf("added %s (id %d)\n", u.Name, u.ID)
		return nil
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a player and their throws",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		u, err := st.UserRepo().ByName(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("look up player: %w", err)
		}
		if u == nil {
			return fmt.Errorf("no player named %q", args[0])
		}
		if u.Name == store.DefaultUserName {
			return fmt.Errorf("%q is the default player and cannot be removed", u.Name)
		}
		all, err := st.UserRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(all) <= 1 {
			return fmt.Errorf("cannot remove the last player")
		}
		if err := st.UserRepo().Delete(cmd.Context(), u.ID); err != nil {
			return fmt.Errorf("remove player: %w", err)
		}
		fmt.Printf("removed %s\n", u.Name)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersRemoveCmd)
}
