package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/molkkylog/internal/store"
)

var historyUser string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the committed throw log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var records []store.ThrowRecord
		if historyUser != "" {
			u, err := st.UserRepo().ByName(cmd.Context(), historyUser)
			if err != nil {
				return fmt.Errorf("look up player: %w", err)
			}
			if u == nil {
				return fmt.Errorf("no player named %q", historyUser)
			}
			records, err = st.ThrowRepo().RecordsForUser(cmd.Context(), u.ID)
			if err != nil {
				return fmt.Errorf("load throws: %w", err)
			}
		} else {
			records, err = st.ThrowRepo().ListRecords(cmd.Context())
			if err != nil {
				return fmt.Errorf("load throws: %w", err)
			}
		}

		names := map[int]string{}
		users, err := st.UserRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u.Name
		}

		if len(records) == 0 {
			fmt.Println("no throws logged yet")
			return nil
		}
		for _, r := range records {
			result := "miss"
			if r.IsSuccess {
				result = "hit "
			}
			line := fmt.Sprintf("%s  %s  %sm %s  %s",
				r.Timestamp.Format("2006-01-02 15:04"),
				result,
				strconv.FormatFloat(r.Distance, 'f', -1, 64),
				strings.ToLower(string(r.Angle)),
				names[r.UserID])
			if r.Env.Weather != nil {
				line += "  (" + *r.Env.Weather + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyUser, "user", "", "Only show throws for this player")
}
