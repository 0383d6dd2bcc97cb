package cmd

import (
	"fmt"

	"github.com/Victor-Rafael0/MATHPATH/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved session (and optionally all accounts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ClearSession(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Session cleared.")

		if all, _ := cmd.Flags().GetBool("accounts"); all {
			if err := st.SaveAccounts(map[string]store.Account{}); err != nil {
				return fmt.Errorf("clear accounts: %w", err)
			}
			fmt.Println("All accounts removed.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("accounts", false, "Also remove every account")
}
