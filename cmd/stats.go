package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Victor-Rafael0/MATHPATH/internal/catalog"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress",
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

		accounts, err := st.LoadAccounts()
		if err != nil {
			return fmt.Errorf("load accounts: %w", err)
		}
		if len(accounts) == 0 {
			fmt.Println("No learners yet.")
			return nil
		}

		names := make([]string, 0, len(accounts))
		for name := range accounts {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEARNER\tLEVEL\tMODULE\tXP\tSIGMAS\tLIVES")
		for _, name := range names {
			a := accounts[name]
			m, err := catalog.ByID(a.UnlockedModule)
			module := "?"
			if err == nil {
				module = m.Title
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d\n",
				a.Name, a.Level, module, a.XP, a.Sigmas, a.Lives)
		}
		return w.Flush()
	},
}
