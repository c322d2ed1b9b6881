package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/kedeggel/dictcc"
)

var (
	dumpCount int
	dumpAst   bool

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Parse the database and print the first entries, for eyeballing the parser output",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			path, err := resolveDatabasePath(databasePath)
			if err != nil {
				return err
			}
			dict, err := dictcc.New(path)
			if err != nil {
				return err
			}

			entries := dict.Entries()
			if dumpCount > 0 && dumpCount < len(entries) {
				entries = entries[:dumpCount]
			}
			for _, entry := range entries {
				if dumpAst {
					repr.Println(entry)
				} else {
					fmt.Println(entry.LongString())
				}
			}
			return nil
		},
	}
)

func init() {
	dumpCmd.Flags().IntVarP(&dumpCount, "count", "n", 10, "number of entries to dump; 0 dumps everything")
	dumpCmd.Flags().BoolVar(&dumpAst, "ast", false, "dump the parsed node structure instead of the rendered entry")
	rootCmd.AddCommand(dumpCmd)
}
