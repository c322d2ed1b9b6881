package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kedeggel/dictcc"
)

var (
	rootCmd = &cobra.Command{
		Use:          "dictcc [query]",
		Short:        "dictcc",
		SilenceUsage: true,
		Long:         `Offline translator powered by the database of dict.cc. Export a database at https://www.dict.cc/?s=about%3Awordlist and pass it with --database once; the path is remembered.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runRoot,
	}

	databasePath string
	noColor      bool
	verbose      int
	interactive  bool
	languageFlag string
	typeFlag     string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", "", "path to the dict.cc database file; if not specified, the last used path is used instead")
	rootCmd.PersistentFlags().BoolVarP(&noColor, "no-color", "c", false, "disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "verbose mode (-v, -vv, etc.)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "activate the interactive mode")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "language the query is written in; if not specified, the query is bidirectional")
	rootCmd.Flags().StringVarP(&typeFlag, "type", "t", "word", `"w"|"word" matches on a word in an entry, "e"|"exact" must match the complete entry, "r"|"regex" matches the regex provided by the user`)
	return rootCmd.Execute()
}

func setup() error {
	if verbose > 0 {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	if noColor {
		pterm.DisableColor()
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	if len(args) == 0 && !interactive {
		_ = cmd.Help()
		return errors.New("a query argument is required unless --interactive is given")
	}

	path, err := resolveDatabasePath(databasePath)
	if err != nil {
		return err
	}
	dict, err := dictcc.New(path)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := runQuery(dict, args[0], languageFlag, typeFlag); err != nil {
			return err
		}
	}
	if interactive {
		return runInteractive(dict)
	}
	return nil
}

func runQuery(dict *dictcc.Dict, term, language, queryType string) error {
	query := dict.Query(term)

	if language != "" {
		lang, err := dictcc.ParseLanguage(language)
		if err != nil {
			return err
		}
		if err := query.SourceLanguage(lang); err != nil {
			return err
		}
	}

	qt, err := dictcc.ParseQueryType(queryType)
	if err != nil {
		return err
	}
	query.SetType(qt)

	result, err := query.Execute()
	if err != nil {
		return err
	}

	if len(result.Entries()) == 0 {
		fmt.Println("Sorry, no translations found!")
		return nil
	}
	fmt.Println(result.Grouped().Render())
	return nil
}

// runInteractive keeps prompting for language, type and term until an empty
// term quits the loop.
func runInteractive(dict *dictcc.Dict) error {
	for {
		language, _ := pterm.DefaultInteractiveTextInput.
			WithMultiLine(false).
			Show("Query language (empty for bidirectional)")

		queryType, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("word").
			WithMultiLine(false).
			Show(`Query type ("w(ord)", "e(xact)", "r(egex)")`)

		term, _ := pterm.DefaultInteractiveTextInput.
			WithMultiLine(false).
			Show("Query (empty to quit)")
		if term == "" {
			return nil
		}

		if err := runQuery(dict, term, language, queryType); err != nil {
			// a bad language code or pattern should not end the session
			pterm.Error.Println(err)
		}
	}
}
