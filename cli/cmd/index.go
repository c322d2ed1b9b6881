package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kedeggel/dictcc"
)

var (
	sqlitePath  string
	postgresDsn string

	indexCmd = &cobra.Command{
		Use:   "index",
		Short: "Maintain and search a persistent relational index of the dictionary",
	}

	indexBuildCmd = &cobra.Command{
		Use:   "build",
		Short: "Parse the database file and seed the index store with all entries",
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

			dbc, err := openIndexDb()
			if err != nil {
				return err
			}
			defer func() {
				_ = dbc.Close()
			}()

			store := dictcc.NewIndexStore(dbc)
			if err := store.Seed(context.Background(), dict); err != nil {
				return err
			}
			fmt.Printf("Indexed %d entries (%s)\n", len(dict.Entries()), dict.LanguagePair())
			return nil
		},
	}

	indexSearchCmd = &cobra.Command{
		Use:   "search <term>",
		Short: "Search the persistent index without loading the text database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			dbc, err := openIndexDb()
			if err != nil {
				return err
			}
			defer func() {
				_ = dbc.Close()
			}()

			ctx := context.Background()
			store := dictcc.NewIndexStore(dbc)

			direction := dictcc.Bidirectional
			if languageFlag != "" {
				lang, err := dictcc.ParseLanguage(languageFlag)
				if err != nil {
					return err
				}
				languages, err := store.Languages(ctx)
				if err != nil {
					return err
				}
				direction, err = languages.InferQueryDirection(lang)
				if err != nil {
					return err
				}
			}

			entries, err := store.Search(ctx, args[0], direction)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Sorry, no translations found!")
				return nil
			}

			data := make(pterm.TableData, 0, len(entries))
			for _, e := range entries {
				data = append(data, []string{e.LeftWord, e.RightWord, e.WordClasses})
			}
			table, err := pterm.DefaultTable.WithSeparator(" | ").WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Println(table)
			return nil
		},
	}
)

// openIndexDb opens the PostgreSQL store when --dsn is given, otherwise the
// embedded sqlite file.
func openIndexDb() (*sql.DB, error) {
	if postgresDsn != "" {
		return sql.Open("pgx", postgresDsn)
	}
	if sqlitePath == "" {
		return nil, errors.New("need --sqlite <file> or --dsn <postgres-dsn>")
	}
	return sql.Open("sqlite3", sqlitePath)
}

func init() {
	indexCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "path of the sqlite index file")
	indexCmd.PersistentFlags().StringVar(&postgresDsn, "dsn", "", "PostgreSQL DSN of the index store (overrides --sqlite)")
	indexSearchCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "language the term is written in; if not specified, the search is bidirectional")
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	rootCmd.AddCommand(indexCmd)
}
