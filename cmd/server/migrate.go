package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"msitumum/pkg/species/importer"
	speciesRepoImp "msitumum/pkg/species/repositoryImp"
	speciesSvc "msitumum/pkg/species/serviceImp"
)

var speciesFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables, seed default species and optionally import a species sheet",
	Long: `Create or update the schema and seed the default species catalogue.

Examples:
  # Schema only
  msitumum migrate

  # Also upsert species from a spreadsheet (matched on common name)
  msitumum migrate --species-xlsx species.xlsx`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&speciesFile, "species-xlsx", "", "xlsx or csv file of tree species to upsert")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	_, log, db, err := bootstrap()
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	log.Info("schema migrated")

	if speciesFile == "" {
		return nil
	}
	rows, err := importer.Load(speciesFile)
	if err != nil {
		return err
	}
	svc := speciesSvc.NewSpeciesService(speciesRepoImp.New(db), time.Minute)
	created, updated, err := svc.Import(cmd.Context(), rows)
	if err != nil {
		return fmt.Errorf("import species: %w", err)
	}
	log.Info("species imported", "file", speciesFile, "created", created, "updated", updated)
	return nil
}
