package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-time-tracker.com/task-time-tracker/internal/configs"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
	"task-time-tracker.com/task-time-tracker/internal/services"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import BAS accounts from a CSV feed",
	Long: "Resyncs the BAS account directory from a CSV file with columns " +
		"account_id, account_name, category, description. Accounts missing " +
		"from the file are deactivated, not deleted.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabase(cfg)

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening CSV file: %w", err)
		}
		defer file.Close()

		directory := services.NewDirectoryService(repository.NewAccountRepository(database))

		result := directory.ImportAccounts(cmd.Context(), file)
		if !result.Success {
			return fmt.Errorf("import failed: %s", result.Message)
		}

		fmt.Printf("%s (%d rows skipped)\n", result.Message, result.SkippedCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
