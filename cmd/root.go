package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kosakata",
	Short: "Malay ↔ English vocabulary trainer",
	Long: "Kosakata quizzes you on Malay vocabulary in the terminal, grouped by affix\n" +
		"category, and keeps a per-word tally so the words you miss come back more often.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (overrides KOSAKATA_CONFIG)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOSAKATA_DB)")
	rootCmd.PersistentFlags().String("ledger", "", "Path to the attempt ledger CSV (overrides KOSAKATA_LEDGER)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
