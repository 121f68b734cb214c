package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kosakata/internal/vocab"
)

var wordsCmd = &cobra.Command{
	Use:   "words [category]",
	Short: "List the vocabulary by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vocab.Default()
		categories := v.Categories()
		if len(args) == 1 {
			name, ok := matchCategory(categories, args[0])
			if !ok {
				return fmt.Errorf("unknown category %q (have: %s)", args[0], strings.Join(categories, ", "))
			}
			categories = []string{name}
		}

		for i, c := range categories {
			if i > 0 {
				fmt.Println()
			}
			entries := v.Category(c)
			fmt.Printf("%s (%d)\n", c, len(entries))
			fmt.Println(strings.Repeat("─", 40))
			for _, e := range entries {
				fmt.Printf("  %-22s %s\n", e.Source, e.Gloss)
			}
		}
		return nil
	},
}

var wordHistoryCmd = &cobra.Command{
	Use:   "history <word>",
	Short: "Show recent answers for one word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()
		st, err := d.requireStore()
		if err != nil {
			return err
		}

		word := strings.TrimSpace(args[0])
		answers, err := st.EventRepo().WordHistory(context.Background(), word, limit)
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			fmt.Printf("No answers recorded for %q.\n", word)
			return nil
		}
		for _, a := range answers {
			mark := "✓"
			if !a.Correct {
				mark = "✗"
			}
			given := a.Given
			if strings.TrimSpace(given) == "" {
				given = "(blank)"
			}
			fmt.Printf("%s  %s  %s  expected %q, got %q\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"), mark, a.Direction, a.Expected, given)
		}
		return nil
	},
}

// matchCategory finds a category by case-insensitive name or prefix.
func matchCategory(categories []string, name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if strings.ToLower(c) == name {
			return c, true
		}
	}
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(c), name) {
			return c, true
		}
	}
	return "", false
}

func init() {
	wordHistoryCmd.Flags().IntP("limit", "n", 20, "Number of answers to show")
	wordsCmd.AddCommand(wordHistoryCmd)
}
