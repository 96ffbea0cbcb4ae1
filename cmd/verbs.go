package cmd

import (
	"fmt"
	"strings"

	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
	"github.com/spf13/cobra"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "Browse the verb lexicon",
}

var verbsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all verbs (optionally filtered by class or irregularity)",
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetString("class")
		irregularOnly, _ := cmd.Flags().GetBool("irregular")

		if class != "" && !grammar.VerbClass(class).Valid() {
			return fmt.Errorf("invalid class %q: must be ar, er, or ir", class)
		}

		lexicon := verbs.Default()

		// Header.
		fmt.Printf("%-14s  %-28s  %-5s  %-9s  %-11s  %s\n",
			"Infinitive", "Translation", "Class", "Irregular", "Stem Change", "Rank")
		fmt.Println(strings.Repeat("─", 84))

		var count int
		for _, rec := range lexicon.All() {
			if class != "" && rec.Class != grammar.VerbClass(class) {
				continue
			}
			if irregularOnly && !rec.Irregular {
				continue
			}

			translation := rec.Translation
			if len(translation) > 28 {
				translation = translation[:25] + "..."
			}
			irregular := ""
			if rec.Irregular {
				irregular = "yes"
			}
			stemChange := string(rec.StemChange)
			if stemChange == "" {
				stemChange = "—"
			}
			fmt.Printf("%-14s  %-28s  %-5s  %-9s  %-11s  %d\n",
				rec.Infinitive, translation, "-"+string(rec.Class),
				irregular, stemChange, rec.Frequency)
			count++
		}

		fmt.Printf("\n%d verbs\n", count)
		return nil
	},
}

func init() {
	verbsListCmd.Flags().String("class", "", "Filter by conjugation class (ar, er, ir)")
	verbsListCmd.Flags().Bool("irregular", false, "Show only irregular verbs")

	verbsCmd.AddCommand(verbsListCmd)
}
