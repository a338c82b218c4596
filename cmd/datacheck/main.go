// Command datacheck inspects the three tab-separated dataset files used by
// the tag chart server: row counts, referential integrity, and the most
// used tags across all artists.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/musictags/tagchart/internal/dataset"
)

var (
	cfgFile     string
	artistsPath string
	tagsPath    string
	taggedPath  string
)

var rootCmd = &cobra.Command{
	Use:   "datacheck",
	Short: "Inspects the artist/tag datasets used by the tag chart server",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.tagchart.yaml)")

	rootCmd.PersistentFlags().StringVar(
		&artistsPath, "artists", "data/artists.dat", "Path to the artists dataset")
	viper.BindPFlag("artists", rootCmd.PersistentFlags().Lookup("artists"))

	rootCmd.PersistentFlags().StringVar(
		&tagsPath, "tags", "data/tags.dat", "Path to the tags dataset")
	viper.BindPFlag("tags", rootCmd.PersistentFlags().Lookup("tags"))

	rootCmd.PersistentFlags().StringVar(
		&taggedPath, "tagged", "data/user_taggedartists.dat", "Path to the artist-tag associations dataset")
	viper.BindPFlag("tagged", rootCmd.PersistentFlags().Lookup("tagged"))

	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newTopTagsCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".tagchart")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.PersistentFlags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func loadCatalog() (*dataset.Catalog, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return dataset.Load(logger, dataset.Paths{
		Artists:       artistsPath,
		Tags:          tagsPath,
		TaggedArtists: taggedPath,
	})
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print row counts for the three datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header([]string{"Dataset", "Rows"})
			rows := [][]string{
				{"artists", strconv.Itoa(cat.NumArtists())},
				{"tags", strconv.Itoa(cat.NumTags())},
				{"associations", strconv.Itoa(cat.NumAssociations())},
			}
			for _, row := range rows {
				if err := table.Append(row); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}
			return nil
		},
	}
}

func newTopTagsCmd() *cobra.Command {
	var topN int
	cmd := &cobra.Command{
		Use:   "toptags",
		Short: "Print the most used tags across all artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			counts := make(map[int]int)
			order := make([]int, 0)
			for _, assoc := range cat.Associations() {
				if _, seen := counts[assoc.TagID]; !seen {
					order = append(order, assoc.TagID)
				}
				counts[assoc.TagID]++
			}
			sort.SliceStable(order, func(i, j int) bool {
				return counts[order[i]] > counts[order[j]]
			})
			if topN < len(order) {
				order = order[:topN]
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header([]string{"Tag", "Count"})
			for _, id := range order {
				value, ok := cat.TagValue(id)
				if !ok {
					value = fmt.Sprintf("(unknown tag id %d)", id)
				}
				if err := table.Append([]string{value, strconv.Itoa(counts[id])}); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 20, "How many tags to print")
	return cmd
}
