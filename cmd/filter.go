package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/k0de1ne/hh-parser-analyzer/internal/filtering"
	applog "github.com/k0de1ne/hh-parser-analyzer/internal/logger"
	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Rewrite a vacancies file keeping only titles matching the keywords",
	Run: func(cmd *cobra.Command, _ []string) {
		filter(cmd)
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringP("input", "i", defaultInput, "vacancies JSON file to filter in place")
	filterCmd.Flags().StringSliceP("keywords", "k", []string{"go", "golang"}, "title keywords to keep")
}

func filter(cmd *cobra.Command) {
	logger, err := applog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	input, _ := cmd.Flags().GetString("input")
	keywords, _ := cmd.Flags().GetStringSlice("keywords")

	vacancies, err := vacancy.LoadFile(input)
	if err != nil {
		logger.Fatal("loading vacancies", zap.Error(err), zap.String("input", input))
	}

	initial := vacancies.Len()

	vacancies, err = filtering.New([]filtering.Filter{
		filtering.NewTitleKeywords(keywords, logger),
	}, logger).Run(vacancies)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if err := vacancies.SaveFile(input); err != nil {
		logger.Fatal("saving filtered vacancies", zap.Error(err))
	}

	logger.Info("filtered vacancies saved",
		zap.String("file", input),
		zap.Int("kept", vacancies.Len()),
		zap.Int("removed", initial-vacancies.Len()),
	)
}
