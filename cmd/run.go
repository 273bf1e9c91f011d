package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/k0de1ne/hh-parser-analyzer/internal/ai"
	"github.com/k0de1ne/hh-parser-analyzer/internal/ai/gemini"
	"github.com/k0de1ne/hh-parser-analyzer/internal/analysis"
	"github.com/k0de1ne/hh-parser-analyzer/internal/filtering"
	applog "github.com/k0de1ne/hh-parser-analyzer/internal/logger"
	"github.com/k0de1ne/hh-parser-analyzer/internal/secrets"
	"github.com/k0de1ne/hh-parser-analyzer/internal/skills"
	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

const (
	PromptShowInsights    = "Show insights"
	PromptReportByCompany = "Report by companies"
	PromptResumeAdvice    = "AI resume advice"
	PromptVacanciesToFile = "Dump filtered vacancies to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Analysis saved. What next?",
	Items: []string{PromptShowInsights, PromptReportByCompany, PromptResumeAdvice, PromptVacanciesToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the analysis over an exported vacancy collection",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "vacancies JSON file to analyze")
	runCmd.Flags().StringP("output", "o", "", "file for the analysis results")
	runCmd.Flags().BoolP("auto-approve", "y", false, "write the results and exit without the interactive menu")

	viper.BindPFlag("input", runCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := applog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hh-analyzer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	vacancies, err := vacancy.LoadFile(config.Input)
	if err != nil {
		logger.Fatal("loading vacancies", zap.Error(err), zap.String("input", config.Input))
	}

	logger.Info("loaded vacancies", zap.Int("count", vacancies.Len()))

	vacancies, err = prepareFilters(config, logger).Run(vacancies)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if vacancies.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no vacancies left to analyze"))
		return
	}

	normalizer := skills.NewNormalizer(skills.DefaultSynonyms)
	report := analysis.Build(vacancies, normalizer)

	if err := report.SaveFile(config.Output); err != nil {
		logger.Fatal("saving analysis results", zap.Error(err))
	}

	logger.Info("analysis saved",
		zap.String("output", config.Output),
		zap.Int("vacancies", report.Meta.Total),
		zap.Int("skill_mentions", report.Skills.TotalMentions),
		zap.Int("skill_combinations", len(report.Skills.Combinations)),
	)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, logger, config, vacancies, report); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, config *Config, vacancies *vacancy.Vacancies, report *analysis.Report) error {
	switch action {
	case PromptShowInsights:
		pretty, _ := json.MarshalIndent(report.Insights, "", "  ")
		logger.Info(string(pretty))
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(vacancies.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("vacancies count", vacancies.Len()))
		return nil
	case PromptResumeAdvice:
		return adviseResume(ctx, logger, config, report)
	case PromptVacanciesToFile:
		filename, err := vacancies.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump vacancies to file: %w", err)
		}
		logger.Info("dumping vacancies to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func adviseResume(ctx context.Context, logger *zap.Logger, config *Config, report *analysis.Report) error {
	advisor, err := newAdvisor(ctx, config.AI, logger)
	if err != nil {
		return fmt.Errorf("building ai advisor: %w", err)
	}

	advice, err := advisor.Advise(ctx, report)
	if err != nil {
		return fmt.Errorf("generating resume advice: %w", err)
	}

	logger.Info(advice.Summary, zap.Strings("advice", advice.Items))
	return nil
}

func newAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai advice is disabled; set ai.enabled in the configuration file")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	keyFile := cfg.Gemini.APIKeyFile
	if keyFile == "" {
		keyFile = viper.GetString("ai.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := applog.WithAdvisorFields(logger, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	filterCfg := config.Filter
	if filterCfg == nil {
		filterCfg = &FilterConfig{}
	}

	steps := []filtering.Filter{
		filtering.NewTitleKeywords(filterCfg.TitleKeywords, logger),
		filtering.NewEmployers(filterCfg.ExcludeEmployers, logger),
	}
	if filterCfg.DropArchived {
		steps = append(steps, filtering.NewArchived(logger))
	}

	return filtering.New(steps, logger)
}
