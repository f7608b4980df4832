package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/devrev"
	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/devrev/devrevclient"
	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack"
	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/slack/slackclient"
	"github.com/vfg2006/opportunity-summarizer/internal/api"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"github.com/vfg2006/opportunity-summarizer/internal/scheduler"
	"github.com/vfg2006/opportunity-summarizer/internal/usecases/summarizing"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	configureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()

	os.Exit(code)
}

// run executa o comando e devolve o código de saída do processo.
// Apenas configuração inválida (ou falha do servidor no modo serve) resulta em erro;
// falhas de busca ou publicação já foram registradas e terminam com sucesso.
func run(ctx context.Context, args []string) int {
	root := newRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("summarizer: exiting with error")
		return exitError
	}

	return exitOK
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "summarizer",
		Short:         "Fetches opportunities, summarizes them and posts the summary to Slack",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result := newSummarizingService(cfg).Run(cmd.Context())
			logrus.WithFields(logrus.Fields{
				"run_id": result.RunID,
				"status": result.Status,
			}).Info("summarizer: run finished")

			return nil
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Runs the summary on a cron schedule and exposes the ops API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			syncService := scheduler.NewOpportunitySummarySyncService(newSummarizingService(cfg), cfg)
			if err := syncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("summarizer: error starting opportunity summary schedule")
			} else {
				logrus.Info("summarizer: opportunity summary schedule started")
			}

			return api.New(cfg, syncService).Run(ctx)
		},
	})

	return root
}

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("summarizer: invalid log level %s, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return cfg, nil
}

func newSummarizingService(cfg *config.Config) *summarizing.Service {
	devrevIntegrator := devrev.New(devrevclient.NewClient(cfg))
	slackIntegrator := slack.New(cfg, slackclient.NewClient(cfg))

	return summarizing.NewService(devrevIntegrator, slackIntegrator)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
