package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/nhacviec/nhacviec/internal/profile"
	"github.com/nhacviec/nhacviec/plugin/ai"
	"github.com/nhacviec/nhacviec/plugin/nlp"
	"github.com/nhacviec/nhacviec/server"
	"github.com/nhacviec/nhacviec/store"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "nhacviec",
	Short: "Vietnamese natural-language event and reminder service",
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `server mode: "dev" or "prod"`)
	rootCmd.PersistentFlags().String("addr", "", "address to bind to")
	rootCmd.PersistentFlags().Int("port", 8230, "port to bind to")
	rootCmd.PersistentFlags().String("data", "data", "data directory")

	for _, flag := range []string{"mode", "addr", "port", "data"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("nhacviec")
	viper.AutomaticEnv()
}

func run() error {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Version: version,
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Info("starting", "profile", p.String())

	st := store.New(p.EventsFile())

	var inferrer nlp.Inferrer = nlp.NewRuleInferrer()
	if p.IsAIEnabled() {
		llm, err := ai.NewLLMService(ai.NewConfigFromProfile(p))
		if err != nil {
			return err
		}
		inferrer = ai.NewInferrer(llm)
		slog.Info("ai time inference enabled", "model", p.AIModel)
	}
	parser := nlp.NewParser(inferrer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	srv := server.New(p, st, parser)
	g.Go(func() error {
		return srv.Start(ctx)
	})
	return g.Wait()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
