package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docqa/internal/bootstrap"
	"docqa/internal/config"
	"docqa/internal/loader"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Ask questions about a document",
	Long: `docqa splits a text or PDF document into token-bounded chunks, embeds them
and answers questions from the chunks closest to each question.

It runs as an HTTP service (serve), an interactive terminal chat (chat)
or a one-shot command (ask).`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file (default ./config.yaml, then ~/.config/docqa/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
}

func initConfig() {
	_ = godotenv.Load()

	if verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func loadApp() (*bootstrap.App, error) {
	var cfg *config.AppConfig
	var err error
	if cfgFile == "" {
		var path string
		cfg, path, err = config.LoadDefault()
		if err == nil && verbose {
			log.Printf("using config %s", path)
		}
	} else {
		cfg, err = config.Load(cfgFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return bootstrap.New(cfg)
}

// readDocuments concatenates the text of every file, in order.
func readDocuments(paths []string) (string, error) {
	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		text, err := loader.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", p, err)
		}
		if t := strings.TrimSpace(text); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
