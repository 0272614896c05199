package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"locale-router/internal/config"
	"locale-router/internal/filewalker"
	"locale-router/internal/langtag"
	"locale-router/internal/languages"
	"locale-router/internal/pathgen"
	"locale-router/internal/structure"
	"locale-router/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "locale-router",
		Short: "Project-structure-aware path router for localization assets",
		Long: `Infers a project's localization layout from a source file's path, lists the
sibling target languages already present, and computes collision-free
destination paths for newly translated files.`,
	}

	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(languagesCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(normalizeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <source-file>",
		Short: "Classify the localization layout around a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := structure.Detect(args[0])
			fmt.Printf("kind: %s\n", st.Kind)
			fmt.Printf("base: %s\n", st.BasePath)
			if st.SourceLanguage != "" {
				fmt.Printf("source language: %s\n", st.SourceLanguage)
			}
			return nil
		},
	}
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages <source-file>",
		Short: "List sibling target languages already present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			enum := languages.NewEnumerator(afero.NewOsFs(), sortLocale(cfg), log.Logger)
			for _, lang := range enum.List(args[0]) {
				fmt.Println(lang)
			}
			return nil
		},
	}
}

func targetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target <source-file> <language>",
		Short: "Compute the destination path for a translated file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !langtag.Validate(args[1]) {
				return fmt.Errorf("invalid language tag: %s", args[1])
			}

			cfg := config.Load()
			gen := pathgen.NewGenerator(afero.NewOsFs(), log.Logger).WithCollisionLimit(cfg.CollisionLimit)

			path, err := gen.TargetPath(args[0], args[1])
			if err != nil {
				return fmt.Errorf("generate target path: %w", err)
			}

			fmt.Println(path)
			return nil
		},
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <root> <language>",
		Short: "Compute destination paths for every asset under a root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args[0], args[1])
		},
	}
}

// runPlan handles the `plan` command.
func runPlan(root, target string) error {
	if !langtag.Validate(target) {
		return fmt.Errorf("invalid language tag: %s", target)
	}

	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	fs := afero.NewOsFs()

	w := filewalker.NewWalker(fs, cfg.AssetExtensions, log.Logger)
	entries, err := w.Walk(root)
	if err != nil {
		return fmt.Errorf("walk root: %w", err)
	}

	gen := pathgen.NewGenerator(fs, log.Logger).WithCollisionLimit(cfg.CollisionLimit)

	pool := worker.NewPool(cfg.WorkerCount,
		func(ctx context.Context, entry filewalker.FileEntry) (string, error) {
			return gen.TargetPath(entry.Path, target)
		},
		log.Logger,
	)

	results := pool.Execute(ctx, entries)

	planned := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		fmt.Printf("%s -> %s\n", r.Input.Path, r.Result)
		planned++
	}

	log.Info().
		Int("assets", len(entries)).
		Int("planned", planned).
		Str("language", target).
		Msg("Plan complete")

	return nil
}

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <tag>",
		Short: "Canonicalize a language tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, ok := langtag.Parse(args[0])
			if !ok {
				return fmt.Errorf("invalid language tag: %s", args[0])
			}

			fmt.Println(tag.String())

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				canonical, _ := langtag.Parse(tag.String())
				fmt.Printf("language: %s\n", canonical.Language)
				if canonical.Script != "" {
					fmt.Printf("script: %s\n", canonical.Script)
				}
				if canonical.Region != "" {
					fmt.Printf("region: %s\n", canonical.Region)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("verbose", false, "Print individual subtags")

	return cmd
}

// sortLocale parses the configured collation locale, falling back to the
// language-neutral root.
func sortLocale(cfg *config.Config) language.Tag {
	tag, err := language.Parse(cfg.SortLocale)
	if err != nil {
		log.Warn().Str("locale", cfg.SortLocale).Msg("Unparseable sort locale, using neutral collation")
		return language.Und
	}
	return tag
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
