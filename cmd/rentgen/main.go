package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - generate: Generate a dataset and export it as CSV
// - validate: Check exported datasets against their manifests

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := rentgenFlags{
		Generate: newGenerateFlags(),
		Validate: newValidateFlags(),
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type rentgenFlags struct {
	Generate generateFlags
	Validate validateFlags
}

type generateFlags struct {
	cmd         *flag.FlagSet
	config      *string
	seed        *int64
	scale       *int
	output      *string
	suffix      *string
	compression *string
	createDir   *bool
}

type validateFlags struct {
	cmd      *flag.FlagSet
	dir      *string
	json     *bool
	logLevel *string
}

// newGenerateFlags defines the generate parameters. Unset flags keep the config file values.
func newGenerateFlags() generateFlags {
	cmd := flag.NewFlagSet("generate", flag.ExitOnError)

	return generateFlags{
		cmd:         cmd,
		config:      cmd.String("config", "", "Config file (default: config/config.yaml in the search paths)"),
		seed:        cmd.Int64("seed", 0, "Random seed, 0 picks a fresh one"),
		scale:       cmd.Int("scale", 0, "Base unit multiplied by every entity ratio"),
		output:      cmd.String("output", "", "Output directory or blob URL"),
		suffix:      cmd.String("suffix", "", "Size suffix of the dataset directory and files"),
		compression: cmd.String("compression", "", "Table compression: none or lz4"),
		createDir:   cmd.Bool("create-dir", false, "Create the output directory if missing"),
	}
}

func newValidateFlags() validateFlags {
	cmd := flag.NewFlagSet("validate", flag.ExitOnError)

	return validateFlags{
		cmd:      cmd,
		dir:      cmd.String("dir", "./out", "Directory searched for dataset manifests"),
		json:     cmd.Bool("json", false, "Print the report as JSON"),
		logLevel: cmd.String("log-level", "info", "Log level"),
	}
}

func runSubcommand(ctx context.Context, flags *rentgenFlags) error {
	switch os.Args[1] {
	case "generate":
		return handleGenerate(ctx, flags)
	case "validate":
		return handleValidate(ctx, flags)
	case "-h", "--help", "help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

func handleGenerate(ctx context.Context, flags *rentgenFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	return runGenerate(ctx, &flags.Generate)
}

func handleValidate(ctx context.Context, flags *rentgenFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(ctx, *flags.Validate.dir, *flags.Validate.json, *flags.Validate.logLevel)
}

func printUsage() {
	fmt.Println("Usage: rentgen <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate a rental-marketplace dataset as CSV")
	fmt.Println("  validate    Validate exported datasets")
	fmt.Println("")
	fmt.Println("Use 'rentgen <command> -h' for more information about a command.")
}
