// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"spritec-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// logger writes diagnostics to stderr; stdout stays free for pipelines.
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

// BuildFunc consumes a validated configuration and produces the spritesheet.
// The generation pipeline is an external collaborator of this module: the
// embedding binary wires the real implementation, tests wire fakes.
type BuildFunc func(ctx context.Context, cfg *config.Config) error

// NewRootCmd constructs the spritec command. A fresh command is built per
// call so repeated parses are independent of each other and of process state.
func NewRootCmd(build BuildFunc) *cobra.Command {
	opts := &config.Options{}
	var verbose bool

	root := &cobra.Command{
		Use:   "spritec <INPUT_DIR> <OUTPUT> [flags]",
		Short: "Create a spritesheet from a directory of images",
		Long: TitleStyle.Render("spritec") + SubtitleStyle.Render(" - spritesheet generator") + `

spritec packs a directory of images into a single spritesheet and writes a
JSON index describing each sprite's position and size.

Arguments are validated up front, all-or-nothing: the input directory must
exist, numeric flags must sit inside their documented ranges, and conflicting
flags (--ratio with --retina, --oxipng with --zopfli) are rejected before any
work starts.

` + SubtitleStyle.Render("Examples:") + `
  ` + CmdStyle.Render("spritec icons sprites") + `               pack ./icons into sprites.png
  ` + CmdStyle.Render("spritec icons sprites --retina") + `      rasterize at pixel ratio 2
  ` + CmdStyle.Render("spritec icons sprites --crop -m") + `     crop sprites, minify the index`,
		Args: cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Output = args[1]
			flags := cmd.Flags()
			opts.RatioSet = flags.Changed(config.FlagRatio)
			opts.OxipngSet = flags.Changed(config.FlagOxipng)
			opts.ZopfliSet = flags.Changed(config.FlagZopfli)

			cfg, err := opts.Resolve()
			if err != nil {
				if verbose {
					if card := remediationCard(err); card != "" {
						fmt.Fprintln(cmd.ErrOrStderr(), card)
					}
				}
				return &ExitError{Code: ExitUsage, Err: describeFailure(err)}
			}

			logResolved(cfg)
			return build(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	registerOptionFlags(root, opts)

	return root
}

// registerOptionFlags binds the option schema onto the command. Numeric flags
// are registered as strings so internal/config owns the parse/range taxonomy
// instead of pflag.
func registerOptionFlags(cmd *cobra.Command, opts *config.Options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Ratio, config.FlagRatio, "r", "1", "set the output pixel ratio")
	flags.BoolVar(&opts.Retina, config.FlagRetina, false, "set the pixel ratio to 2 (equivalent to --ratio=2)")
	flags.BoolVar(&opts.Unique, config.FlagUnique, false, "store only unique images, and map them to multiple names")
	flags.BoolVar(&opts.Recursive, config.FlagRecursive, false, "include images in sub-directories")
	flags.BoolVar(&opts.Crop, config.FlagCrop, false, "crop images to remove transparent pixels around the edges")
	flags.BoolVar(&opts.IncludeCenter, config.FlagIncludeCenter, false, "record the pre-crop center of each sprite in the index file")
	flags.StringVar(&opts.Spacing, config.FlagSpacing, "0", "add pixel spacing between sprites")
	flags.StringVar(&opts.Oxipng, config.FlagOxipng, "", "set the PNG optimization level (0-6)")
	flags.StringVar(&opts.Zopfli, config.FlagZopfli, "", "optimize the PNG with zopfli iterations (1-255, very slow)")
	flags.BoolVarP(&opts.MinifyIndexFile, config.FlagMinifyIndexFile, "m", false, "remove whitespace from the JSON index file")
	flags.BoolVar(&opts.SimpleIndexFile, config.FlagSimpleIndexFile, false, "output only x, y, width and height to the JSON index file")
	flags.BoolVar(&opts.SDF, config.FlagSDF, false, "output signed-distance-field sprites")
}

// logResolved reports the validated configuration at debug level.
func logResolved(cfg *config.Config) {
	logger.Debug("resolved configuration",
		"input", cfg.Input,
		"output", cfg.Output,
		"ratio", cfg.Ratio,
		"retina", cfg.Retina,
		"unique", cfg.Unique,
		"recursive", cfg.Recursive,
		"crop", cfg.Crop,
		"include_center", cfg.IncludeCenter,
		"spacing", cfg.Spacing,
		"oxipng", formatOptLevel(cfg.Oxipng),
		"zopfli", formatOptLevel(cfg.Zopfli),
		"minify_index_file", cfg.MinifyIndexFile,
		"simple_index_file", cfg.SimpleIndexFile,
		"sdf", cfg.SDF,
	)
}

func formatOptLevel(level *uint8) string {
	if level == nil {
		return "off"
	}
	return fmt.Sprintf("%d", *level)
}

// runBuild is the default build seam: it hands the validated configuration to
// the spritesheet builder. The standalone binary has no builder linked in, so
// it stops after reporting that validation passed.
func runBuild(ctx context.Context, cfg *config.Config) error {
	logger.Info("configuration valid", "input", cfg.Input, "output", cfg.Output)
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and maps failures to process exit codes.
// This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCmd(runBuild),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(ExitFailure))
	}
}
