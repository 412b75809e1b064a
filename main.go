package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/paul-mcnamee/TileableImagesToPdf/assembler"
)

var (
	configFile      string
	outputDir       string
	outputName      string
	templatePath    string
	frontMatterPath string
	backMatterPath  string
	tileMode        bool
	noSeparators    bool
	randomize       bool
	recursive       bool
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "tileable-images-to-pdf [flags] [dir ...]",
	Short: "Assemble directories of images into print-ready PDF books",
	Long: `Assembles the image files found in each input directory into one paginated
PDF built from a page-sized template, with optional front and back matter,
blank separator pages, tiling of small images, and shuffled ordering.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := RunConfig{
			InputDirs:       args,
			Verbose:         verbose,
			Recursive:       recursive,
			OutputDir:       outputDir,
			OutputName:      outputName,
			Tileable:        tileMode,
			SkipSeparators:  noSeparators,
			Randomize:       randomize,
			FrontMatterPath: frontMatterPath,
			BackMatterPath:  backMatterPath,
			TemplatePath:    templatePath,
		}
		if configFile != "" {
			settings, err := loadSettings(configFile)
			if err != nil {
				return err
			}
			cfg.applyFile(settings, cmd.Flags().Changed)
		}
		cfg.applyDefaults()
		return runAll(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML settings file providing flag defaults")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for output files (default: each input directory)")
	rootCmd.Flags().StringVar(&outputName, "name", "output", "Base name of the output file")
	rootCmd.Flags().StringVar(&templatePath, "template", "template.pdf", "Page template PDF")
	rootCmd.Flags().StringVar(&frontMatterPath, "front-matter", "", "PDF whose pages are prepended before the image pages")
	rootCmd.Flags().StringVar(&backMatterPath, "back-matter", "", "PDF whose pages are appended after the image pages")
	rootCmd.Flags().BoolVar(&tileMode, "tile", false, "Tile each image at native size instead of fitting it to the page")
	rootCmd.Flags().BoolVar(&noSeparators, "no-separators", false, "Do not insert blank template pages between images")
	rootCmd.Flags().BoolVar(&randomize, "randomize", false, "Shuffle the image order")
	rootCmd.Flags().BoolVar(&recursive, "recursive", false, "Search input directories recursively")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Print per-page progress")
}

// runAll processes every input directory independently: a failed directory
// is logged and skipped, and the remaining directories are still attempted.
func runAll(cfg RunConfig) error {
	failed := 0
	for _, dir := range cfg.InputDirs {
		if err := processDirectory(cfg, dir); err != nil {
			log.Printf("skipping %s: %v", dir, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d directories failed", failed, len(cfg.InputDirs))
	}
	return nil
}

// processDirectory assembles one output document from one input directory.
func processDirectory(cfg RunConfig, dir string) error {
	paths, err := discoverImages(dir, cfg.Recursive)
	if err != nil {
		return fmt.Errorf("discovering images: %w", err)
	}
	if cfg.Verbose {
		log.Printf("found %d images in %s", len(paths), dir)
	}
	if cfg.Randomize {
		assembler.Shuffle(paths)
	}

	a := assembler.New(cfg.outputPathFor(dir), assembler.Options{
		TemplatePath:    cfg.TemplatePath,
		FrontMatterPath: cfg.FrontMatterPath,
		BackMatterPath:  cfg.BackMatterPath,
		Tile:            cfg.Tileable,
		SkipSeparators:  cfg.SkipSeparators,
		Verbose:         cfg.Verbose,
	})
	return a.Assemble(paths)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
