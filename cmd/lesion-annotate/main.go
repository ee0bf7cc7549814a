// Command lesion-annotate measures retinal lesions in a batch of OCT
// scans and writes an annotated overlay, a composited review image and
// a JSON measurement record for each one.
//
// Every scan in the raw directory is paired with the same-named label
// mask in the mask directory. Scans without a mask are skipped with a
// warning, and a failure in one scan never stops the batch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/retinalab/oct-lesion-tools/internal/analyze"
	"github.com/retinalab/oct-lesion-tools/internal/config"
	"github.com/retinalab/oct-lesion-tools/internal/measure"
	"github.com/retinalab/oct-lesion-tools/internal/overlay"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	rawDir := flag.String("raw", "raw_image", "directory of source scans")
	maskDir := flag.String("mask", "seg_mask", "directory of label masks, named like their scans")
	outDir := flag.String("out", "output_result", "directory for overlays, composites and JSON records")
	configPath := flag.String("config", "lesion-annotate.yaml", "lesion table configuration (defaults used if absent)")
	spacing := flag.Float64("spacing", 0, "pixel spacing in micrometres per pixel (0 = report raw pixels)")
	debugComposite := flag.Bool("debug-composite", false, "also write the overlay composited over the mask itself")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lesion-annotate %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	scale := measure.Pixels()
	if *spacing > 0 {
		scale, err = measure.Physical(*spacing)
		if err != nil {
			log.Fatal().Err(err).Msg("bad pixel spacing")
		}
	}

	for _, dir := range []string{*rawDir, *maskDir, *outDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("creating directory")
		}
	}

	names, err := listImages(*rawDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *rawDir).Msg("listing scans")
	}
	if len(names) == 0 {
		log.Warn().Str("dir", *rawDir).Msg("no scans found, place images in the raw directory")
		return
	}

	log.Info().
		Int("scans", len(names)).
		Float64("spacing_um", *spacing).
		Msg("starting batch")

	analyzer := analyze.New(cfg, scale, log)
	failures := 0

	for _, name := range names {
		maskPath := filepath.Join(*maskDir, name)
		if _, err := os.Stat(maskPath); os.IsNotExist(err) {
			log.Warn().Str("scan", name).Msg("no matching mask, skipping")
			continue
		}

		if err := processScan(analyzer, filepath.Join(*rawDir, name), maskPath, *outDir, name, *debugComposite); err != nil {
			log.Error().Err(err).Str("scan", name).Msg("scan failed")
			failures++
			continue
		}
		log.Info().Str("scan", name).Msg("done")
	}

	if failures > 0 {
		log.Error().Int("failed", failures).Msg("batch finished with failures")
		os.Exit(1)
	}
}

// listImages returns the supported image file names in dir, sorted.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff":
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// processScan runs the full pipeline for one scan and persists its
// outputs. Nothing is written unless the whole pipeline succeeds, so a
// failed scan leaves no partial output behind.
func processScan(analyzer *analyze.Analyzer, rawPath, maskPath, outDir, name string, debugComposite bool) error {
	src, err := imaging.Open(rawPath)
	if err != nil {
		return fmt.Errorf("decoding scan: %w", err)
	}
	maskImg, err := imaging.Open(maskPath)
	if err != nil {
		return fmt.Errorf("decoding mask: %w", err)
	}

	report, canvas, err := analyzer.Analyze(src, maskImg)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	report.Filename = name
	report.OverlayImage = base + "_overlay.png"
	report.OutputImage = base + "_analyzed.jpg"

	if err := imaging.Save(canvas.Image(), filepath.Join(outDir, report.OverlayImage)); err != nil {
		return fmt.Errorf("writing overlay: %w", err)
	}

	combined := overlay.Composite(src, canvas)
	if err := imaging.Save(combined, filepath.Join(outDir, report.OutputImage)); err != nil {
		return fmt.Errorf("writing composite: %w", err)
	}

	if debugComposite {
		maskCombined := overlay.Composite(maskImg, canvas)
		if err := imaging.Save(maskCombined, filepath.Join(outDir, base+"_mask_analyzed.png")); err != nil {
			return fmt.Errorf("writing mask composite: %w", err)
		}
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, base+"_result.json"), data, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}
