// Copyright 2026 the DICOM-viewer authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dicomview decodes a DICOM file and exports the windowed image as
// PNG.
//
//	dicomview -input scan.dcm -output scan.png -preset bone
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/utevo/DICOM-viewer/config"
	"github.com/utevo/DICOM-viewer/dataset"
	"github.com/utevo/DICOM-viewer/imaging"
	"github.com/utevo/DICOM-viewer/render"
)

func main() {
	inputPath := flag.String("input", "", "DICOM file to decode")
	outputPath := flag.String("output", "", "PNG file to write (default taken from the configuration)")
	configPath := flag.String("config", "", "viewer configuration YAML file")
	presetName := flag.String("preset", "", "window preset from the configuration, overrides the file's hints")
	autoWindow := flag.Bool("auto-window", false, "estimate the window from the sample distribution")
	printMetadata := flag.Bool("print-metadata", false, "print image metadata")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		logger = logger.Level(level)
	}
	if *outputPath == "" {
		*outputPath = cfg.Viewer.Output
	}

	if err := run(logger, cfg, *inputPath, *outputPath, *presetName, *autoWindow, *printMetadata); err != nil {
		logger.Fatal().Err(err).Str("input", *inputPath).Msg("decode failed")
	}
}

func run(logger zerolog.Logger, cfg *config.Config, inputPath, outputPath, presetName string, autoWindow, printMetadata bool) error {
	src, err := dataset.Open(inputPath)
	if err != nil {
		return err
	}

	syntax := imaging.DefaultTransferSyntax()
	uid, err := src.TransferSyntaxUID()
	switch {
	case errors.Is(err, imaging.ErrTagNotFound):
		logger.Warn().Msg("file carries no transfer syntax UID, assuming uncompressed little endian")
	case err != nil:
		return err
	default:
		if syntax, err = imaging.ResolveTransferSyntax(uid); err != nil {
			return err
		}
	}
	logger.Debug().Stringer("syntax", syntax).Msg("resolved transfer syntax")

	meta, err := imaging.ExtractImageMetadata(src)
	if err != nil {
		return err
	}
	if printMetadata {
		printImageMetadata(src, meta, syntax)
	}

	raster, err := imaging.Decode(meta, syntax)
	if err != nil {
		return err
	}
	rows, columns := raster.Bounds()
	logger.Info().Int("rows", rows).Int("columns", columns).Msg("decoded raster")

	voi := imaging.ResolveVOI(meta.Window)
	if presetName != "" {
		preset, ok := cfg.Preset(presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q", presetName)
		}
		voi = preset.Module()
	} else if autoWindow {
		window, err := render.AutoWindow(raster, cfg.Viewer.AutoWindowLow, cfg.Viewer.AutoWindowHigh)
		if err != nil {
			return err
		}
		voi.Window = window
	}
	logger.Debug().
		Float64("center", voi.Window.Center).
		Float64("width", voi.Window.Width).
		Stringer("function", voi.Function).
		Msg("resolved window")

	img, err := render.ApplyWindow(raster, voi)
	if err != nil {
		return err
	}
	if err := render.ExportPNG(outputPath, img); err != nil {
		return err
	}
	logger.Info().Str("output", outputPath).Msg("exported image")
	return nil
}

func printImageMetadata(src *dataset.Source, meta *imaging.ImageMetadata, syntax imaging.TransferSyntax) {
	compression, order := imaging.Classify(syntax)
	fmt.Printf("transfer syntax:   %v (compression %v, byte order %v)\n", syntax, compression, order)
	fmt.Printf("dimensions:        %dx%d\n", meta.Columns, meta.Rows)
	fmt.Printf("photometric:       %v\n", meta.PhotometricInterpretation)
	fmt.Printf("samples per pixel: %d\n", meta.SamplesPerPixel)
	fmt.Printf("bit layout:        %d allocated, %d stored, high bit %d\n", meta.BitsAllocated, meta.BitsStored, meta.HighBit)
	if spacing, err := readPixelSpacing(src); err == nil {
		fmt.Printf("pixel spacing:     %gx%g mm\n", spacing.Row, spacing.Column)
	}
	if meta.Window != nil {
		if meta.Window.Center != nil {
			fmt.Printf("window center:     %g\n", *meta.Window.Center)
		}
		if meta.Window.Width != nil {
			fmt.Printf("window width:      %g\n", *meta.Window.Width)
		}
		fmt.Printf("window function:   %v\n", meta.Window.Function)
	}
}

func readPixelSpacing(src *dataset.Source) (imaging.PixelSpacing, error) {
	s, err := src.StringAt(imaging.PixelSpacingTag)
	if err != nil {
		return imaging.PixelSpacing{}, err
	}
	return imaging.ParsePixelSpacing(s)
}
