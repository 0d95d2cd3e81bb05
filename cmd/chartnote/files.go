package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartnote-go/internal/logger"
	"github.com/ukaji3/chartnote-go/pkg/chartnote"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/render"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/sheets"
)

func newRenderCmd() *cobra.Command {
	var (
		format string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a preview of a D3 script as HTML, PNG or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			d := chartnote.InferMetadata(string(src))

			w := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				defer f.Close()
				w = f
			}

			if strings.EqualFold(format, "html") {
				return render.HTML(w, d, title)
			}
			imgFormat, err := render.ParseImageFormat(format)
			if err != nil {
				return err
			}
			return render.Image(w, d, imgFormat)
		},
	}
	cmd.Flags().StringVar(&format, "as", "html", "Preview format: html, png, svg")
	cmd.Flags().StringVar(&title, "title", "", "Preview title (default: chart type)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var (
		sheet       string
		ref         string
		fromChart   bool
		chartType   string
		templateKey string
		descriptor  bool
	)

	cmd := &cobra.Command{
		Use:   "import WORKBOOK.xlsx",
		Short: "Build a chart script from spreadsheet data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := importDescriptor(args[0], sheet, ref, fromChart)
			if err != nil {
				return err
			}
			if chartType != "" {
				ct, ok := models.ParseChartType(chartType)
				if !ok {
					return fmt.Errorf("unknown chart type %q", chartType)
				}
				d.Type = ct
			}
			log.Debug("Workbook imported", logger.Fields{"path": args[0], "type": string(d.Type), "records": len(d.Data)})
			if descriptor {
				return writeResult(cmd, d)
			}
			key := templateKey
			if key == "" {
				key = string(d.Type)
			}
			return writeText(cmd, chartnote.Synthesize(d, key))
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read (default: first sheet)")
	cmd.Flags().StringVar(&ref, "range", "", "Defined name or Sheet!A1:B9 reference to read")
	cmd.Flags().BoolVar(&fromChart, "chart", false, "Read the workbook's first chart instead of raw cells")
	cmd.Flags().StringVar(&chartType, "type", "", "Chart type of the generated script")
	cmd.Flags().StringVarP(&templateKey, "template", "t", "", "Template key (default: the chart type)")
	cmd.Flags().BoolVar(&descriptor, "descriptor", false, "Print the descriptor instead of code")
	return cmd
}

func importDescriptor(path, sheet, ref string, fromChart bool) (models.Descriptor, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return models.Descriptor{}, fmt.Errorf("%w: %s", chartnote.ErrFileNotFound, path)
	}
	if fromChart {
		return sheets.ImportChart(path)
	}

	var (
		records []models.Record
		err     error
	)
	if ref != "" {
		records, err = sheets.ImportRange(path, ref)
	} else {
		records, err = sheets.ImportRecords(path, sheet)
	}
	if err != nil {
		return models.Descriptor{}, err
	}
	return models.Descriptor{
		Type:   parser.DefaultType,
		Data:   records,
		Width:  parser.DefaultWidth,
		Height: parser.DefaultHeight,
		Color:  parser.DefaultColor,
	}, nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file|-]",
		Short: "Write a D3 script's data to an xlsx workbook (requires --output)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return errors.New("export requires --output")
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			d := chartnote.InferMetadata(string(src))
			if err := sheets.Export(outputPath, d); err != nil {
				return err
			}
			log.Info("Workbook written", logger.Fields{"path": outputPath, "type": string(d.Type), "records": len(d.Data)})
			return nil
		},
	}
}
