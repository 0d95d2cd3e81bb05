package main

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartnote-go/pkg/chartnote"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/editor"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

func newAnalyzeCmd() *cobra.Command {
	var descriptorOnly bool

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Infer chart type, data and style from a D3 script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if descriptorOnly {
				return writeResult(cmd, chartnote.InferMetadata(string(src)))
			}
			return writeResult(cmd, chartnote.Analyze(string(src)))
		},
	}
	cmd.Flags().BoolVar(&descriptorOnly, "descriptor", false, "Print only the descriptor, without provenance")
	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		templateKey string
		from        string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a D3 script from a template and a descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return writeText(cmd, editor.NewSession("", templateKey).Code())
			}
			data, err := readInput(cmd, []string{from})
			if err != nil {
				return err
			}
			d, err := decodeDescriptor(data)
			if err != nil {
				return err
			}
			return writeText(cmd, chartnote.Synthesize(d, templateKey))
		},
	}
	cmd.Flags().StringVarP(&templateKey, "template", "t", "bar", "Template key")
	cmd.Flags().StringVar(&from, "from", "", "Descriptor file (JSON or YAML, - for stdin); sample data when empty")
	return cmd
}

// decodeDescriptor reads a JSON or YAML descriptor. Numbers in records
// become float64 either way.
func decodeDescriptor(data []byte) (models.Descriptor, error) {
	var d models.Descriptor
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		if err := json.Unmarshal(trimmed, &d); err != nil {
			return d, fmt.Errorf("invalid descriptor: %w", err)
		}
		return d, nil
	}
	if err := yaml.Unmarshal(trimmed, &d); err != nil {
		return d, fmt.Errorf("invalid descriptor: %w", err)
	}
	for _, r := range d.Data {
		for k, v := range r {
			switch n := v.(type) {
			case int:
				r[k] = float64(n)
			case int64:
				r[k] = float64(n)
			case uint64:
				r[k] = float64(n)
			}
		}
	}
	return d, nil
}
