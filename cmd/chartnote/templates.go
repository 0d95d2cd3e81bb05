package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/templates"
)

// templateSummary is a template without its code.
type templateSummary struct {
	Key         string           `json:"key" yaml:"key"`
	Name        string           `json:"name" yaml:"name"`
	Kind        models.ChartType `json:"kind" yaml:"kind"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Source      string           `json:"source,omitempty" yaml:"source,omitempty"`
}

func summarize(ts []models.Template) []templateSummary {
	result := make([]templateSummary, len(ts))
	for i, t := range ts {
		result[i] = templateSummary{
			Key:         t.Key,
			Name:        t.Name,
			Kind:        t.Kind,
			Description: t.Description,
			Tags:        t.Tags,
			Source:      t.Source,
		}
	}
	return result
}

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse the template gallery",
	}

	var kind string
	list := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				return writeResult(cmd, summarize(templates.Default().List()))
			}
			ct, ok := models.ParseChartType(kind)
			if !ok {
				return fmt.Errorf("unknown chart type %q", kind)
			}
			return writeResult(cmd, summarize(templates.Default().ByKind(ct)))
		},
	}
	list.Flags().StringVar(&kind, "kind", "", "Only templates of this chart type")

	search := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search templates by key, name, description and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeResult(cmd, summarize(templates.Default().Search(strings.Join(args, " "))))
		},
	}

	var meta bool
	show := &cobra.Command{
		Use:   "show KEY",
		Short: "Print a template's code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := templates.Default().Lookup(args[0])
			if err != nil {
				return err
			}
			if meta {
				return writeResult(cmd, t)
			}
			return writeText(cmd, t.Code)
		},
	}
	show.Flags().BoolVar(&meta, "meta", false, "Print the template with its metadata in the output format")

	cmd.AddCommand(list, search, show)
	return cmd
}
