package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/solatis/surfacegen/internal/core/config"
	"github.com/solatis/surfacegen/internal/render"
	"github.com/solatis/surfacegen/internal/surface"
	"github.com/spf13/cobra"
)

// outputFlags registers --indent and --format on commands that print trees.
type outputFlags struct {
	indent int
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.indent, "indent", 4, fmt.Sprintf("indentation width, 0 for compact (max %d)", config.MaxIndent))
	cmd.Flags().StringVar(&o.format, "format", config.FormatJSON, "output format (json, yaml, proto)")
}

// resolve overlays changed flags on the configured output settings.
func (o *outputFlags) resolve(cmd *cobra.Command, cfg *config.Config) (config.OutputConfig, error) {
	out := cfg.Output
	if cmd.Flags().Changed("indent") {
		out.Indent = o.indent
	}
	if cmd.Flags().Changed("format") {
		out.Format = strings.ToLower(o.format)
	}
	if !config.Formats.Has(out.Format) {
		return out, fmt.Errorf("unknown format %q (expected json, yaml, proto)", out.Format)
	}
	return out, nil
}

func writeValue(w io.Writer, v any, out config.OutputConfig) error {
	switch out.Format {
	case config.FormatYAML:
		data, err := render.YAML(v, out.Indent)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatProto:
		data, err := render.Proto(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return render.Write(w, v, render.WithIndent(out.Indent))
	}
}

// readTreeFile decodes a JSON or YAML tree file; "-" reads stdin.
// YAML is chosen by a .yaml or .yml extension.
func readTreeFile(cmd *cobra.Command, path string) (surface.SurfaceRule, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = render.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	rule, err := surface.DecodeRule(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rule, nil
}
