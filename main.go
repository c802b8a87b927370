package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr/gltfscene"
	"github.com/df07/go-light-bridge/pkg/rpr/memory"
	"github.com/df07/go-light-bridge/pkg/scene"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sourceFlags select the rig to export
type sourceFlags struct {
	rig       string
	preset    string
	frame     int
	unitScale float64
}

func (sf *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.rig, "rig", "", "rig file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&sf.preset, "preset", "", "built-in rig: "+presetIDs())
	cmd.Flags().IntVar(&sf.frame, "frame", -1, "export frame (default: the rig's frame)")
	cmd.Flags().Float64Var(&sf.unitScale, "unit-scale", 0, "meters per scene unit (default: the rig's scale)")
	cmd.MarkFlagsMutuallyExclusive("rig", "preset")
	cmd.MarkFlagsOneRequired("rig", "preset")
}

func (sf *sourceFlags) options(logger core.Logger) scene.ExportOptions {
	opts := scene.ExportOptions{UnitScale: sf.unitScale, Logger: logger}
	if sf.frame >= 0 {
		frame := sf.frame
		opts.Frame = &frame
	}
	return opts
}

func presetIDs() string {
	var ids []string
	for _, p := range scene.Presets() {
		ids = append(ids, p.ID)
	}
	return strings.Join(ids, ", ")
}

// loadRig returns the rig named by a file path or a preset id
func loadRig(rigPath, preset string) (*scene.Rig, error) {
	switch {
	case rigPath != "" && preset != "":
		return nil, errors.New("use either a rig file or a preset, not both")
	case rigPath != "":
		return scene.LoadRig(rigPath)
	case preset != "":
		return scene.PresetRig(preset)
	default:
		return nil, errors.New("no rig given")
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var vv, v, q bool
	var logger core.Logger = core.DiscardLogger{}

	root := &cobra.Command{
		Use:           "lightbridge",
		Short:         "Export physical light rigs to renderer scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: core.LevelFromFlags(vv, v, q)})
			logger = core.NewSlogLogger(slog.New(handler))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&vv, "vv", false, "debug output")
	root.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "only report errors")

	// logger is set once flags are parsed
	log := func() core.Logger { return logger }

	root.AddCommand(
		newExportCmd(log),
		newInspectCmd(log),
		newListCmd(log),
		newPresetCmd(),
	)

	return root
}

func newExportCmd(log func() core.Logger) *cobra.Command {
	var src sourceFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a rig as a glTF scene",
		Long: "Export a rig as a glTF scene. Area lights become emissive meshes, other\n" +
			"lights KHR_lights_punctual lights. The extension of --out selects .gltf or .glb.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(filepath.Ext(out)) {
			case ".gltf", ".glb":
			default:
				return fmt.Errorf("output %q must end in .gltf or .glb", out)
			}

			rig, err := loadRig(src.rig, src.preset)
			if err != nil {
				return err
			}

			scope := gltfscene.NewScope()
			if sl, ok := log().(*core.SlogLogger); ok {
				scope.Logger = sl.At(slog.LevelWarn)
			}
			res, err := scene.Export(rig, scope, src.options(log()))
			if err != nil {
				return fmt.Errorf("failed to export %q: %w", rig.Name, err)
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := scope.Save(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d lights and %d props to %s\n", res.Lights, res.Props, out)
			if res.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d disabled or unresolved lights\n", res.Skipped)
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.gltf or .glb)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newInspectCmd(log func() core.Logger) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the renderer objects a rig exports to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rig, err := loadRig(src.rig, src.preset)
			if err != nil {
				return err
			}

			scope := memory.NewScope()
			if _, err := scene.Export(rig, scope, src.options(log())); err != nil {
				return fmt.Errorf("failed to export %q: %w", rig.Name, err)
			}
			return scope.WriteYAML(cmd.OutOrStdout())
		},
	}
	src.register(cmd)
	return cmd
}

func newListCmd(log func() core.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List built-in rigs and the rig files in dir (default: rigs)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "rigs"
			if len(args) == 1 {
				dir = args[0]
			}

			rigs, err := scene.ListAllRigs(dir, log())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rigs); err != nil {
				return fmt.Errorf("failed to encode rig list: %w", err)
			}
			return enc.Close()
		},
	}
}

func newPresetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "preset NAME",
		Short: "Print a built-in rig as a rig file to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rig, err := scene.PresetRig(args[0])
			if err != nil {
				return err
			}
			data, err := rig.Encode(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", scene.FormatYAML, "rig file format: yaml or toml")
	return cmd
}
