package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pbj/internal/meshes"
	"pbj/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [blob]",
	Short: "List the meshes in a mesh blob",
	Long: `Prints every mesh in the blob with its vertex range and size, and reports
whether the meshes the game needs are present.

Examples:
  game inspect
  game inspect assets/pbj_meshes.blob`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

var packCmd = &cobra.Command{
	Use:   "pack <in> <out>",
	Short: "Compress a mesh blob with zstd",
	Long: `Validates a raw mesh blob and writes it as a zstd frame. The game opens
compressed and raw blobs alike.`,
	Args: cobra.ExactArgs(2),
	RunE: runPack,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := flagAssets
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path = cfg.Assets.Meshes
	}
	catalog, err := meshes.Open(path)
	if err != nil {
		return err
	}

	names := catalog.Names()
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Printf("%s\n\n", path)
	fmt.Printf("  %-*s  %8s  %8s  %s\n", maxNameLen, "Name", "First", "Count", "Size")
	for _, name := range names {
		m, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		size := uint64(m.Count) * meshes.VertexSize
		fmt.Printf("  %-*s  %8d  %8d  %s\n", maxNameLen, name, m.First, m.Count, humanize.Bytes(size))
	}
	fmt.Println()
	fmt.Printf("%d meshes, %d vertices, %s\n", len(names), catalog.Len(), humanize.Bytes(uint64(catalog.Size())))
	if n := catalog.Trailing(); n > 0 {
		fmt.Printf("%s of trailing data ignored\n", humanize.Bytes(uint64(n)))
	}

	if _, err := render.ResolveMeshes(catalog); err != nil {
		return fmt.Errorf("not playable: %w", err)
	}
	fmt.Println("All required meshes present.")
	return nil
}

func runPack(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	packed, err := meshes.Compress(raw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], packed, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s -> %s (%s -> %s)\n", args[0], args[1],
		humanize.Bytes(uint64(len(raw))), humanize.Bytes(uint64(len(packed))))
	return nil
}
