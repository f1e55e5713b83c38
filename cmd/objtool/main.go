// objtool is a CLI utility for inspecting and editing Wavefront OBJ meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Faultbox/skyshow/internal/config"
	"github.com/Faultbox/skyshow/internal/export"
	"github.com/Faultbox/skyshow/pkg/obj"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "faces":
		cmdFaces(args)
	case "remove", "rm":
		cmdRemove(args)
	case "export":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ mesh utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                     Show mesh information
  faces <file.obj> [-n N]             List faces with their vertex indices
  remove <file.obj> [options]         Remove faces and save the result
  export <file.obj> [-o out.skyc]     Export vertices as a drone-show archive

Remove options:
  -r "0-5,7"    Face indices to remove (ranges allowed)
  -arity N      Remove faces with exactly N vertices
  -clean        Drop vertices left unreferenced
  -o file.obj   Output path (required)

Examples:
  objtool info model.obj
  objtool remove model.obj -r 0,2-4 -clean -o trimmed.obj
  objtool export model.obj -o show.skyc`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	mesh := loadMesh(args[0])
	stats := mesh.Info()

	fmt.Printf("File:     %s\n", args[0])
	fmt.Printf("Vertices: %d\n", stats.VertexCount)
	fmt.Printf("Faces:    %d\n", stats.FaceCount)

	if stats.HasBounds {
		b := stats.Bounds
		fmt.Printf("Bounds:   X[%.4f, %.4f] Y[%.4f, %.4f] Z[%.4f, %.4f]\n",
			b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z)
	}

	if len(stats.FaceArity) > 0 {
		fmt.Println("Face types:")
		arities := make([]int, 0, len(stats.FaceArity))
		for n := range stats.FaceArity {
			arities = append(arities, n)
		}
		sort.Ints(arities)
		for _, n := range arities {
			fmt.Printf("  %-12s %d\n", arityName(n), stats.FaceArity[n])
		}
	}
}

func arityName(n int) string {
	switch n {
	case 3:
		return "triangles"
	case 4:
		return "quads"
	case 5:
		return "pentagons"
	case 6:
		return "hexagons"
	}
	return fmt.Sprintf("%d-gons", n)
}

func cmdFaces(args []string) {
	fs := flag.NewFlagSet("faces", flag.ExitOnError)
	limit := fs.Int("n", 50, "Limit output to N faces (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool faces <file.obj> [-n N]")
		os.Exit(1)
	}

	mesh := loadMesh(fs.Arg(0))
	for i, face := range mesh.Faces {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "... and %d more faces\n", len(mesh.Faces)-*limit)
			break
		}
		idx := make([]string, len(face))
		for j, v := range face {
			idx[j] = strconv.Itoa(v)
		}
		fmt.Printf("Face %d: [%s]\n", i, strings.Join(idx, ", "))
	}
}

func cmdRemove(args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	indices := fs.String("r", "", "Face indices to remove (e.g. \"0,1,2\" or \"0-5,7\")")
	arity := fs.Int("arity", 0, "Remove faces with exactly N vertices")
	clean := fs.Bool("clean", false, "Drop vertices left unreferenced")
	output := fs.String("o", "", "Output OBJ path")
	fs.Parse(args)

	if fs.NArg() < 1 || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: objtool remove <file.obj> [-r indices] [-arity N] [-clean] -o out.obj")
		os.Exit(1)
	}

	mesh := loadMesh(fs.Arg(0))

	if *indices != "" {
		list, err := parseIndexList(*indices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		removed := mesh.RemoveFaces(list)
		fmt.Printf("Removed %d faces by index\n", removed)
	}

	if *arity > 0 {
		removed := mesh.RemoveFacesWhere(func(_ int, face []int) bool {
			return len(face) == *arity
		})
		fmt.Printf("Removed %d %s\n", removed, arityName(*arity))
	}

	if *clean {
		removed := mesh.RemoveUnusedVertices()
		fmt.Printf("Removed %d unused vertices\n", removed)
	}

	if err := mesh.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d vertices, %d faces to %s\n", len(mesh.Vertices), len(mesh.Faces), *output)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("o", "", "Output .skyc path (default from config)")
	title := fs.String("title", "", "Show title (default from config)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool export <file.obj> [-o out.skyc] [-title T]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	mesh := loadMesh(fs.Arg(0))

	summary, err := export.Run(mesh.Vertices, mesh.Faces, exportOptions(cfg, *output, *title))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d agents to %s (%.2fs show)\n",
		summary.AgentCount, summary.Path, summary.DurationSeconds)
}

// exportOptions builds pipeline options from the config, with the
// subcommand flags overriding the configured output path and title.
func exportOptions(cfg *config.Config, output, title string) export.Options {
	opts := export.Options{
		OutputPath: cfg.Output.Filename,
		Title:      cfg.Show.Title,
		Volume: export.Volume{
			XYMin: cfg.Volume.XYMin,
			XYMax: cfg.Volume.XYMax,
			ZMin:  cfg.Volume.ZMin,
			ZMax:  cfg.Volume.ZMax,
		},
		FPS:        cfg.Show.FPS,
		FrameCount: cfg.Show.FrameCount,
	}
	if output != "" {
		opts.OutputPath = output
	}
	if title != "" {
		opts.Title = title
	}
	return opts
}

func loadMesh(path string) *obj.Mesh {
	mesh, err := obj.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh
}

// parseIndexList parses "0,1,2" or "0-5,7,9-11" into a list of indices.
func parseIndexList(s string) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(from)
			if err != nil {
				return nil, fmt.Errorf("bad index range %q", part)
			}
			end, err := strconv.Atoi(to)
			if err != nil || end < start {
				return nil, fmt.Errorf("bad index range %q", part)
			}
			for i := start; i <= end; i++ {
				indices = append(indices, i)
			}
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", part)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
