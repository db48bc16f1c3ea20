// Command fcplan plans the fast-composite passes for a scene description.
//
// Usage:
//
//	fcplan -scene frame.json [-avs] [-erratum] [-max-layers 8] [-force-bilinear=false] [-v] [-json]
//
// The scene is read from the named file, or from stdin when -scene is "-".
// Passes are printed as a table on a terminal and as JSON otherwise.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/compose"
	"github.com/gogpu/gputypes"
	"golang.org/x/term"
)

// maxPasses bounds the pass loop for scenes that never drain.
const maxPasses = 64

func main() {
	log.SetFlags(0)
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, tty); err != nil {
		log.Fatalf("fcplan: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, tty bool) error {
	fs := flag.NewFlagSet("fcplan", flag.ContinueOnError)
	var (
		scenePath     = fs.String("scene", "-", "scene description (JSON), - for stdin")
		avs           = fs.Bool("avs", false, "hardware has an AVS sampler")
		erratum       = fs.Bool("erratum", false, "down-scaling erratum workaround is active")
		maxLayers     = fs.Int("max-layers", compose.DefaultLimits().Layers, "maximum input layers per pass")
		forceBilinear = fs.Bool("force-bilinear", true, "switch nearest layers to bilinear when any layer is bilinear")
		verbose       = fs.Bool("v", false, "log selection decisions to stderr")
		asJSON        = fs.Bool("json", false, "print JSON even on a terminal")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if *scenePath != "-" {
		f, err := os.Open(*scenePath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	sc, err := decodeScene(in)
	if err != nil {
		return err
	}
	sources, target, err := sc.layers()
	if err != nil {
		return err
	}

	opts := []compose.Option{compose.WithForceBilinear(*forceBilinear)}
	if *verbose {
		opts = append(opts, compose.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	planner := compose.NewPlanner(compose.Caps{
		AVSSampler:     *avs,
		ScalingErratum: *erratum,
		MaxInputLayers: *maxLayers,
	}, opts...)

	passes, err := planAll(planner, sources, target)
	if err != nil {
		return err
	}
	if tty && !*asJSON {
		return printTable(stdout, passes)
	}
	return printJSON(stdout, passes)
}

// passReport is the printable form of one planned pass.
type passReport struct {
	Index     int           `json:"index"`
	Layers    []layerReport `json:"layers"`
	Remaining int           `json:"remaining"`
	FillARGB  *uint32       `json:"fillArgb,omitempty"`
	CalcAlpha bool          `json:"calculateAlpha,omitempty"`
}

type layerReport struct {
	Scene    int        `json:"scene"` // position in the scene's source list
	Mode     string     `json:"mode"`
	Filter   string     `json:"filter"`
	Alpha    uint8      `json:"alpha"`
	Scale    [2]float32 `json:"scale"`
	Offset   [2]float32 `json:"offset"`
	Shift    [2]float32 `json:"shift"`
	Step     [2]float32 `json:"step"`
	Clipped  [4]int     `json:"clipped"`
	ChromaUp bool       `json:"chromaUp,omitempty"`
	ChromaDn bool       `json:"chromaDown,omitempty"`
	Siting   bool       `json:"chromaSiting,omitempty"`
}

// planAll runs the planner until every source has been placed in a pass.
func planAll(p *compose.Planner, sources []*compose.Layer, target *compose.Layer) ([]passReport, error) {
	scenePos := make(map[*compose.Layer]int, len(sources))
	for i, l := range sources {
		scenePos[l] = i
	}

	var reports []passReport
	req := compose.Request{Sources: sources, Target: target}
	for {
		pass, err := p.Evaluate(req)
		if err != nil {
			return nil, fmt.Errorf("pass %d: %w", req.PassIndex, err)
		}
		rep := passReport{Index: req.PassIndex, Remaining: len(pass.Remaining), CalcAlpha: pass.CalculateAlpha}
		if pass.Fill != nil {
			argb := pass.Fill.ARGB
			rep.FillARGB = &argb
		}
		for _, l := range pass.Layers {
			g := l.Params.Geometry
			rep.Layers = append(rep.Layers, layerReport{
				Scene:    scenePos[l],
				Mode:     l.Mode.String(),
				Filter:   filterName(g.Filter),
				Alpha:    l.Params.Alpha,
				Scale:    g.Scale,
				Offset:   g.Offset,
				Shift:    g.Shift,
				Step:     g.Step,
				Clipped:  [4]int{g.ClippedDst.Min.X, g.ClippedDst.Min.Y, g.ClippedDst.Max.X, g.ClippedDst.Max.Y},
				ChromaUp: g.ChromaUpsampling,
				ChromaDn: g.ChromaDownsampling,
				Siting:   g.ChromaSiting,
			})
		}
		reports = append(reports, rep)

		if !pass.NeedsAnotherPass {
			return reports, nil
		}
		if len(pass.Layers) == 0 {
			return nil, fmt.Errorf("pass %d: layer %d never fits in a pass", req.PassIndex, scenePos[pass.Remaining[0]])
		}
		if req.PassIndex+1 >= maxPasses {
			return nil, errors.New("too many passes")
		}
		req.Sources = pass.Remaining
		req.PassIndex++
	}
}

func filterName(f gputypes.FilterMode) string {
	switch f {
	case gputypes.FilterModeNearest:
		return "nearest"
	case gputypes.FilterModeLinear:
		return "linear"
	}
	return "unknown"
}

func printJSON(w io.Writer, passes []passReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(passes)
}

func printTable(w io.Writer, passes []passReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PASS\tLAYER\tMODE\tFILTER\tALPHA\tSCALE\tOFFSET\tSHIFT\tSTEP\tCHROMA")
	for _, p := range passes {
		for _, l := range p.Layers {
			chroma := "-"
			switch {
			case l.ChromaUp:
				chroma = "up"
			case l.ChromaDn:
				chroma = "down"
			}
			if l.Siting {
				chroma += "+siting"
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%g,%g\t%g,%g\t%g,%g\t%g,%g\t%s\n",
				p.Index, l.Scene, l.Mode, l.Filter, l.Alpha,
				l.Scale[0], l.Scale[1], l.Offset[0], l.Offset[1],
				l.Shift[0], l.Shift[1], l.Step[0], l.Step[1], chroma)
		}
	}
	return tw.Flush()
}
