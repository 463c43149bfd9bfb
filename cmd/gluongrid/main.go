// Command gluongrid builds a gluon distribution and dumps its momentum-space
// grid as a whitespace table (rows "Y q2 F"), the format the tabulated
// package reads back. Intended for inspecting grid quality and for
// precomputing tables once instead of rebuilding them every run.
//
// Usage:
//
//	gluongrid -gdist MV  -lambda-mv 0.24 -o grid.dat
//	gluongrid -gdist fMV -lambda-mv 0.24 -qs2 1.0
//	gluongrid -gdist GBW -q2dim 64
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/floats"

	"github.com/fanghuoqianglfl/SOLO/gluondist"
	"github.com/fanghuoqianglfl/SOLO/satscale"
	"github.com/fanghuoqianglfl/SOLO/transform"
)

func main() {
	var (
		kind     = flag.String("gdist", "MV", "distribution kind: GBW, MV or fMV")
		lambdaMV = flag.Float64("lambda-mv", 0.24, "MV infrared regulator Λ")
		qs2      = flag.Float64("qs2", 1.0, "frozen saturation scale (fMV only)")

		fitC   = flag.Float64("c", 0.56, "saturation-scale fit coefficient c")
		fitA   = flag.Float64("A", 197, "mass number A")
		fitX0  = flag.Float64("x0", 3.04e-4, "reference momentum fraction x0")
		lambda = flag.Float64("lambda", 0.288, "saturation-scale growth exponent λ")

		q2min = flag.Float64("q2min", transform.DefaultQ2Min, "grid minimum q²")
		q2max = flag.Float64("q2max", transform.DefaultQ2Max, "grid maximum q²")
		q2dim = flag.Int("q2dim", transform.DefaultQ2Dim, "grid points along q²")
		ymin  = flag.Float64("ymin", transform.DefaultYMin, "grid minimum Y")
		ymax  = flag.Float64("ymax", transform.DefaultYMax, "grid maximum Y")
		ydim  = flag.Int("ydim", transform.DefaultYDim, "grid points along Y")
		limit = flag.Int("limit", transform.DefaultSubdivisionLimit, "quadrature subdivision limit")

		out     = flag.String("o", "", "output file (default stdout)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error("creating output file", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := run(*kind, w, log, config{
		lambdaMV: *lambdaMV, qs2: *qs2,
		fitC: *fitC, fitA: *fitA, fitX0: *fitX0, lambda: *lambda,
		q2min: *q2min, q2max: *q2max, q2dim: *q2dim,
		ymin: *ymin, ymax: *ymax, ydim: *ydim, limit: *limit,
	}); err != nil {
		log.Error("grid dump failed", "gdist", *kind, "err", err)
		os.Exit(1)
	}
}

type config struct {
	lambdaMV, qs2             float64
	fitC, fitA, fitX0, lambda float64
	q2min, q2max              float64
	ymin, ymax                float64
	q2dim, ydim, limit        int
}

func run(kind string, w io.Writer, log *slog.Logger, cfg config) error {
	opts := transform.DefaultOptions()
	opts.Q2Min, opts.Q2Max, opts.Q2Dim = cfg.q2min, cfg.q2max, cfg.q2dim
	opts.YMin, opts.YMax, opts.YDim = cfg.ymin, cfg.ymax, cfg.ydim
	opts.SubdivisionLimit = cfg.limit
	opts.Logger = log

	switch kind {
	case "MV":
		sc, err := satscale.New(cfg.fitC, cfg.fitA, cfg.fitX0, cfg.lambda)
		if err != nil {
			return err
		}
		mv, err := transform.NewMV(cfg.lambdaMV, sc)
		if err != nil {
			return err
		}
		dist, err := transform.New(mv, opts)
		if err != nil {
			return err
		}
		return dist.WriteGrid(w)

	case "fMV":
		fmv, err := transform.NewFixedScaleMV(cfg.lambdaMV, cfg.qs2)
		if err != nil {
			return err
		}
		opts.YMin, opts.YMax = 0, 0 // fixed scale: one-row grid
		dist, err := transform.New(fmv, opts)
		if err != nil {
			return err
		}
		return dist.WriteGrid(w)

	case "GBW":
		// GBW needs no numeric transform; evaluate the closed form on the
		// same lattice the grid kinds would use.
		sc, err := satscale.New(cfg.fitC, cfg.fitA, cfg.fitX0, cfg.lambda)
		if err != nil {
			return err
		}
		gbw, err := gluondist.NewGBW(sc)
		if err != nil {
			return err
		}
		return writeClosedForm(w, gbw, cfg)

	default:
		return fmt.Errorf("unknown gdist kind %q (want GBW, MV or fMV)", kind)
	}
}

// writeClosedForm dumps a closed-form distribution on the requested lattice
// in the same "Y q2 F" format WriteGrid uses.
func writeClosedForm(w io.Writer, d gluondist.Distribution, cfg config) error {
	lnq2 := floats.Span(make([]float64, cfg.q2dim), math.Log(cfg.q2min), math.Log(cfg.q2max))
	ys := []float64{cfg.ymin}
	if cfg.ydim > 1 && cfg.ymin < cfg.ymax {
		ys = floats.Span(make([]float64, cfg.ydim), cfg.ymin, cfg.ymax)
	}
	if _, err := fmt.Fprintf(w, "# %s momentum lattice (%d x %d)\n# Y\tq2\tF\n",
		d.Name(), len(ys), len(lnq2)); err != nil {
		return err
	}
	for _, y := range ys {
		for _, lq := range lnq2 {
			q2 := math.Exp(lq)
			f, err := d.F(q2, y)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%.12e\t%.12e\t%.12e\n", y, q2, f); err != nil {
				return err
			}
		}
	}
	return nil
}
