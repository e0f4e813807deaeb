// Command triptych-demo exercises a full prove/verify cycle over a random
// witness, printing timing and proof-size information. It exists to give a
// human a quick way to sanity-check a build, not as a production tool.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/takakv/triptych/bench"
	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
	"github.com/takakv/triptych/proof"
	"github.com/takakv/triptych/statement"
	"github.com/takakv/triptych/witness"
)

func main() {
	n := flag.Uint("n", 2, "input-set digit base")
	m := flag.Uint("m", 8, "input-set digit count (N = n^m)")
	message := flag.String("message", "triptych-demo", "message bound into the proof's transcript")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	report := flag.String("report", "", "if set, sweep m and write a prove-latency PNG chart to this path instead of running a single demo")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *report != "" {
		if err := runReport(log, uint32(*n), *report); err != nil {
			log.Error().Err(err).Msg("report run failed")
			os.Exit(1)
		}
		return
	}

	if err := run(log, uint32(*n), uint32(*m), []byte(*message)); err != nil {
		log.Error().Err(err).Msg("demo run failed")
		os.Exit(1)
	}
}

// runReport sweeps a small range of m values at a fixed base n, timing a
// handful of Prove calls at each, and renders the result as a PNG chart.
func runReport(log zerolog.Logger, n uint32, path string) error {
	mValues := []uint32{2, 3, 4, 5, 6}
	const samplesPerPoint = 3

	var samples []bench.TimingSample
	for _, m := range mValues {
		p, err := params.New(n, m)
		if err != nil {
			return fmt.Errorf("params.New: %w", err)
		}

		w := witness.Random(p, rand.Reader)
		M := make([]curvegroup.Point, p.N())
		for i := range M {
			if uint32(i) == w.Index() {
				M[i] = w.VerificationKey()
			} else {
				M[i] = curvegroup.RandomPoint(rand.Reader)
			}
		}
		st, err := statement.New(p, statement.NewInputSet(M), w.LinkingTag())
		if err != nil {
			return fmt.Errorf("statement.New: %w", err)
		}

		var total time.Duration
		for i := 0; i < samplesPerPoint; i++ {
			start := time.Now()
			if _, err := proof.Prove(w, st, nil, rand.Reader); err != nil {
				return fmt.Errorf("proof.Prove: %w", err)
			}
			total += time.Since(start)
		}
		avg := total / samplesPerPoint

		log.Info().Uint32("n", n).Uint32("m", m).Dur("avgProve", avg).Msg("sampled")
		samples = append(samples, bench.TimingSample{M: float64(m), NanosPerProve: float64(avg.Nanoseconds())})
	}

	if err := bench.RenderProveTimingChart(path, samples); err != nil {
		return fmt.Errorf("bench.RenderProveTimingChart: %w", err)
	}
	log.Info().Str("path", path).Msg("chart written")
	return nil
}

func run(log zerolog.Logger, n, m uint32, message []byte) error {
	log.Debug().Uint32("n", n).Uint32("m", m).Msg("deriving parameters")
	setupStart := time.Now()
	p, err := params.New(n, m)
	if err != nil {
		return fmt.Errorf("params.New: %w", err)
	}
	log.Info().
		Uint32("n", n).
		Uint32("m", m).
		Uint32("N", p.N()).
		Dur("setup", time.Since(setupStart)).
		Msg("parameters derived")

	w := witness.Random(p, rand.Reader)
	log.Debug().Uint32("index", w.Index()).Msg("sampled random witness")

	M := make([]curvegroup.Point, p.N())
	for i := range M {
		if uint32(i) == w.Index() {
			M[i] = w.VerificationKey()
		} else {
			M[i] = curvegroup.RandomPoint(rand.Reader)
		}
	}
	inputSet := statement.NewInputSet(M)

	st, err := statement.New(p, inputSet, w.LinkingTag())
	if err != nil {
		return fmt.Errorf("statement.New: %w", err)
	}

	proveStart := time.Now()
	pf, err := proof.Prove(w, st, message, rand.Reader)
	if err != nil {
		return fmt.Errorf("proof.Prove: %w", err)
	}
	proveDuration := time.Since(proveStart)

	encoded := pf.Encode()
	log.Info().
		Dur("prove", proveDuration).
		Int("proofBytes", len(encoded)).
		Msg("proof generated")

	verifyStart := time.Now()
	ok := proof.Verify(pf, st, message, rand.Reader)
	verifyDuration := time.Since(verifyStart)

	log.Info().
		Bool("valid", ok).
		Dur("verify", verifyDuration).
		Msg("proof verified")

	if !ok {
		return fmt.Errorf("demo-generated proof failed to verify")
	}
	return nil
}
