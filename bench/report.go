package bench

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

func label(n, m, N uint32) string {
	return fmt.Sprintf("n=%d/m=%d/N=%d", n, m, N)
}

func batchLabel(n, m, N uint32, batch int) string {
	return fmt.Sprintf("n=%d/m=%d/N=%d/batch=%d", n, m, N, batch)
}

// TimingSample is one (m, nanoseconds-per-op) measurement, typically parsed
// from `go test -bench` output by the caller of RenderProveTimingChart.
type TimingSample struct {
	M             float64
	NanosPerProve float64
}

// RenderProveTimingChart writes a PNG line chart of prove latency against m
// to path, for ad hoc visualization of how proof generation scales with the
// witness-index digit count. It is not run as part of normal testing; it is
// a small developer utility invoked from cmd/triptych-demo's "-report" mode
// or by hand against recorded benchmark samples.
func RenderProveTimingChart(path string, samples []TimingSample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.M
		ys[i] = s.NanosPerProve
	}

	graph := chart.Chart{
		Title: "Triptych prove latency vs. m",
		XAxis: chart.XAxis{Name: "m"},
		YAxis: chart.YAxis{Name: "ns/op"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "prove",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("bench: render chart: %w", err)
	}
	return nil
}
