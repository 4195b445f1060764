package lsystem

import (
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"pgregory.net/rand"
)

// ProductionRate describes how fast a system grows. Lengths holds the mean
// sequence length per generation; Rates is a histogram of the ratio between
// consecutive generation lengths, bucketed by thousandths.
type ProductionRate struct {
	Name    string
	Lengths []float64
	Rates   []float32
	Samples int
}

func newProductionRate(name string, depth, samples int) ProductionRate {
	return ProductionRate{
		Name:    name,
		Lengths: make([]float64, depth+1),
		Rates:   make([]float32, 1024),
		Samples: samples,
	}
}

func (pr *ProductionRate) record(generation, length, prevLen int) {
	pr.Lengths[generation] += float64(length) / float64(pr.Samples)
	if generation == 0 || prevLen == 0 {
		return
	}
	diff := int(math.Round(float64(length) / float64(prevLen) * 1000))
	if diff >= len(pr.Rates) {
		replacement := make([]float32, diff*2)
		copy(replacement, pr.Rates)
		pr.Rates = replacement
	}
	pr.Rates[diff]++
}

// AnalyseProductionRate records the length of every generation up to depth.
func (l *LSystem[S]) AnalyseProductionRate(name string, depth int) (ProductionRate, error) {
	if depth < 0 {
		return ProductionRate{}, errors.Wrapf(ErrNegativeDepth, "analysing %s", name)
	}
	rate := newProductionRate(name, depth, 1)
	prevLen := 0
	err := l.Walk(depth, func(gen int, seq []S) {
		rate.record(gen, len(seq), prevLen)
		prevLen = len(seq)
	})
	if err != nil {
		return ProductionRate{}, errors.Wrapf(err, "analysing %s", name)
	}
	return rate, nil
}

// AnalyseProductionRate samples runs seeded from seed, seed+1, ... and
// averages their generation lengths.
func (l *Stochastic[S]) AnalyseProductionRate(name string, depth, samples int, seed uint64) (ProductionRate, error) {
	if depth < 0 {
		return ProductionRate{}, errors.Wrapf(ErrNegativeDepth, "analysing %s", name)
	}
	samples = max(samples, 1)
	rate := newProductionRate(name, depth, samples)
	for i := 0; i < samples; i++ {
		prevLen := 0
		err := l.WalkSeed(depth, seed+uint64(i), func(gen int, seq []S) {
			rate.record(gen, len(seq), prevLen)
			prevLen = len(seq)
		})
		if err != nil {
			return ProductionRate{}, errors.Wrapf(err, "analysing %s sample %d", name, i)
		}
	}
	return rate, nil
}

// SampleSeed returns a fresh seed for callers that do not care which one is
// used.
func SampleSeed() uint64 {
	return rand.Uint64()
}

// AverageGrowth is the mean ratio between consecutive generation lengths.
func (pr *ProductionRate) AverageGrowth() float64 {
	total := 0.0
	weighted := 0.0
	for idx, rate := range pr.Rates {
		total += float64(rate)
		weighted += float64(idx) * float64(rate)
	}
	if total == 0 {
		return 0
	}
	return weighted / total / 1000
}

func (pr *ProductionRate) lastNonZero() int {
	last := 0
	for idx, rate := range pr.Rates {
		if rate > 0 {
			last = idx
		}
	}
	return last
}

func (pr *ProductionRate) charts() (*charts.Bar, *charts.Line) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Production Rate Analysis",
		Subtitle: pr.Name + ": " + strconv.Itoa(len(pr.Lengths)-1) + " generations, " + strconv.Itoa(pr.Samples) + " samples",
	}))

	lastNonZero := pr.lastNonZero()
	barItems := make([]opts.BarData, lastNonZero+1)
	labels := make([]string, lastNonZero+1)
	for i := 0; i <= lastNonZero; i++ {
		barItems[i] = opts.BarData{Value: pr.Rates[i]}
		labels[i] = strconv.FormatFloat(float64(i)/1000, 'f', 3, 64)
	}
	title := "Production Rates (Avg growth " + strconv.FormatFloat(pr.AverageGrowth(), 'f', 4, 64) + ")"
	bar.SetXAxis(labels).AddSeries(title, barItems)

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Sequence length per generation",
	}))
	generations := make([]string, len(pr.Lengths))
	lineItems := make([]opts.LineData, len(pr.Lengths))
	for i, length := range pr.Lengths {
		generations[i] = strconv.Itoa(i)
		lineItems[i] = opts.LineData{Value: length}
	}
	line.SetXAxis(generations).AddSeries(pr.Name, lineItems)

	return bar, line
}

// RenderChart writes an HTML page with the growth histogram and the length
// curve.
func (pr *ProductionRate) RenderChart(w io.Writer) error {
	bar, line := pr.charts()
	page := components.NewPage()
	page.AddCharts(bar, line)
	return page.Render(w)
}

// ChartHandler serves the charts of all rates on one page.
func ChartHandler(rates ...ProductionRate) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		page := components.NewPage()
		for i := range rates {
			bar, line := rates[i].charts()
			page.AddCharts(bar, line)
		}
		if err := page.Render(w); err != nil {
			Logger().Error("lsystem: rendering chart", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Serve registers one route per rate plus an index and blocks serving them.
func Serve(addr string, rates ...ProductionRate) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ChartHandler(rates...))
	for _, rate := range rates {
		if rate.Name == "" {
			continue
		}
		Logger().Info("lsystem: registering chart", "route", "/"+rate.Name)
		mux.HandleFunc("/"+rate.Name, ChartHandler(rate))
	}
	return http.ListenAndServe(addr, mux)
}
