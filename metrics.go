package main

import (
	"fmt"
	"io"
	"time"
)

var GMetrics *Metrics = nil

type Metric struct {
	name string
	/// Number of times we've hit the code path.
	count int
	/// Total time we've spent on the code path.
	sum time.Duration
}

type Metrics struct {
	metrics_ []*Metric
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (this *Metrics) NewMetric(name string) *Metric {
	for _, m := range this.metrics_ {
		if m.name == name {
			return m
		}
	}
	metric := Metric{}
	metric.name = name
	this.metrics_ = append(this.metrics_, &metric)
	return &metric
}

// / The primary interface to metrics. Use defer METRIC_RECORD("foobar")()
// / at the top of a function to get timing stats recorded for each call.
func METRIC_RECORD(name string) func() {
	if GMetrics == nil {
		return func() {}
	}
	metric := GMetrics.NewMetric(name)
	start := time.Now()
	return func() {
		metric.count++
		metric.sum += time.Since(start)
	}
}

// / Print a summary report.
func (this *Metrics) Report(w io.Writer) {
	width := 0
	for _, i := range this.metrics_ {
		width = max(len(i.name), width)
	}

	fmt.Fprintf(w, "%-*s\t%-6s\t%-9s\t%s\n", width,
		"metric", "count", "avg (us)", "total (ms)")
	for _, metric := range this.metrics_ {
		micros := metric.sum.Microseconds()
		total := float64(micros) / float64(1000)
		avg := 0.0
		if metric.count > 0 {
			avg = float64(micros) / float64(metric.count)
		}
		fmt.Fprintf(w, "%-*s\t%-6d\t%-8.1f\t%.1f\n", width, metric.name, metric.count, avg, total)
	}
}
