// SPDX-License-Identifier: EPL-2.0

// Package metrics defines prometheus counters for the wavescope pipeline.
// They register on the default registry; hosts that expose /metrics get
// them for free, everyone else pays one atomic add per event.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FramesProcessed counts raw frames successfully converted into
	// visualization buffers.
	FramesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "pipeline",
		Name:      "frames_processed_total",
		Help:      "Raw audio frames converted into visualization buffers",
	})

	// FramesSkipped counts frames discarded by the warm-up skip window.
	FramesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "pipeline",
		Name:      "frames_skipped_total",
		Help:      "Frames discarded during the initial skip window",
	})

	// ConversionErrors counts frames rejected by the sample converter.
	ConversionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "pipeline",
		Name:      "conversion_errors_total",
		Help:      "Frames rejected due to unsupported or misaligned input",
	})

	// RenderTicks counts renderer tick invocations.
	RenderTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "render",
		Name:      "ticks_total",
		Help:      "Renderer tick invocations",
	})

	// RenderFailures counts draw failures recovered inside a tick.
	RenderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "render",
		Name:      "failures_total",
		Help:      "Draw failures recovered within a render tick",
	})

	// HistoryResets counts full history clears on source deactivation.
	HistoryResets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wavescope",
		Subsystem: "render",
		Name:      "history_resets_total",
		Help:      "Full history clears triggered by an inactive source",
	})
)
