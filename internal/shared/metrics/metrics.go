package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	quizSubmittedTotal   atomic.Uint64
	resultViewedTotal    atomic.Uint64
	cafeSearchTotal      atomic.Uint64
	cafeCacheHitTotal    atomic.Uint64
	cafeCacheMissTotal   atomic.Uint64
	analyticsEventsTotal atomic.Uint64

	cafeSearchDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 20000})
)

// IncQuizSubmitted increments the quiz submission counter.
func IncQuizSubmitted() {
	quizSubmittedTotal.Add(1)
}

// IncResultViewed increments the shared-result view counter.
func IncResultViewed() {
	resultViewedTotal.Add(1)
}

// IncCafeSearch increments the cafe search counter.
func IncCafeSearch() {
	cafeSearchTotal.Add(1)
}

// IncCafeCacheHit increments the cafe cache hit counter.
func IncCafeCacheHit() {
	cafeCacheHitTotal.Add(1)
}

// IncCafeCacheMiss increments the cafe cache miss counter.
func IncCafeCacheMiss() {
	cafeCacheMissTotal.Add(1)
}

// IncAnalyticsEvent increments the stored analytics event counter.
func IncAnalyticsEvent() {
	analyticsEventsTotal.Add(1)
}

// ObserveCafeSearchDurationMs records a provider search duration in milliseconds.
func ObserveCafeSearchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	cafeSearchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "quiz_submitted_total", "Total quiz submissions", quizSubmittedTotal.Load())
	writeCounter(&buf, "result_viewed_total", "Total shared result views", resultViewedTotal.Load())
	writeCounter(&buf, "cafe_search_total", "Total cafe searches", cafeSearchTotal.Load())
	writeCounter(&buf, "cafe_cache_hit_total", "Total cafe cache hits", cafeCacheHitTotal.Load())
	writeCounter(&buf, "cafe_cache_miss_total", "Total cafe cache misses", cafeCacheMissTotal.Load())
	writeCounter(&buf, "analytics_events_total", "Total analytics events stored", analyticsEventsTotal.Load())
	writeHistogram(&buf, "cafe_search_duration_ms", "Cafe provider search duration in milliseconds", cafeSearchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
