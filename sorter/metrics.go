package sorter

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm names, used as the "algorithm" label and in log records.
const (
	AlgorithmInsertion    = "insertion"
	AlgorithmLSDRadix     = "lsd_radix"
	AlgorithmMerge        = "merge"
	AlgorithmMergeInPlace = "merge_in_place"
	AlgorithmHeap         = "heap"
	AlgorithmTopK         = "top_k"
)

var algorithms = []string{ //nolint:gochecknoglobals
	AlgorithmInsertion,
	AlgorithmLSDRadix,
	AlgorithmMerge,
	AlgorithmMergeInPlace,
	AlgorithmHeap,
	AlgorithmTopK,
}

var (
	// sortCallsTotal counts calls made through a Sorter or RadixSorter.
	//
	// Labels:
	//   - algorithm: one of the Algorithm* constants.
	//   - has_error: "true" if the call was rejected as invalid input.
	sortCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_calls_total",
		Help: "The total number of sort calls",
	}, []string{"algorithm", "has_error"})

	// sortElementsTotal counts the input elements handed to each algorithm,
	// so rate(sort_elements_total) / rate(sort_calls_total) is the mean input size.
	sortElementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_elements_total",
		Help: "The total number of elements passed to sort calls",
	}, []string{"algorithm"})

	// sortTime records how long successful calls take, in milliseconds.
	sortTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "sort_time_millis",
		Help: "The time it takes to sort, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000,
		},
	}, []string{"algorithm"})
)

// init pre-initializes the counters so every label combination exists from
// startup and rate() queries see a zero instead of a gap.
func init() {
	for _, algorithm := range algorithms {
		sortCallsTotal.WithLabelValues(algorithm, "true").Add(0)
		sortCallsTotal.WithLabelValues(algorithm, "false").Add(0)
		sortElementsTotal.WithLabelValues(algorithm).Add(0)
	}
}

func observe(algorithm string, size int, elapsed time.Duration, err error) {
	hasError := err != nil

	sortCallsTotal.WithLabelValues(algorithm, strconv.FormatBool(hasError)).Inc()
	sortElementsTotal.WithLabelValues(algorithm).Add(float64(size))

	if !hasError {
		sortTime.WithLabelValues(algorithm).Observe(float64(elapsed) / float64(time.Millisecond))
	}
}
