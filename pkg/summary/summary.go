package summary

import (
	"fmt"

	"github.com/haru-256/hashlab/pkg/sweep"
)

// MetricKey names the metrics.Snapshot field Rank orders by.
type MetricKey int

const (
	LoadFactor MetricKey = iota
	TotalCollisions
	Comparisons
)

// ErrUnknownMetric is returned by Rank for a MetricKey outside the
// three it understands.
var ErrUnknownMetric = fmt.Errorf("summary: unknown metric key")

func value(r sweep.SchemeResult, key MetricKey) (float64, error) {
	switch key {
	case LoadFactor:
		return r.Metrics.LoadFactor, nil
	case TotalCollisions:
		return float64(r.Metrics.TotalCollisions), nil
	case Comparisons:
		return float64(r.Metrics.Comparisons), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMetric, key)
	}
}

// Rank returns a new slice containing results sorted ascending by the
// chosen metric, leaving the input slice untouched. It is grounded in
// the teacher's pkg/sort.QuickSort, generalized from cmp.Ordered to a
// caller-supplied less function so it can order SchemeResult values
// instead of plain scalars.
func Rank(results []sweep.SchemeResult, key MetricKey) ([]sweep.SchemeResult, error) {
	out := make([]sweep.SchemeResult, len(results))
	copy(out, results)

	less := func(a, b sweep.SchemeResult) (bool, error) {
		av, err := value(a, key)
		if err != nil {
			return false, err
		}
		bv, err := value(b, key)
		if err != nil {
			return false, err
		}
		return av < bv, nil
	}

	if err := quickSortBy(out, 0, len(out)-1, less); err != nil {
		return nil, err
	}
	return out, nil
}

// quickSortBy is the teacher's quickSortInPlace/partition pair,
// generalized from `T cmp.Ordered` and `arr[j] <= pivot` to a
// caller-supplied less predicate, so it can order by a computed key
// instead of the element's own natural order. The Lomuto
// partition (last element as pivot) is unchanged.
func quickSortBy[T any](arr []T, low, high int, less func(a, b T) (bool, error)) error {
	if low >= high {
		return nil
	}
	pivotIndex, err := partitionBy(arr, low, high, less)
	if err != nil {
		return err
	}
	if err := quickSortBy(arr, low, pivotIndex-1, less); err != nil {
		return err
	}
	return quickSortBy(arr, pivotIndex+1, high, less)
}

// partitionBy mirrors quick_sort.go's partition: elements for which
// `arr[j] <= pivot` move left of the final pivot position. Expressed
// via less, "arr[j] <= pivot" becomes "not (pivot < arr[j])".
func partitionBy[T any](arr []T, low, high int, less func(a, b T) (bool, error)) (int, error) {
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		pivotLessThanCurrent, err := less(pivot, arr[j])
		if err != nil {
			return 0, err
		}
		if !pivotLessThanCurrent {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	return i + 1, nil
}
