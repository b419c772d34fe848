package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/common"
)

// ParseNumbers parses "1,3,5" and "1-3" style input into one-based positions.
// Ranges are inclusive and clipped to [1, limit]; a reversed range yields
// nothing, and a range lying wholly outside yields its start so the caller
// can report it. Single numbers are returned unchecked.
func ParseNumbers(input string, limit int) ([]int, error) {
	var numbers []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty entry in %q", common.ErrInvalidSelection, input)
		}

		if start, end, isRange := strings.Cut(part, "-"); isRange {
			lo, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", common.ErrInvalidSelection, part)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", common.ErrInvalidSelection, part)
			}
			numbers = append(numbers, clipRange(lo, hi, limit)...)
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", common.ErrInvalidSelection, part)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func clipRange(lo, hi, limit int) []int {
	if lo > hi {
		return nil
	}
	from, to := max(lo, 1), min(hi, limit)
	if from > to {
		return []int{lo}
	}
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
