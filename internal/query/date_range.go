package query

import (
	"strconv"

	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
)

// DefaultRangeSeconds is the window used when range_end is omitted.
const DefaultRangeSeconds = 86400

// DateRange is an inclusive postedTime window, in seconds.
type DateRange struct {
	Start int64
	End   int64
}

func (r DateRange) Contains(t int64) bool {
	return t >= r.Start && t <= r.End
}

// ParseDateRange validates raw range_start and range_end values.
func ParseDateRange(start, end string) (DateRange, error) {
	if start == "" {
		return DateRange{}, apperr.NewValidation("Argument range_start is required.")
	}

	s, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return DateRange{}, apperr.NewValidationWrap("Argument range_start must be an integer.", err)
	}

	r := DateRange{Start: s, End: s + DefaultRangeSeconds}
	if end != "" {
		if r.End, err = strconv.ParseInt(end, 10, 64); err != nil {
			return DateRange{}, apperr.NewValidationWrap("Argument range_end must be an integer.", err)
		}
	}

	if r.End < r.Start {
		return DateRange{}, apperr.NewValidation("Argument range_end must be after range_start.")
	}
	return r, nil
}
