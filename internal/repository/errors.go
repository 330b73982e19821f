package repository

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

func toInt32(field string, v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%s out of range: %d", field, v)
	}
	return int32(v), nil
}
