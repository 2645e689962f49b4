package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadRadii reads a column of halo-centric radii out of a
// whitespace-delimited text table. Lines starting with '#' are comments.
func ReadRadii(file string, col int) ([]float64, error) {
	cols, err := table.ReadTable(file, []int{col}, nil)
	if err != nil {
		return nil, err
	}
	rs := cols[0]
	if len(rs) == 0 {
		return nil, fmt.Errorf("Table '%s' contains no rows.", file)
	}
	for i, r := range rs {
		if r < 0 {
			return nil, fmt.Errorf(
				"Row %d of table '%s' contains the negative radius %g.",
				i, file, r,
			)
		}
	}
	return rs, nil
}
