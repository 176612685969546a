package buffer

import "beagle/internal/app/row"

// chunks splits rows into consecutive sub-slices of at most size rows, preserving order
func chunks(rows []row.Row, size int) [][]row.Row {
	if len(rows) == 0 {
		return nil
	}

	if size < 1 {
		size = 1
	}

	out := make([][]row.Row, 0, (len(rows)+size-1)/size)

	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		out = append(out, rows[start:end:end])
	}

	return out
}
