package board

// Area selects which of a cell's scopes a query covers.
type Area uint8

const (
	Row Area = iota
	Column
	Region
	All
)

// RegionStarts lists the top-left cell index of each 3x3 region, in the
// row-major region order the solver iterates them in.
var RegionStarts = [9]int{0, 3, 6, 27, 30, 33, 54, 57, 60}

// Index converts a (row, col) pair to a cell index.
func Index(row, col int) int { return 9*row + col }

// RowStart returns the index of the first cell in i's row.
func RowStart(i int) int { return (i / 9) * 9 }

// ColStart returns the index of the first cell in i's column.
func ColStart(i int) int { return i % 9 }

// RegionStart returns the index of the top-left cell in i's 3x3 region.
func RegionStart(i int) int { return (i/27)*27 + ((i%9)/3)*3 }
