package matrix

// Matrix is the read/write surface shared by every matrix implementation.
// Each method enforces bounds checking and returns ErrOutOfRange on misuse.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j). Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. Complexity: O(rows·cols).
	Clone() Matrix
}
