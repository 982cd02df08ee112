package btreeset

import "fmt"

// InvalidDegreeError is raised by New when the requested minimum degree
// violates the data model's precondition (t >= 1). It is a
// programmer error, not a recoverable runtime condition.
type InvalidDegreeError struct {
	Degree int
}

func (e *InvalidDegreeError) Error() string {
	return fmt.Sprintf("btreeset: minimum degree must be >= 1, got %d", e.Degree)
}
