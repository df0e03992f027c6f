package scheme

import "fmt"

// ProcedureStep is one milestone of the displayed application workflow.
// Nothing enforces the order; steps are display copy.
type ProcedureStep struct {
	Position    int // 1-based, strictly increasing
	Title       string
	Description string
	Actor       string
}

// Label returns the "Step N" marker shown above the step title.
func (s ProcedureStep) Label() string {
	return fmt.Sprintf("Step %d", s.Position)
}
