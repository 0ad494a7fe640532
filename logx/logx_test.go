package logx

import "testing"

// These calls only need to not panic; log output itself isn't captured.
func TestDisabledCallsAreNoOps(t *testing.T) {
	Enabled = false
	Section("P2")
	Params("x=100", "y=10")
	Result("B", "42", 1.5)
	Resume(50, "100")
}

func TestEnabledCallsRun(t *testing.T) {
	Enabled = true
	defer func() { Enabled = false }()
	Section("P2")
	Params("x=100", "y=10")
	Result("B", "42", 1.5)
	Resume(50, "100")
}
