package parse

import "testing"

func TestProgramReturnsDescriptiveError(t *testing.T) {
	prog, err := Program([]byte("x = 1"), "main.myst")
	if prog != nil {
		t.Fatalf("expected nil Program from the unimplemented stub, got %v", prog)
	}
	if err == nil {
		t.Fatal("expected an error since no parser is wired up")
	}
	if got := err.Error(); got == "" {
		t.Fatal("expected a non-empty error message naming the missing parser")
	}
}
