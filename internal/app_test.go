package internal

import (
	"testing"

	"go.uber.org/fx"
)

func TestOptions_Validate(t *testing.T) {
	if err := fx.ValidateApp(Options([]string{"."})); err != nil {
		t.Fatalf("Invalid dependency graph: %v", err)
	}
}
