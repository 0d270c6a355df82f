package catalog

import (
	"testing"

	mongostore "github.com/libreshelf/libreshelf/pkg/store/mongodb"
)

func TestNewMongoExecutor_Validation(t *testing.T) {
	if _, err := NewMongoExecutor(nil); err == nil {
		t.Fatal("expected error for nil adapter")
	}

	exec, err := NewMongoExecutor(&mongostore.Adapter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exec == nil {
		t.Fatal("expected non-nil executor")
	}
}
