package service

import (
	"reflect"
	"testing"
)

func TestReconcileImages(t *testing.T) {
	tests := []struct {
		name         string
		previous     []string
		keep         []string
		keepProvided bool
		uploaded     []string
		wantFinal    []string
		wantToDelete []string
	}{
		{
			name:         "keep absent retains everything",
			previous:     []string{"a", "b", "c"},
			keepProvided: false,
			uploaded:     []string{"d"},
			wantFinal:    []string{"a", "b", "c", "d"},
			wantToDelete: []string{},
		},
		{
			name:         "explicitly empty keep discards all previous",
			previous:     []string{"a", "b"},
			keep:         []string{},
			keepProvided: true,
			uploaded:     []string{"d"},
			wantFinal:    []string{"d"},
			wantToDelete: []string{"a", "b"},
		},
		{
			name:         "single empty string keep means keep none",
			previous:     []string{"a", "b"},
			keep:         []string{""},
			keepProvided: true,
			uploaded:     []string{},
			wantFinal:    []string{},
			wantToDelete: []string{"a", "b"},
		},
		{
			name:         "partial keep plus upload",
			previous:     []string{"a", "b", "c"},
			keep:         []string{"a", "c"},
			keepProvided: true,
			uploaded:     []string{"d"},
			wantFinal:    []string{"a", "c", "d"},
			wantToDelete: []string{"b"},
		},
		{
			name:         "keep order preserved, not previous order",
			previous:     []string{"a", "b", "c"},
			keep:         []string{"c", "a"},
			keepProvided: true,
			wantFinal:    []string{"c", "a"},
			wantToDelete: []string{"b"},
		},
		{
			name:         "duplicate keep entries are collapsed",
			previous:     []string{"a", "b"},
			keep:         []string{"a", "a", "b"},
			keepProvided: true,
			wantFinal:    []string{"a", "b"},
			wantToDelete: []string{},
		},
		{
			name:         "no previous, uploads only",
			previous:     []string{},
			keep:         []string{""},
			keepProvided: true,
			uploaded:     []string{"x", "y"},
			wantFinal:    []string{"x", "y"},
			wantToDelete: []string{},
		},
		{
			name:         "everything empty",
			previous:     nil,
			keepProvided: false,
			wantFinal:    []string{},
			wantToDelete: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, toDelete := reconcileImages(tt.previous, tt.keep, tt.keepProvided, tt.uploaded)
			if !reflect.DeepEqual(final, tt.wantFinal) {
				t.Fatalf("final: got %v, want %v", final, tt.wantFinal)
			}
			if !reflect.DeepEqual(toDelete, tt.wantToDelete) {
				t.Fatalf("toDelete: got %v, want %v", toDelete, tt.wantToDelete)
			}
		})
	}
}

// Applying the same keep list twice with no new uploads must be a no-op the
// second time.
func TestReconcileImages_Idempotent(t *testing.T) {
	previous := []string{"a", "b", "c"}
	keep := []string{"a", "c"}

	first, deleted := reconcileImages(previous, keep, true, nil)
	if want := []string{"a", "c"}; !reflect.DeepEqual(first, want) {
		t.Fatalf("first pass final: got %v, want %v", first, want)
	}
	if want := []string{"b"}; !reflect.DeepEqual(deleted, want) {
		t.Fatalf("first pass toDelete: got %v, want %v", deleted, want)
	}

	second, deleted2 := reconcileImages(first, keep, true, nil)
	if !reflect.DeepEqual(second, first) {
		t.Fatalf("second pass changed final: got %v, want %v", second, first)
	}
	if len(deleted2) != 0 {
		t.Fatalf("second pass toDelete: got %v, want empty", deleted2)
	}
}
