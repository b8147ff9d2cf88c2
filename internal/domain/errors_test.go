package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Is(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
		kind ErrorKind
	}{
		{"latitude", NewInvalidLatitude("to_ecef", 91), ErrInvalidLatitude, KindInvalidLatitude},
		{"division", NewDegenerateDivision("normalize", 0), ErrDegenerateDivision, KindDegenerateDivision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.want) {
				t.Fatalf("errors.Is(%v, %v) = false", wrapped, tt.want)
			}
			if got := KindOf(wrapped); got != tt.kind {
				t.Errorf("KindOf = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	err := NewInvalidLatitude("to_ecef", 91.5)
	want := "to_ecef: invalid latitude: got 91.5"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestKindOf_Foreign(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != "" {
		t.Errorf("expected empty kind, got %q", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("expected empty kind for nil, got %q", got)
	}
}
