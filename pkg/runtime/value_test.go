package runtime_test

import (
	"testing"

	"lox/pkg/runtime"
)

func TestIsTruthyRules(t *testing.T) {
	tests := []struct {
		name string
		val  runtime.Value
		want bool
	}{
		{"nil is false", runtime.NilValue{}, false},
		{"false is false", runtime.BoolValue{Val: false}, false},
		{"true is true", runtime.BoolValue{Val: true}, true},
		{"zero is truthy", runtime.NumberValue{Val: 0}, true},
		{"empty string is truthy", runtime.StringValue{Val: ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runtime.IsTruthy(tt.val); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualAcrossVariantsIsFalse(t *testing.T) {
	if runtime.Equal(runtime.NumberValue{Val: 1}, runtime.StringValue{Val: "1"}) {
		t.Fatalf("expected a number and a string with the same text to be unequal")
	}
	if !runtime.Equal(runtime.NilValue{}, runtime.NilValue{}) {
		t.Fatalf("expected nil to equal nil")
	}
	if !runtime.Equal(runtime.NumberValue{Val: 2}, runtime.NumberValue{Val: 2}) {
		t.Fatalf("expected equal numbers to compare equal")
	}
}

func TestStringifyNumberStripsTrailingDotZero(t *testing.T) {
	tests := []struct {
		n    float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{-3, "-3"},
		{0, "0"},
	}
	for _, tt := range tests {
		got := runtime.Stringify(runtime.NumberValue{Val: tt.n})
		if got != tt.want {
			t.Fatalf("Stringify(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestStringifyOtherVariants(t *testing.T) {
	if got := runtime.Stringify(runtime.NilValue{}); got != "nil" {
		t.Fatalf("got %q, want nil", got)
	}
	if got := runtime.Stringify(runtime.BoolValue{Val: true}); got != "true" {
		t.Fatalf("got %q, want true", got)
	}
	if got := runtime.Stringify(runtime.StringValue{Val: "hi"}); got != "hi" {
		t.Fatalf("got %q, want hi", got)
	}
}
