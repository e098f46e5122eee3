package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)

	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"))
	AssertErrorIs(t, wrapped, sentinel)
	AssertErrorIs(t, sentinel, sentinel)
}

func TestAssertStrings(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertNotContains(t, "hello world", "foo")
}

func TestAssertBools(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestAssertNils(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, "hello")
}

func TestIsNil(t *testing.T) {
	var (
		p *int
		m map[string]int
		s []int
		f func()
	)
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", p, true},
		{"nil map", m, true},
		{"nil slice", s, true},
		{"nil func", f, true},
		{"non-nil pointer", new(int), false},
		{"string", "x", false},
		{"zero int", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
