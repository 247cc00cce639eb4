package pdns

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorTemporary(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{0, true},
		{500, true},
		{502, true},
		{503, true},
		{429, true},
		{400, false},
		{404, false},
		{422, false},
	}
	for _, tt := range tests {
		e := &Error{Op: "PATCH /zones/x", StatusCode: tt.status}
		if got := e.Temporary(); got != tt.want {
			t.Errorf("status %d: Temporary() = %t, want %t", tt.status, got, tt.want)
		}
	}
}

func TestIsTransient(t *testing.T) {
	if IsTransient(nil) {
		t.Error("nil is not transient")
	}
	if !IsTransient(&Error{StatusCode: 503}) {
		t.Error("503 is transient")
	}
	if IsTransient(&Error{StatusCode: 404}) {
		t.Error("404 is not transient")
	}
	if !IsTransient(fmt.Errorf("wrapped: %w", &Error{StatusCode: 0})) {
		t.Error("classification must see through wrapping")
	}
	if !IsTransient(context.DeadlineExceeded) {
		t.Error("deadline exceeded is transient")
	}
	if IsTransient(errors.New("something else")) {
		t.Error("unknown errors are not transient")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&Error{StatusCode: 404}) {
		t.Error("404 is not-found")
	}
	if IsNotFound(&Error{StatusCode: 500}) || IsNotFound(errors.New("nope")) {
		t.Error("only a 404 API error is not-found")
	}
}
