package handler

import (
	"strings"
	"testing"
	"time"
)

func TestMessageDuration_Floor(t *testing.T) {
	if got := MessageDuration("Error occurred", 0); got != 2*time.Second {
		t.Fatalf("duration=%v want 2s", got)
	}
	if got := MessageDuration("", 0); got != 2*time.Second {
		t.Fatalf("empty message duration=%v want 2s", got)
	}
}

func TestMessageDuration_Ceiling(t *testing.T) {
	long := strings.Repeat("word ", 30)
	if got := MessageDuration(long, 0); got != 10*time.Second {
		t.Fatalf("duration=%v want 10s ceiling", got)
	}
	longer := strings.Repeat("word ", 500)
	if got := MessageDuration(longer, 0); got != 10*time.Second {
		t.Fatalf("duration=%v want 10s ceiling", got)
	}
}

func TestMessageDuration_Proportional(t *testing.T) {
	// 9 words at 3 words/sec reads in 3s.
	msg := strings.TrimSpace(strings.Repeat("word ", 9))
	if got := MessageDuration(msg, 0); got != 3*time.Second {
		t.Fatalf("duration=%v want 3s", got)
	}
	// Same message at 1 word/sec.
	if got := MessageDuration(msg, 1); got != 9*time.Second {
		t.Fatalf("duration=%v want 9s", got)
	}
}
