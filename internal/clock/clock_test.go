package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	if got := Fixed(at).Now(); !got.Equal(at) {
		t.Errorf("Now = %v, want %v", got, at)
	}
}

func TestTickProducesTickMsg(t *testing.T) {
	cmd := Tick(time.Millisecond)
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Fatal("expected TickMsg")
	}
}
