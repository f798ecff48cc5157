package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Rendering descendants")
	s.w = &buf
	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	if !strings.Contains(buf.String(), "Rendering descendants") {
		t.Errorf("spinner output %q should contain the message", buf.String())
	}
	if !s.Cancelled() {
		t.Error("Cancelled() should be true after Stop")
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			s := newSpinnerWithContext(ctx, "Waiting")
			s.w = &bytes.Buffer{}
			s.Start()

			select {
			case <-s.finished:
			case <-time.After(time.Second):
				t.Fatal("spinner goroutine did not exit")
			}
			if !s.Cancelled() {
				t.Error("Cancelled() should be true")
			}
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Stopping")
	s.w = &bytes.Buffer{}
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	done := make(chan struct{})
	go func() {
		newSpinner("Never started").Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
}

func TestSpinnerStopWithMessage(t *testing.T) {
	for _, stop := range []func(*Spinner){
		func(s *Spinner) { s.StopWithSuccess("Done") },
		func(s *Spinner) { s.StopWithError("Failed") },
	} {
		s := newSpinner("Working")
		s.w = &bytes.Buffer{}
		s.Start()
		stop(s)
	}
}
