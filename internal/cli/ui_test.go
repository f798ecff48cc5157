package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/familytree/pkg/pipeline"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name    string
		stats   pipeline.Stats
		cached  bool
		want    []string
		notWant []string
	}{
		{
			name:    "fresh render",
			stats:   pipeline.Stats{People: 3, Placed: 3, Generations: 2},
			want:    []string{"3 people", "2 generations", "fresh"},
			notWant: []string{"placed", "cached"},
		},
		{
			name:  "unreachable people",
			stats: pipeline.Stats{People: 4, Placed: 2, Generations: 1},
			want:  []string{"4 people", "2 placed", "1 generation", "fresh"},
		},
		{
			name:    "artifact cache hit",
			stats:   pipeline.Stats{People: 1},
			cached:  true,
			want:    []string{"1 person", "cached"},
			notWant: []string{"generation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printStats(tt.stats, tt.cached)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q should not contain %q", out, w)
				}
			}
		})
	}
}

func TestPrintHelpers(t *testing.T) {
	buf := captureStdout(t)

	printSuccess("Rendered %s", "smiths.json")
	printWarning("Render cache disabled")
	printFile("smiths.svg")
	printKeyValue("Store", "memory")
	printNextStep("Render the whole family", "familytree render smiths.json")

	out := buf.String()
	for _, want := range []string{"Rendered smiths.json", "Render cache disabled", "smiths.svg", "Store", "memory", "familytree render smiths.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("got %d lines, want 5", got)
	}
}
