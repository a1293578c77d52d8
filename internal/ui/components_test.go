package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/muurk/agri-advisor/internal/advisor"
)

func TestErrorBox_Render(t *testing.T) {
	out := NewErrorBox("Could not find location").
		SetWidth(100).
		SetFooter("esc to dismiss").
		AddTroubleshooting("Check the spelling").
		Render()

	for _, want := range []string{"Error", "Could not find location", "Troubleshooting:", "Check the spelling", "esc to dismiss"} {
		if !strings.Contains(out, want) {
			t.Errorf("error box missing %q", want)
		}
	}
}

func TestErrorBox_NoTroubleshooting(t *testing.T) {
	out := RenderErrorBox("Timeout", "Request timed out", nil, 80)
	if strings.Contains(out, "Troubleshooting:") {
		t.Error("error box without tips should not render a troubleshooting section")
	}
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Agricultural Advice", "agri-advisor ask",
		Param{Key: "Location", Value: "Jaipur, India"},
		Param{Key: "Backend", Value: "http://localhost:5000"},
	).SetWidth(100).Render()

	for _, want := range []string{"AGRICULTURAL ADVICE", "agri-advisor ask", "Location:", "Jaipur, India", "http://localhost:5000"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestDeadlineBar_Percent(t *testing.T) {
	bar := NewDeadlineBar("", 30*time.Second)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{15 * time.Second, 0.5},
		{30 * time.Second, 1},
		{45 * time.Second, 1},
	}

	for _, tt := range tests {
		if got := bar.Percent(tt.elapsed); got != tt.want {
			t.Errorf("Percent(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	if !strings.Contains(bar.RenderBar(12*time.Second), "12s / 30s") {
		t.Error("RenderBar should show the elapsed counter")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  YES \n", true},
		{"no\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "/tmp/config.yaml"); got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRunner_Success(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(RunnerConfig{
		Title:   "Agricultural Advice",
		Command: "agri-advisor ask",
		Params:  []Param{{Key: "Location", Value: "Jaipur, India"}},
		Timeout: advisor.DefaultTimeout,
		Output:  &out,
		Width:   80,
	})

	result, err := runner.Run(context.Background(), func(ctx context.Context) (*advisor.QueryResult, error) {
		return jaipurResult(), nil
	}, ResultOptions{Zoom: 10}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Location != "Jaipur, India" {
		t.Errorf("Location = %s, want Jaipur, India", result.Location)
	}
	if !strings.Contains(out.String(), "Answered in") {
		t.Error("output should report the elapsed time")
	}
}

func TestRunner_Failure(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(RunnerConfig{
		Title:   "Agricultural Advice",
		Command: "agri-advisor ask",
		Timeout: advisor.DefaultTimeout,
		Output:  &out,
		Width:   100,
	})

	connErr := advisor.NewConnectionError(syscall.ECONNREFUSED)
	_, err := runner.Run(context.Background(), func(ctx context.Context) (*advisor.QueryResult, error) {
		return nil, connErr
	}, ResultOptions{}, func(err error) []string {
		return advisor.TroubleshootingHints(err, "http://localhost:5000")
	})

	if !errors.Is(err, connErr) {
		t.Fatalf("Run() error = %v, want %v", err, connErr)
	}
	if !strings.Contains(out.String(), "FAILED") {
		t.Error("output should contain the failure box")
	}
	if !strings.Contains(out.String(), "Troubleshooting:") {
		t.Error("output should contain troubleshooting tips")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(90)

	if p.Width() != 90 {
		t.Errorf("Width() = %d, want 90", p.Width())
	}

	p.PrintHeader("Backend Discovery", "agri-advisor discover", Param{Key: "Timeout", Value: "3s"})
	p.PrintSuccess("Found 1 backend(s)")
	p.PrintLines("1. field-office", "   URL:     http://192.168.1.20:5000")
	p.PrintError("NO BACKENDS FOUND", "Nothing answered.", []string{"Use --api-url"})

	out := buf.String()
	for _, want := range []string{"BACKEND DISCOVERY", "Timeout", "3s", SuccessMarker + " Found 1 backend(s)", "http://192.168.1.20:5000", "NO BACKENDS FOUND", "Use --api-url"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
