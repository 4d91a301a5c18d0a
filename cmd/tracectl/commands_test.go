package main

import (
	"testing"

	"github.com/joshuapare/tracekit/internal/testutil"
	"github.com/joshuapare/tracekit/pkg/types"
)

func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	analyzePageBlocks = types.DefaultPageBlocks
	hotwritePageBlocks = types.DefaultPageBlocks
}

func fixtureTrace(t *testing.T) string {
	t.Helper()
	return testutil.WriteTrace(t,
		"# synthetic fixture",
		"W 0 8",
		"R 0 4",
		"R 4 4",
		"W 100 8",
	)
}

func TestInfoCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, func() error {
		return runInfo([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	assertContains(t, output, []string{
		"Trace Information",
		"Records: 4 (2 reads, 2 writes)",
		"Blocks written: 16",
	})
}

func TestInfoCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runInfo([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"\"TotalRecords\": 4"})
}

func TestBreakdownCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, func() error {
		return runBreakdown([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runBreakdown: %v", err)
	}
	assertContains(t, output, []string{"Dependency Breakdown", "Reads", "Writes"})
}

func TestHotwriteCommand(t *testing.T) {
	resetFlags()
	hotwritePageBlocks = 4

	output, err := captureOutput(t, func() error {
		return runHotwrite([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runHotwrite: %v", err)
	}
	assertContains(t, output, []string{"Hot Writes", "Total pages considered: 3"})
}

func TestAnalyzeCommand(t *testing.T) {
	resetFlags()
	analyzePageBlocks = 4

	output, err := captureOutput(t, func() error {
		return runAnalyze([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}
	assertContains(t, output, []string{"Dependency Breakdown", "Hot Writes"})
}

func TestAnalyzeCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runAnalyze([]string{fixtureTrace(t)})
	})
	if err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"HotWrite", "PageBlocks"})
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	resetFlags()

	_, err := captureOutput(t, func() error {
		return runAnalyze([]string{"/nonexistent/trace.log"})
	})
	if err == nil {
		t.Fatal("expected error for missing trace file")
	}
}
