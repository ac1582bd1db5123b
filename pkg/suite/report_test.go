package suite

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func reportLog() (*Log, *IgnoreList) {
	log := &Log{}
	log.Append(Record{Valid: true, File: "suite/draft7/types.json", Group: "integer type", Case: "an integer is valid"})
	log.Append(Record{Valid: false, File: "suite/draft7/types.json", Group: "integer type", Case: "a string is invalid", Err: "expected failure"})
	log.Append(Record{Valid: false, File: "suite/draft7/optional/bignum.json", Group: "bignum", Err: "number precision lost"})

	ignores := &IgnoreList{}
	ignores.Ignore("bignum")
	return log, ignores
}

func TestSummarize(t *testing.T) {
	log, ignores := reportLog()
	sum := Summarize(log, ignores)
	if sum != (Summary{Succeeded: 1, Failed: 1, Ignored: 1}) {
		t.Errorf("unexpected summary %+v", sum)
	}
	if sum.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", sum.ExitCode())
	}
	if (Summary{Succeeded: 3, Ignored: 2}).ExitCode() != 0 {
		t.Error("ignored failures alone must not fail the gate")
	}
}

func TestSummarizeIsPure(t *testing.T) {
	log, ignores := reportLog()
	a := Summarize(log, ignores)
	b := Summarize(log, ignores)
	if a != b {
		t.Errorf("summarize not idempotent: %+v vs %+v", a, b)
	}
}

func TestReportGolden(t *testing.T) {
	log, ignores := reportLog()
	var buf bytes.Buffer
	r := &Reporter{Out: &buf}
	sum := r.Report(log, ignores)
	if sum.Failed != 1 {
		t.Fatalf("expected 1 failure, got %d", sum.Failed)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}

func TestReportVerboseGolden(t *testing.T) {
	log, ignores := reportLog()
	var buf bytes.Buffer
	r := &Reporter{Out: &buf, Verbose: true}
	r.Report(log, ignores)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_verbose", buf.Bytes())
}
