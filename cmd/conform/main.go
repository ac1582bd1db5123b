package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemaci/conform/pkg/engine"
	"github.com/schemaci/conform/pkg/manifest"
	"github.com/schemaci/conform/pkg/suite"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conform",
	Short: "JSON Schema conformance harness",
	Long:  "conform — runs JSON Schema conformance fixtures against the validation engine and gates CI on the result.",
}

// --- run ---

var (
	runDirs    []string
	runIgnores []string
	runFilter  string
	runVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run [manifest.yaml]",
	Short: "Run conformance suites and exit nonzero on any non-ignored failure",
	Long: `Run conformance suites from a manifest file, from --dir flags, or both.

Each --dir names a fixture tree as path=draft (draft optional, e.g.
fixtures/draft7=draft7). Flags add to whatever the manifest declares.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	m := &manifest.Manifest{}
	if len(args) == 1 {
		loaded, errs := manifest.ValidateFile(args[0])
		if hasValidationErrors(errs) {
			printValidationErrors(errs)
			return fmt.Errorf("manifest validation failed with %d error(s)", countValidationErrors(errs))
		}
		m = loaded
	}

	for _, spec := range runDirs {
		dir, draft := splitDirSpec(spec)
		m.Suites = append(m.Suites, manifest.SuiteRef{Dir: dir, Draft: draft})
	}
	m.Ignores = append(m.Ignores, runIgnores...)
	if runFilter != "" {
		m.Filter = runFilter
	}
	if runVerbose {
		m.Verbose = true
	}
	if len(m.Suites) == 0 {
		return fmt.Errorf("nothing to run: provide a manifest or at least one --dir")
	}

	s := suite.New(engine.New())
	for _, ref := range m.Suites {
		if err := s.AddCollection(ref.Dir, ref.Draft); err != nil {
			return fmt.Errorf("load suite %s: %w", ref.Dir, err)
		}
	}
	for _, p := range m.Ignores {
		s.Ignore(p)
	}
	if m.Filter != "" {
		if err := s.SetFilter(m.Filter); err != nil {
			return err
		}
	}

	log := s.Run()
	rep := &suite.Reporter{Out: os.Stdout, Verbose: m.Verbose}
	sum := rep.Report(log, s.Ignores())
	if sum.ExitCode() != 0 {
		return fmt.Errorf("%d conformance failure(s)", sum.Failed)
	}
	return nil
}

// splitDirSpec splits a --dir value of the form path=draft. A value without
// "=" selects the engine's default draft.
func splitDirSpec(spec string) (dir, draft string) {
	if i := strings.LastIndex(spec, "="); i >= 0 {
		return spec[:i], spec[i+1:]
	}
	return spec, ""
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate [manifest.yaml]",
	Short: "Validate a run manifest against the schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, errs := manifest.ValidateFile(args[0])
	if len(errs) > 0 {
		printValidationErrors(errs)
		if hasValidationErrors(errs) {
			return fmt.Errorf("validation failed with %d error(s)", countValidationErrors(errs))
		}
	}
	fmt.Printf("✓ %s is valid (%d suite(s))\n", args[0], len(m.Suites))
	return nil
}

func hasValidationErrors(errs []*manifest.ValidationError) bool {
	return countValidationErrors(errs) > 0
}

func countValidationErrors(errs []*manifest.ValidationError) int {
	n := 0
	for _, e := range errs {
		if e.Severity != "warning" {
			n++
		}
	}
	return n
}

func printValidationErrors(errs []*manifest.ValidationError) {
	i := 0
	for _, e := range errs {
		if e.Severity == "warning" {
			fmt.Fprintf(os.Stderr, "  ⚠ [%s] %s\n", e.Phase, e.Message)
		} else {
			i++
			fmt.Fprintf(os.Stderr, "  %d. [%s] %s\n", i, e.Phase, e.Message)
		}
		if e.Path != "" {
			fmt.Fprintf(os.Stderr, "     at: %s\n", e.Path)
		}
	}
}

// --- schema ---

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for run manifests",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := manifest.GenerateJSONSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("conform %s (build: %s)\n", version, commit)
	},
}

func init() {
	runCmd.Flags().StringArrayVar(&runDirs, "dir", nil, "Fixture directory as path=draft (repeatable)")
	runCmd.Flags().StringArrayVar(&runIgnores, "ignore", nil, "Known-failure substring pattern (repeatable)")
	runCmd.Flags().StringVar(&runFilter, "filter", "", "Check-selection expression over file/group/case")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Echo passing checks as well as failures")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
