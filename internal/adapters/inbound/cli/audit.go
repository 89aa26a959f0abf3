package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/layerlint/layerlint/internal/adapters/outbound/gitinfo"
	"github.com/layerlint/layerlint/internal/adapters/outbound/parser"
	"github.com/layerlint/layerlint/internal/adapters/outbound/scanner"
	"github.com/layerlint/layerlint/internal/adapters/outbound/tui"
	"github.com/layerlint/layerlint/internal/application"
	"github.com/layerlint/layerlint/internal/domain"
)

type suite int

const (
	allSuites suite = iota
	importSuite
	structureSuite
)

func (s suite) checkers() []application.Checker {
	switch s {
	case importSuite:
		return application.ImportCheckers()
	case structureSuite:
		return application.StructureCheckers()
	default:
		return application.AllCheckers()
	}
}

// defaultRoots are tried in order when no path argument is given.
var defaultRoots = []string{"src", "app", "."}

// resolveRoot picks the audit root: the explicit argument when present,
// otherwise the first default root that exists.
func resolveRoot(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	for _, dir := range defaultRoots {
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: no source directory found (tried src, app, .)", domain.ErrPathNotFound)
}

func newAuditService() *application.AuditService {
	return application.NewAuditService(scanner.New(), parser.New(), gitinfo.New())
}

// runAudit is the shared RunE body of the root, imports and structure
// commands: resolve the root, run the suite, print the report, and convert a
// failing report into a non-zero exit status.
func runAudit(cmd *cobra.Command, args []string, s suite, format string) error {
	rootPath, err := resolveRoot(args)
	if err != nil {
		return err
	}

	report, err := newAuditService().Audit(rootPath, s.checkers())
	if err != nil {
		return err
	}

	if err := renderReport(cmd, report, format); err != nil {
		return err
	}

	if !report.Passed() {
		return fmt.Errorf("audit failed: %d violation(s)", report.TotalViolations())
	}
	return nil
}

func renderReport(cmd *cobra.Command, report *domain.Report, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text", "":
		fmt.Fprint(out, tui.RenderReport(report))
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(report)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
