package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/layerlint/layerlint/internal/domain"
	"github.com/layerlint/layerlint/internal/domain/layers"
	"github.com/layerlint/layerlint/internal/domain/rules"
)

// AuditService orchestrates the audit pipeline:
// scan → parse → classify → run checkers → aggregate report.
type AuditService struct {
	scanner domain.SourceScanner
	parser  domain.SourceParser
	git     domain.GitInfo
}

func NewAuditService(scanner domain.SourceScanner, parser domain.SourceParser, git domain.GitInfo) *AuditService {
	return &AuditService{
		scanner: scanner,
		parser:  parser,
		git:     git,
	}
}

// Checker runs one rule set over the full file set.
type Checker func([]domain.FileRecord) domain.CheckerResult

// ImportCheckers covers the Dependency Rule audit.
func ImportCheckers() []Checker {
	return []Checker{rules.CheckImports}
}

// StructureCheckers covers the four structure and convention audits.
func StructureCheckers() []Checker {
	return []Checker{
		rules.CheckNaming,
		rules.CheckEncapsulation,
		rules.CheckLayerContent,
		rules.CheckUseCaseTriad,
	}
}

// AllCheckers runs both audits over the same file set.
func AllCheckers() []Checker {
	return append(ImportCheckers(), StructureCheckers()...)
}

// Audit runs the given checkers over every discoverable source file under
// rootPath. Only a missing root aborts the run; unparseable files are
// skipped and reported as warnings.
func (s *AuditService) Audit(rootPath string, checkers []Checker) (*domain.Report, error) {
	scan, err := s.scanner.Scan(rootPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.Report{
		RootPath:     scan.RootPath,
		FilesScanned: len(scan.SourceFiles),
	}

	if s.git != nil && s.git.IsGitRepo(scan.RootPath) {
		if hash, err := s.git.CommitHash(scan.RootPath); err == nil {
			report.CommitHash = hash
		}
	}

	files := make([]domain.FileRecord, 0, len(scan.SourceFiles))
	for _, relPath := range scan.SourceFiles {
		content, err := os.ReadFile(filepath.Join(scan.RootPath, relPath))
		if err != nil {
			report.Warnings = append(report.Warnings, domain.Warning{
				File:    relPath,
				Message: fmt.Sprintf("could not read: %v", err),
			})
			continue
		}

		summary, err := s.parser.Parse(content)
		if err != nil {
			if !errors.Is(err, domain.ErrParse) {
				return nil, fmt.Errorf("parsing %s: %w", relPath, err)
			}
			report.Warnings = append(report.Warnings, domain.Warning{
				File:    relPath,
				Message: fmt.Sprintf("could not parse: %v", err),
			})
			continue
		}

		files = append(files, domain.FileRecord{
			Path:    relPath,
			Layer:   layers.Classify(relPath),
			Summary: summary,
		})
	}

	for _, check := range checkers {
		report.Results = append(report.Results, check(files))
	}

	return report, nil
}
