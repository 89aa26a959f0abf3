package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layerlint/layerlint/internal/adapters/outbound/tui"
	"github.com/layerlint/layerlint/internal/domain"
)

func TestRenderReport_PassingReport(t *testing.T) {
	report := &domain.Report{
		RootPath:     "/tmp/project",
		FilesScanned: 3,
		Results: []domain.CheckerResult{
			{Checker: domain.CheckerDependencyRule},
			{Checker: domain.CheckerNaming},
		},
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "layerlint")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "Dependency Rule")
	assert.Contains(t, out, "Naming Conventions")
	assert.Contains(t, out, "files scanned: 3")
	assert.Contains(t, out, "All checks passed.")
	assert.NotContains(t, out, "How to fix")
}

func TestRenderReport_FailingReport(t *testing.T) {
	report := &domain.Report{
		RootPath:     "/tmp/project",
		FilesScanned: 2,
		Results: []domain.CheckerResult{
			{
				Checker: domain.CheckerDependencyRule,
				Violations: []domain.Violation{{
					File:    "domain/task.py",
					Layer:   "domain",
					Rule:    domain.CheckerDependencyRule,
					Message: "domain/task.py (domain) imports frameworks.web (frameworks); dependencies must flow inward.",
				}},
			},
			{Checker: domain.CheckerUseCaseTriad},
		},
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "1 violation(s)")
	assert.Contains(t, out, "domain/task.py")
	assert.Contains(t, out, "dependencies must flow inward.")
	assert.Contains(t, out, "Total violations: 1")
	// Fix guidance only accompanies dependency violations.
	assert.Contains(t, out, "How to fix")
}

func TestRenderReport_Warnings(t *testing.T) {
	report := &domain.Report{
		RootPath:     "/tmp/project",
		FilesScanned: 1,
		Warnings: []domain.Warning{
			{File: "frameworks/web/broken.py", Message: "could not parse: invalid syntax"},
		},
		Results: []domain.CheckerResult{{Checker: domain.CheckerNaming}},
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "Warnings")
	assert.Contains(t, out, "frameworks/web/broken.py")
	assert.Contains(t, out, "could not parse")
}

func TestRenderReport_CommitHashShortened(t *testing.T) {
	report := &domain.Report{
		RootPath:     "/tmp/project",
		CommitHash:   "0123456789abcdef0123456789abcdef01234567",
		FilesScanned: 1,
		Results:      []domain.CheckerResult{{Checker: domain.CheckerNaming}},
	}

	out := tui.RenderReport(report)
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789abcdef")
}

func TestRenderReport_StructureOnlyFailureHasNoFixGuidance(t *testing.T) {
	report := &domain.Report{
		RootPath:     "/tmp/project",
		FilesScanned: 1,
		Results: []domain.CheckerResult{
			{
				Checker: domain.CheckerNaming,
				Violations: []domain.Violation{{
					File:    "domain/task.py",
					Rule:    domain.CheckerNaming,
					Message: "class 'badName' should use PascalCase",
				}},
			},
		},
	}

	out := tui.RenderReport(report)
	assert.Contains(t, out, "FAIL")
	assert.NotContains(t, out, "How to fix")
}
