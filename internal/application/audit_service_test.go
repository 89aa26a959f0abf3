package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerlint/layerlint/internal/adapters/outbound/parser"
	"github.com/layerlint/layerlint/internal/adapters/outbound/scanner"
	"github.com/layerlint/layerlint/internal/application"
	"github.com/layerlint/layerlint/internal/domain"
)

const (
	cleanFixture      = "../../testdata/python-clean/clean"
	violationsFixture = "../../testdata/python-clean/violations"
)

func newService() *application.AuditService {
	// git annotation is optional and skipped when the port is nil
	return application.NewAuditService(scanner.New(), parser.New(), nil)
}

func resultFor(t *testing.T, report *domain.Report, checker string) domain.CheckerResult {
	t.Helper()
	for _, r := range report.Results {
		if r.Checker == checker {
			return r
		}
	}
	t.Fatalf("checker %s missing from report", checker)
	return domain.CheckerResult{}
}

func TestAudit_CleanProjectPasses(t *testing.T) {
	report, err := newService().Audit(cleanFixture, application.AllCheckers())
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Zero(t, report.TotalViolations())
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 4, report.FilesScanned)
}

func TestAudit_DependencyRuleViolations(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	deps := resultFor(t, report, domain.CheckerDependencyRule)
	require.Len(t, deps.Violations, 2)

	// application(1) → infrastructure(2)
	assert.Equal(t, "application/use_cases/create_task.py", deps.Violations[0].File)
	assert.Contains(t, deps.Violations[0].Message, "imports infrastructure.repositories.sql_task_repository (infrastructure)")

	// infrastructure(2) → frameworks(3)
	assert.Equal(t, "infrastructure/repositories/sql_task_repository.py", deps.Violations[1].File)
	assert.Contains(t, deps.Violations[1].Message, "(frameworks); dependencies must flow inward.")
}

func TestAudit_UseCaseTriadViolations(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	triad := resultFor(t, report, domain.CheckerUseCaseTriad)
	require.Len(t, triad.Violations, 2)
	assert.Contains(t, triad.Violations[0].Message, "'DeleteTaskRequest'")
	assert.Contains(t, triad.Violations[1].Message, "'DeleteTaskResponse'")
}

func TestAudit_LayerContentViolation(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	content := resultFor(t, report, domain.CheckerLayerContent)
	require.Len(t, content.Violations, 1)
	assert.Equal(t, "domain/controllers/task_controller.py", content.Violations[0].File)
	assert.Contains(t, content.Violations[0].Message, "'controller'")
}

func TestAudit_NamingViolations(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	naming := resultFor(t, report, domain.CheckerNaming)
	require.Len(t, naming.Violations, 3)
	assert.Contains(t, naming.Violations[0].Message, "'_MAX_TITLE_LENGTH'")
	assert.Contains(t, naming.Violations[1].Message, "'taskService'")
	assert.Contains(t, naming.Violations[2].Message, "'RenameTask'")
}

func TestAudit_EncapsulationViolation(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	encap := resultFor(t, report, domain.CheckerEncapsulation)
	require.Len(t, encap.Violations, 1)
	assert.Equal(t, "domain/entities/task_entity.py", encap.Violations[0].File)
	assert.Contains(t, encap.Violations[0].Message, "@property")
}

func TestAudit_ParseFailureIsWarningNotFatal(t *testing.T) {
	report, err := newService().Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "frameworks/web/broken.py", report.Warnings[0].File)
	assert.Contains(t, report.Warnings[0].Message, "could not parse")
}

func TestAudit_Idempotent(t *testing.T) {
	svc := newService()
	first, err := svc.Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)
	second, err := svc.Audit(violationsFixture, application.AllCheckers())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAudit_SuitesAreIndependent(t *testing.T) {
	svc := newService()

	imports, err := svc.Audit(violationsFixture, application.ImportCheckers())
	require.NoError(t, err)
	require.Len(t, imports.Results, 1)
	assert.Equal(t, domain.CheckerDependencyRule, imports.Results[0].Checker)

	structure, err := svc.Audit(violationsFixture, application.StructureCheckers())
	require.NoError(t, err)
	require.Len(t, structure.Results, 4)
	for _, r := range structure.Results {
		assert.NotEqual(t, domain.CheckerDependencyRule, r.Checker)
	}
}

func TestAudit_MissingRootFails(t *testing.T) {
	_, err := newService().Audit("does/not/exist", application.AllCheckers())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
}
