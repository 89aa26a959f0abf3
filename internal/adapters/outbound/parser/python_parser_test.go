package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerlint/layerlint/internal/adapters/outbound/parser"
	"github.com/layerlint/layerlint/internal/domain"
)

func TestParse_ImportForms(t *testing.T) {
	src := []byte(`
import os
import frameworks.web.app as web
from domain.entities.task import Task
from infrastructure.repositories import SqlTaskRepository
from .sibling import helper
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"os",
		"frameworks.web.app",
		"domain.entities.task",
		"infrastructure.repositories",
		"sibling",
	}, summary.Imports)
}

func TestParse_ClassDeclaration(t *testing.T) {
	src := []byte(`
from dataclasses import dataclass


@dataclass
class CreateTaskRequest(BaseModel):
    title: str
    count = 0
    _hidden: int


class Task:
    def __init__(self, task_id):
        self._task_id = task_id

    @property
    def task_id(self):
        return self._task_id
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)
	require.Len(t, summary.Classes, 2)

	request := summary.Classes[0]
	assert.Equal(t, "CreateTaskRequest", request.Name)
	assert.Equal(t, []string{"BaseModel"}, request.Bases)
	assert.Equal(t, []string{"dataclass"}, request.Decorators)
	assert.Equal(t, []domain.Field{
		{Name: "title", Annotated: true},
		{Name: "count", Annotated: false},
		{Name: "_hidden", Annotated: true},
	}, request.Fields)

	task := summary.Classes[1]
	assert.Equal(t, "Task", task.Name)
	assert.True(t, task.AssignsPrivateAttrs)
	assert.True(t, task.HasAccessor())
	require.Len(t, task.Methods, 2)
	assert.Equal(t, "__init__", task.Methods[0].Name)
	assert.Equal(t, []string{"property"}, task.Methods[1].Decorators)
}

func TestParse_CallDecorator(t *testing.T) {
	src := []byte(`
@dataclass(frozen=True)
class Money:
    amount: int
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)
	require.Len(t, summary.Classes, 1)
	assert.Equal(t, []string{"dataclass"}, summary.Classes[0].Decorators)
}

func TestParse_FunctionsIncludeMethods(t *testing.T) {
	src := []byte(`
def module_level():
    pass


class Service:
    def do_work(self):
        pass
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)

	var names []string
	for _, fn := range summary.Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"module_level", "do_work"}, names)
}

func TestParse_ModuleAssignments(t *testing.T) {
	src := []byte(`
MAX_SIZE = 100
_INTERNAL_LIMIT = 5
default_name = "task"
X = 1


def f():
    LOCAL_UPPER = 2
    return LOCAL_UPPER
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []domain.Assignment{
		{Name: "MAX_SIZE", LooksConstant: true},
		{Name: "_INTERNAL_LIMIT", LooksConstant: true},
		{Name: "default_name", LooksConstant: false},
		{Name: "X", LooksConstant: false}, // no separator
	}, summary.Assignments)
}

func TestParse_PrivateAttrDetectionScopedToInit(t *testing.T) {
	src := []byte(`
class Task:
    def __init__(self, title):
        self.title = title
`)
	summary, err := parser.New().Parse(src)
	require.NoError(t, err)
	require.Len(t, summary.Classes, 1)
	assert.False(t, summary.Classes[0].AssignsPrivateAttrs)
}

func TestParse_SyntaxErrorIsParseError(t *testing.T) {
	src := []byte("def broken(:\n    pass\n")
	_, err := parser.New().Parse(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParse_EmptyFile(t *testing.T) {
	summary, err := parser.New().Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, summary.Imports)
	assert.Empty(t, summary.Classes)
}
