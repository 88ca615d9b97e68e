package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	oldDoc := "name: aurora\nkind: service\n"
	newDoc := "name: cascade\nkind: store\n"

	r := Compute(oldDoc, newDoc, "aurora", "cascade")
	assert.Equal(t, "aurora", r.Old)
	assert.Equal(t, "cascade", r.New)
	assert.Contains(t, r.Diff, "- ")
	assert.Contains(t, r.Diff, "+ ")
}

func TestCompute_Identical(t *testing.T) {
	content := "line one\nline two\n"
	r := Compute(content, content, "a", "b")
	assert.NotContains(t, r.Diff, "- ")
	assert.NotContains(t, r.Diff, "+ ")
}

func TestFormat_CollapsesLongEqualSections(t *testing.T) {
	var lines []string
	for range 20 {
		lines = append(lines, "same")
	}
	oldDoc := strings.Join(lines, "\n") + "\nold tail\n"
	newDoc := strings.Join(lines, "\n") + "\nnew tail\n"

	r := Compute(oldDoc, newDoc, "a", "b")
	assert.Contains(t, r.Diff, "  ...\n")
}

func TestResult_Format(t *testing.T) {
	r := Compute("a\n", "b\n", "old-label", "new-label")

	plain := r.Format(false)
	assert.True(t, strings.HasPrefix(plain, "--- old-label\n+++ new-label\n"))
	assert.NotContains(t, plain, "\033[")

	coloured := r.Format(true)
	assert.Contains(t, coloured, "\033[31m")
	assert.Contains(t, coloured, "\033[32m")
}
