package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_AddIgnoresBlankMessages(t *testing.T) {
	r := NewResult()

	r.AddError("")
	r.AddError("   ")
	r.AddError("\t\n")
	r.AddWarning("")
	r.AddWarning("  ")

	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.True(t, r.IsValid())

	r.AddError("broken")
	r.AddWarning("odd")
	assert.Equal(t, []string{"broken"}, r.Errors)
	assert.Equal(t, []string{"odd"}, r.Warnings)
	assert.False(t, r.IsValid())
}

func TestResult_IsValidIgnoresWarnings(t *testing.T) {
	r := NewResult()
	r.AddWarning("just a warning")

	assert.True(t, r.IsValid())
	assert.True(t, r.HasWarnings())
}

func TestResult_MergePreservesOrderAndDuplicates(t *testing.T) {
	a := NewResult()
	a.AddError("e1")
	a.AddWarning("w1")

	b := NewResult()
	b.AddError("e1") // same message on purpose
	b.AddError("e2")
	b.AddWarning("w2")

	a.Merge(b)

	assert.Equal(t, []string{"e1", "e1", "e2"}, a.Errors)
	assert.Equal(t, []string{"w1", "w2"}, a.Warnings)
}

func TestResult_MergeNilIsNoop(t *testing.T) {
	a := NewResult()
	a.AddError("e1")

	a.Merge(nil)

	assert.Equal(t, []string{"e1"}, a.Errors)
}
