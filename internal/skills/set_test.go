package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddKeepsFirstOccurrence(t *testing.T) {
	s := NewSet("b", "a", "b", "c", "a")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"b", "a", "c"}, s.Values())
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("d"))
	assert.True(t, s.Contains("d"))
}

func TestSet_ZeroValueAndNil(t *testing.T) {
	var zero Set
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.Add("x"))
	assert.Equal(t, []string{"x"}, zero.Values())

	var nilSet *Set
	assert.False(t, nilSet.Contains("x"))
	assert.Equal(t, 0, nilSet.Len())
	assert.Equal(t, []string{}, nilSet.Values())
	assert.Equal(t, []string{}, nilSet.Intersect(NewSet("x")))
}

func TestSet_IntersectAndDifference(t *testing.T) {
	resume := NewSet("typescript", "react", "aws", "docker")
	job := NewSet("react", "aws", "kubernetes", "typescript")

	assert.Equal(t, []string{"typescript", "react", "aws"}, resume.Intersect(job))
	assert.Equal(t, []string{"react", "aws", "typescript"}, job.Intersect(resume))
	assert.Equal(t, []string{"kubernetes"}, job.Difference(resume))
	assert.Equal(t, []string{"docker"}, resume.Difference(job))
	assert.Equal(t, []string{}, NewSet().Difference(job))
	assert.Equal(t, []string{"a"}, NewSet("a").Difference(nil))
}

func TestSet_ValuesReturnsCopy(t *testing.T) {
	s := NewSet("a", "b")
	values := s.Values()
	values[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Values())
}
