package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a b", JoinNonEmpty(" ", "", "a", "", "b", ""))
	assert.Equal(t, "", JoinNonEmpty(" "))
	assert.Equal(t, "x", JoinNonEmpty(", ", "x"))
}

func TestCountFunc(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 2, CountFunc([]int{1, 2, 3, 4}, even))
	assert.Equal(t, 0, CountFunc([]int(nil), even))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 100))
	assert.True(t, IsInRange(0, 100, 100))
	assert.True(t, IsInRange(0.0, 25.5, 100))
	assert.False(t, IsInRange(0, 101, 100))
	assert.False(t, IsInRange(0.0, -0.5, 100))
}
