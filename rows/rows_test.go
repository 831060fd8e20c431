package rows

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"valuematch/block"
	"valuematch/compare"
)

func flight(name string, number any, coords, date string) []any {
	return []any{name, number, coords, date}
}

func comparator(t *testing.T, tolerances map[compare.Slot]float64) *compare.Comparator {
	t.Helper()

	c := compare.Default()
	for s, v := range tolerances {
		require.NoError(t, c.Tolerances().Set(s, v))
	}

	return c
}

func TestMatchRows(t *testing.T) {
	tests := []struct {
		name       string
		tolerances map[compare.Slot]float64
		r1, r2     []any
		expected   bool
	}{
		{
			name:     "identical",
			r1:       flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			r2:       flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			expected: true,
		},
		{
			name:       "str_number tolerance",
			tolerances: map[compare.Slot]float64{compare.SlotStrNumber: 10},
			r1:         flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			r2:         flight("Flight 1A", 100, "41.49008, -71.312796", "10-Dec-2015"),
			expected:   true,
		},
		{
			name:       "number tolerance",
			tolerances: map[compare.Slot]float64{compare.SlotNumber: 10},
			r1:         flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			r2:         flight("Flight 1", 90, "41.49008, -71.312796", "10-Dec-2015"),
			expected:   true,
		},
		{
			name:       "coordinates tolerance",
			tolerances: map[compare.Slot]float64{compare.SlotCoordinates: 650},
			r1:         flight("Flight 1", 100, "55.75222, 37.61556", "10-Dec-2015"),
			r2:         flight("Flight 1", 100, "59.93863, 30.31413", "10-Dec-2015"),
			expected:   true,
		},
		{
			name:       "date tolerance",
			tolerances: map[compare.Slot]float64{compare.SlotDate: 10},
			r1:         flight("Flight 1", 100, "55.75222, 37.61556", "10-Dec-2015"),
			r2:         flight("Flight 1", 100, "55.75222, 37.61556", "20-Dec-2015"),
			expected:   true,
		},
		{
			name:     "no tolerance",
			r1:       flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			r2:       flight("Flight 1A", 100, "41.49008, -71.312796", "10-Dec-2015"),
			expected: false,
		},
		{
			name:     "length mismatch",
			r1:       flight("Flight 1", 100, "41.49008, -71.312796", "10-Dec-2015"),
			r2:       []any{"Flight 1", 100, "41.49008, -71.312796"},
			expected: false,
		},
		{
			name:     "mixed formats",
			r1:       []any{"Well 1", 5, "1 May 2015"},
			r2:       []any{"Well 01", 5, "2015-05-01"},
			expected: true,
		},
		{
			name:     "mixed formats, different number",
			r1:       []any{"Well 1", 5, "1 May 2015"},
			r2:       []any{"Well 01", 6, "2015-05-01"},
			expected: false,
		},
		{
			name:     "empty rows",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(comparator(t, tt.tolerances))

			ok, err := m.MatchRows(tt.r1, tt.r2)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok, spew.Sdump(tt.r1, tt.r2))
		})
	}
}

func TestMatchRowsDefault(t *testing.T) {
	ok, err := MatchRows([]any{"Well 1", 5}, []any{"Well 01", "5"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchRowsErrors(t *testing.T) {
	_, err := MatchRows([]any{"Well 1", true}, []any{"Well 1", true})
	require.ErrorIs(t, err, block.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "element 1")

	_, _, err = Find([]any{nil}, [][]any{{nil}})
	require.ErrorIs(t, err, block.ErrUnsupportedType)

	_, err = FindAll([]any{nil}, [][]any{{nil}})
	require.ErrorIs(t, err, block.ErrUnsupportedType)
}

func TestMatcherBlockOptions(t *testing.T) {
	r1, r2 := []any{"XXI Century"}, []any{"21 Century"}

	ok, err := NewMatcher(nil).MatchRows(r1, r2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewMatcher(nil, block.WithRomanConversion(false)).MatchRows(r1, r2)
	require.NoError(t, err)
	assert.False(t, ok)
}

var candidates = [][]any{
	flight("Flight 12", 100, "41.49, -71.312", "10-Dec-2015"),
	flight("Flight 13", 100, "41.49, -71.312", "10-Dec-2015"),
	flight("Flight 1", 100, "41.49, -71.312", "10-Dec-2015"),
}

func TestFind(t *testing.T) {
	row := flight("Flight 1", 100, "41.49, -71.312", "10-Dec-2015")

	found, ok, err := NewMatcher(nil).Find(row, candidates)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, candidates[2], found)

	m := NewMatcher(comparator(t, map[compare.Slot]float64{compare.SlotStrNumber: 20}))

	found, ok, err = m.Find(row, candidates)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, candidates[0], found)

	found, ok, err = Find(flight("Flight 9", 100, "41.49, -71.312", "10-Dec-2015"), candidates)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, found)
}

func TestFindAll(t *testing.T) {
	row := flight("Flight 1", 100, "41.49, -71.312", "10-Dec-2015")
	numbered := [][]any{
		flight("Flight 11", 100, "41.49, -71.312", "10-Dec-2015"),
		flight("Flight 12", 100, "41.49, -71.312", "10-Dec-2015"),
		flight("Flight 13", 100, "41.49, -71.312", "10-Dec-2015"),
	}

	found, err := FindAll(row, [][]any{row, numbered[1], row})
	require.NoError(t, err)
	assert.Equal(t, [][]any{row, row}, found)

	m := NewMatcher(comparator(t, map[compare.Slot]float64{compare.SlotStrNumber: 10}))

	found, err = m.FindAll(row, numbered)
	require.NoError(t, err)
	assert.Equal(t, numbered, found)

	found, err = FindAll(row, numbered)
	require.NoError(t, err)
	assert.Empty(t, found)
}

// FindAll returns exactly the rows MatchRows accepts.
func TestFindAllMatchesMatchRows(t *testing.T) {
	m := NewMatcher(comparator(t, map[compare.Slot]float64{compare.SlotStrNumber: 10}))
	row := flight("Flight 1", 100, "41.49, -71.312", "10-Dec-2015")
	rows := append(slices.Clone(candidates), flight("Flight 1", 90, "41.49, -71.312", "10-Dec-2015"))

	var expected [][]any

	for _, r := range rows {
		ok, err := m.MatchRows(row, r)
		require.NoError(t, err)

		if ok {
			expected = append(expected, r)
		}
	}

	found, err := m.FindAll(row, rows)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
	assert.Len(t, found, 3)
}

func TestReturnElement(t *testing.T) {
	i, err := ReturnElement("Foo Bar", "Bar")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = ReturnElement("Block-A 1", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = ReturnElement("Foo Bar", "Spam")
	require.ErrorIs(t, err, ErrElementNotFound)
	assert.Contains(t, err.Error(), `"Spam"`)
}

func TestReturnElementWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	i, err := ReturnElement("Spam Spam Spam", "Spam")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	entries := logs.FilterMessage("element occurs more than once").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])

	_, err = ReturnElement("Spam Eggs", "Spam")
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}

func TestMoveElement(t *testing.T) {
	tests := []struct {
		word  string
		index int
		front string
		back  string
	}{
		{"Foo Bar", 0, "Foo Bar", "Bar Foo"},
		{"Foo Bar", 1, "Bar Foo", "Foo Bar"},
		{"A B C", 2, "C A B", "A B C"},
		{"A B C", 0, "A B C", "B C A"},
		{"Block-A  1", 1, "A Block 1", "Block 1 A"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			front, err := MoveElementToFront(tt.word, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.front, front)

			back, err := MoveElementToBack(tt.word, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.back, back)
		})
	}
}

func TestMoveElementOutOfRange(t *testing.T) {
	for _, index := range []int{2, -1} {
		_, err := MoveElementToFront("Foo Bar", index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = MoveElementToBack("Foo Bar", index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	_, err := MoveElementToFront("", 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMoveWord(t *testing.T) {
	s, err := MoveWordToFront("Foo Bar", "Bar")
	require.NoError(t, err)
	assert.Equal(t, "Bar Foo", s)

	s, err = MoveWordToBack("Foo Bar", "Foo")
	require.NoError(t, err)
	assert.Equal(t, "Bar Foo", s)

	s, err = MoveWordToBack("A B C", "B")
	require.NoError(t, err)
	assert.Equal(t, "A C B", s)

	_, err = MoveWordToFront("Foo Bar", "Spam")
	require.ErrorIs(t, err, ErrElementNotFound)
}
