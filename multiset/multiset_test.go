package multiset_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberhill/redblack/multiset"
)

func TestAddAndCount(t *testing.T) {
	m := multiset.NewOrdered[string]()
	for _, v := range []string{"b", "a", "c", "a", "a", "b"} {
		m.Add(v)
	}

	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 3, m.Count("a"))
	assert.Equal(t, 2, m.Count("b"))
	assert.Equal(t, 1, m.Count("c"))
	assert.Equal(t, 0, m.Count("d"))

	assert.True(t, m.Contains("a"))
	assert.False(t, m.Contains("d"))
}

func TestValuesSorted(t *testing.T) {
	m := multiset.NewOrdered[int]()
	for _, v := range []int{5, 1, 4, 1, 3} {
		m.Add(v)
	}

	assert.Equal(t, []int{1, 1, 3, 4, 5}, slices.Collect(m.Values()))
}

func TestMin(t *testing.T) {
	m := multiset.NewOrdered[int]()

	_, ok := m.Min()
	assert.False(t, ok)

	m.Add(7)
	m.Add(2)
	m.Add(9)

	got, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestForEachEarlyStop(t *testing.T) {
	m := multiset.NewOrdered[int]()
	for v := range 10 {
		m.Add(v)
	}

	var got []int
	m.ForEach(func(v int) bool {
		got = append(got, v)
		return len(got) < 3
	})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestCustomCompare(t *testing.T) {
	// Order case-insensitively; equal keys keep all occurrences.
	m := multiset.New(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	m.Add("Go")
	m.Add("go")
	m.Add("ada")

	assert.Equal(t, 2, m.Count("GO"))
	assert.True(t, m.Contains("ADA"))
}
