package csstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassNameStability covers spec.md §8's class-name-stability
// invariant: the class assigned to a (selector, property, value)
// triple depends only on that triple, for the lifetime of one table.
func TestClassNameStability(t *testing.T) {
	table := NewHashTable()
	a := table.ClassNameFor(":hover", "color", "blue")
	b := table.ClassNameFor(":hover", "color", "blue")
	assert.Equal(t, a, b)
}

// TestClassNameVariesByTriple ensures distinct triples never collapse
// onto the same class name across selector, property, and value axes
// independently.
func TestClassNameVariesByTriple(t *testing.T) {
	table := NewHashTable()
	base := table.ClassNameFor("", "color", "blue")

	assert.NotEqual(t, base, table.ClassNameFor(":hover", "color", "blue"))
	assert.NotEqual(t, base, table.ClassNameFor("", "background", "blue"))
	assert.NotEqual(t, base, table.ClassNameFor("", "color", "red"))
}

// TestClassNamePropertyGroupPrefixShared checks spec.md §4.3's "property
// bucket" annotation: two declarations for the same property, even with
// different values, share a class-name prefix so the runtime `ax`
// helper can detect the conflict from the class name alone.
func TestClassNamePropertyGroupPrefixShared(t *testing.T) {
	table := NewHashTable()
	red := table.ClassNameFor("", "color", "red")
	blue := table.ClassNameFor("", "color", "blue")

	assert.Equal(t, red[:5], blue[:5], "same-property classes should share their property-group prefix")
}

// TestClassNameAcrossTablesDeterministic covers determinism (spec.md
// §8): a fresh table hashing the same triple produces the same name,
// since the hash has no per-process random seed.
func TestClassNameAcrossTablesDeterministic(t *testing.T) {
	a := NewHashTable().ClassNameFor("", "font-size", "20px")
	b := NewHashTable().ClassNameFor("", "font-size", "20px")
	assert.Equal(t, a, b)
}
