package csstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAtomizeEmpty covers spec.md §8 scenario 1: an empty declaration
// block still gets exactly one stable class, never zero.
func TestAtomizeEmpty(t *testing.T) {
	table := NewHashTable()
	out := Atomize("", table)

	assert.Len(t, out.ClassNames, 1)
	assert.Len(t, out.Sheets, 1)
	assert.Equal(t, out.Sheets[0], "."+out.ClassNames[0]+"{}")

	// Running twice on the same table must return the same class
	// (determinism, spec.md §8).
	again := Atomize("", table)
	assert.Equal(t, out.ClassNames, again.ClassNames)
}

// TestAtomizeDeclarations covers spec.md §8 scenario 2: two
// declarations in one block each get their own class, in source order.
func TestAtomizeDeclarations(t *testing.T) {
	table := NewHashTable()
	out := Atomize("font-size:20px;color:blue;", table)

	assert.Len(t, out.ClassNames, 2)
	assert.Len(t, out.Sheets, 2)
	assert.Contains(t, out.Sheets[0], "font-size:20px")
	assert.Contains(t, out.Sheets[1], "color:blue")
}

// TestAtomizeNestedSelector covers spec.md §8 scenario 3: a nested
// selector produces a rule whose class carries the suffix.
func TestAtomizeNestedSelector(t *testing.T) {
	table := NewHashTable()
	out := Atomize("&:hover{color:blue;}", table)

	assert.Len(t, out.Sheets, 1)
	assert.Contains(t, out.Sheets[0], ":hover{color:blue}")
}

// TestAtomizeDuplicateRuleReuse covers spec.md invariant 1: the same
// (selectorSuffix, property, value) triple always yields the same
// class name, even across independently-atomized style blocks sharing
// one HashTable — the way two sibling call sites in one module share
// state.sheets via the hoister.
func TestAtomizeDuplicateRuleReuse(t *testing.T) {
	table := NewHashTable()
	first := Atomize("font-size:12px;", table)
	second := Atomize("font-size:12px;", table)

	assert.Equal(t, first.ClassNames, second.ClassNames)
	assert.Equal(t, first.Sheets, second.Sheets)
}

// TestAtomizePreservesDuplicateProperties covers spec.md §4.3's
// ordering guarantee: two declarations for the same property in one
// source CSSOutput must both be emitted, not deduplicated away —
// `ax` resolves the conflict at runtime, not this pass.
func TestAtomizePreservesDuplicateProperties(t *testing.T) {
	table := NewHashTable()
	out := Atomize("color:red;color:blue;", table)

	assert.Len(t, out.ClassNames, 2)
	assert.NotEqual(t, out.ClassNames[0], out.ClassNames[1])
}

// TestAtomizeAtRulePassthrough covers spec.md §1's Non-goal (no full
// media/keyframes semantics) and §7's malformed-CSS policy: an at-rule
// block is passed through verbatim as its own sheet entry rather than
// atomized, and contributes no class name.
func TestAtomizeAtRulePassthrough(t *testing.T) {
	table := NewHashTable()
	out := Atomize("@media screen{color:red;}", table)

	assert.Empty(t, out.ClassNames)
	assert.Len(t, out.Sheets, 1)
	assert.Contains(t, out.Sheets[0], "@media screen")
}
