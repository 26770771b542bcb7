package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyTag covers spec.md §3's Tag rule: lowercase-leading
// names are InBuilt HTML elements, everything else is UserDefined.
func TestClassifyTag(t *testing.T) {
	assert.Equal(t, InBuilt, ClassifyTag("div").Kind)
	assert.Equal(t, UserDefined, ClassifyTag("Button").Kind)
	assert.Equal(t, UserDefined, ClassifyTag("_Weird").Kind)
}

// TestIsHTMLValidProp covers spec.md §8's "prop isolation" invariant's
// supporting predicate: data-*/aria-* prefixes are always valid, a
// made-up domain prop name is not.
func TestIsHTMLValidProp(t *testing.T) {
	assert.True(t, IsHTMLValidProp("className"))
	assert.True(t, IsHTMLValidProp("data-testid"))
	assert.True(t, IsHTMLValidProp("aria-hidden"))
	assert.False(t, IsHTMLValidProp("size"))
	assert.False(t, IsHTMLValidProp("variant"))
}
