package csstext

import (
	"encoding/base32"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashEncoding renders a hash sum as a short, CSS-identifier-safe,
// lowercase string. Adapted from the teacher's internal/hash.go
// (HashFromSource: xxhash + base32, truncated to a fixed width) but
// truncation width grows on collision instead of being fixed at 8,
// satisfying spec.md §4.3 step 2 ("collisions... resolved by extending
// the encoding").
func hashEncoding(seed string, width int) string {
	h := xxhash.Sum64String(seed)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (56 - 8*i))
	}
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf[:])
	lower := []byte(encoded)
	for i, c := range lower {
		if c >= 'A' && c <= 'Z' {
			lower[i] = c - 'A' + 'a'
		}
	}
	if width > len(lower) {
		width = len(lower)
	}
	return string(lower[:width])
}

// propertyGroupPrefix is a short, stable digest of just the property
// name. The runtime helper `ax` (spec.md §6) resolves "last one wins"
// conflicts between classes by comparing this prefix, so two atomic
// rules for the same property always collide on it regardless of
// value or selector (spec.md §4.3's "annotate each class name with its
// property bucket").
func propertyGroupPrefix(property string) string {
	return hashEncoding("prop:"+property, 4)
}

// HashTable assigns content-addressed class names for the lifetime of
// one module compile and extends the hash width on collision, the same
// write-once-per-key discipline the teacher's module-scoped `sheets`
// map uses (spec.md §5).
type HashTable struct {
	byContent map[string]string // contentKey -> className
	byName    map[string]string // className -> contentKey
}

func NewHashTable() *HashTable {
	return &HashTable{
		byContent: make(map[string]string),
		byName:    make(map[string]string),
	}
}

// ClassNameFor returns the stable class name for (selectorSuffix,
// property, value), satisfying invariant 1 (same triple -> same name)
// and resolving collisions by growing the value digest until the name
// is unique for a different triple.
func (t *HashTable) ClassNameFor(selectorSuffix, property, value string) string {
	contentKey := selectorSuffix + "\x00" + property + "\x00" + value
	if name, ok := t.byContent[contentKey]; ok {
		return name
	}

	prefix := propertyGroupPrefix(property)
	width := 6
	for {
		name := fmt.Sprintf("_%s%s", prefix, hashEncoding(contentKey, width))
		if existing, taken := t.byName[name]; !taken || existing == contentKey {
			t.byContent[contentKey] = name
			t.byName[name] = contentKey
			return name
		}
		width++
	}
}
