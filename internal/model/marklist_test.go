package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "/a\n", []string{"/a"}},
		{"missing final newline", "/a\n/b", []string{"/a", "/b"}},
		{"crlf", "/a\r\n/b\r\n", []string{"/a", "/b"}},
		{"blank lines skipped", "/a\n\n/b\n\n", []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Parse(tt.text)
			assert.Equal(t, len(tt.want), m.Len())
			if tt.want == nil {
				assert.Empty(t, m.Lines())
			} else {
				assert.Equal(t, tt.want, m.Lines())
			}
		})
	}
}

func TestGet(t *testing.T) {
	m := Parse("/a\n/b\n/c\n")

	_, ok := m.Get(0)
	assert.False(t, ok, "index 0 is never valid")

	p, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "/a", p)

	p, ok = m.Get(3)
	require.True(t, ok)
	assert.Equal(t, "/c", p)

	_, ok = m.Get(4)
	assert.False(t, ok)

	_, ok = m.Get(-1)
	assert.False(t, ok)
}

func TestContainsAndIndexOf(t *testing.T) {
	m := Parse("/a\n/b\n")

	assert.True(t, m.Contains("/a"))
	assert.True(t, m.Contains("/b\n"))
	assert.False(t, m.Contains("/c"))
	assert.False(t, m.Contains("/a/b"))

	i, ok := m.IndexOf("/b")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = m.IndexOf("/nope")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	m := Parse("/a\n/b\n/c\n")

	var idx []int
	var paths []string
	for i, p := range m.All() {
		idx = append(idx, i)
		paths = append(paths, p)
	}
	assert.Equal(t, []int{1, 2, 3}, idx)
	assert.Equal(t, []string{"/a", "/b", "/c"}, paths)

	// Early break stops iteration.
	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWithout(t *testing.T) {
	m := Parse("/a\n/b\n/c\n")

	for i, want := range map[int][]string{
		1: {"/b", "/c"},
		2: {"/a", "/c"},
		3: {"/a", "/b"},
	} {
		assert.Equal(t, want, m.Without(i), "index %d", i)
	}

	// Out of range leaves everything.
	assert.Equal(t, []string{"/a", "/b", "/c"}, m.Without(0))
	assert.Equal(t, []string{"/a", "/b", "/c"}, m.Without(4))

	// Receiver untouched.
	assert.Equal(t, 3, m.Len())
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "/a\n/c\n", Encode([]string{"/a", "/c"}))

	m := Parse(Encode([]string{"/x", "/y"}))
	assert.Equal(t, []string{"/x", "/y"}, m.Lines())
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("/home/me"))
	assert.Error(t, ValidatePath(""))
	assert.Error(t, ValidatePath("   "))
	assert.Error(t, ValidatePath("/a\n/b"))
	assert.Error(t, ValidatePath("relative/dir"))
}

func TestNormalize(t *testing.T) {
	lines, err := Normalize("  /a  \n\n/b\n/a\n/c\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b", "/c"}, lines)

	lines, err = Normalize("\n\n")
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = Normalize("/a\nnot/absolute\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
