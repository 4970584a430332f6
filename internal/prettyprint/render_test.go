package prettyprint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "String", "[STR]  :  'String'"},
		{"int", 25, "[INT]  :  25"},
		{"uint", uint8(7), "[INT]  :  7"},
		{"float", 1.5, "[FLOAT]  :  1.5"},
		{"bool", true, "[BOOL]  :  true"},
		{"nil", nil, "[NONE]  :  nil"},
		{"nil pointer", (*int)(nil), "[NONE]  :  nil"},
		{"pointer deref", ptr(3), "[INT]  :  3"},
		{"complex", complex(1, 2), "[COMPLEX]  :  (1+2i)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, []string{tt.want}, Render(tt.in))
		})
	}
}

func TestRender_List(t *testing.T) {
	t.Parallel()

	got := Render([]any{"String", 25, true, nil})
	assert.Equal(t, []string{
		"[LIST] (4/1) > [STR]  :  'String'",
		"[LIST] (4/2) > [INT]  :  25",
		"[LIST] (4/3) > [BOOL]  :  true",
		"[LIST] (4/4) > [NONE]  :  nil",
	}, got)
}

func TestRender_DictSortedAndNested(t *testing.T) {
	t.Parallel()

	got := Render(map[string]any{
		"b": []int{1, 2},
		"a": "x",
	})
	assert.Equal(t, []string{
		"[DICT] (2/1) > {a} [STR]  :  'x'",
		"[DICT] (2/2) > {b} [LIST] (2/1) > [INT]  :  1",
		"[DICT] (2/2) > {b} [LIST] (2/2) > [INT]  :  2",
	}, got)
}

func TestRender_EmptyContainers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"[LIST]  :  []"}, Render([]string{}))
	assert.Equal(t, []string{"[LIST]  :  []"}, Render([]string(nil)))
	assert.Equal(t, []string{"[DICT]  :  {}"}, Render(map[string]int{}))
	assert.Equal(t, []string{"[ARRAY]  :  []"}, Render([0]int{}))
}

func TestRender_ArrayAndStruct(t *testing.T) {
	t.Parallel()

	type point struct {
		X, Y   int
		hidden string
	}
	assert.Equal(t, []string{
		"[ARRAY] (2/1) > [INT]  :  1",
		"[ARRAY] (2/2) > [INT]  :  2",
	}, Render([2]int{1, 2}))

	assert.Equal(t, []string{
		"[STRUCT] (2/1) > {X} [INT]  :  1",
		"[STRUCT] (2/2) > {Y} [INT]  :  2",
	}, Render(point{X: 1, Y: 2, hidden: "x"}))
}

func TestRender_Stringer(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Render(ts)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "[STRUCT]  :  '2024-01-02"))
}

func TestRender_PointerCycle(t *testing.T) {
	t.Parallel()

	type node struct{ Next *node }
	n := &node{}
	n.Next = n

	got := Render(n)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "[STRUCT] (1/1) > {Next} [CYCLE]"), got[0])
}

func TestRender_ContainerWithSeveralBackReferences(t *testing.T) {
	t.Parallel()

	m := map[string]any{}
	m["a"] = m
	m["b"] = m
	m["c"] = 1

	assert.Equal(t, []string{
		"[DICT] (3/1) > {a} [CYCLE]  :  map[string]interface {}",
		"[DICT] (3/2) > {b} [CYCLE]  :  map[string]interface {}",
		"[DICT] (3/3) > {c} [INT]  :  1",
	}, Render(m))

	l := make([]any, 2)
	l[0] = l
	l[1] = l
	got := Render(l)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], TagCycle)
	assert.Contains(t, got[1], TagCycle)
}

func TestRender_SharedReferenceIsNotACycle(t *testing.T) {
	t.Parallel()

	shared := []int{7}
	got := Render(map[string]any{"x": shared, "y": shared})
	assert.Equal(t, []string{
		"[DICT] (2/1) > {x} [LIST] (1/1) > [INT]  :  7",
		"[DICT] (2/2) > {y} [LIST] (1/1) > [INT]  :  7",
	}, got)
}

func TestRender_MaxDepth(t *testing.T) {
	t.Parallel()

	var v any = "leaf"
	for i := 0; i <= MaxDepth; i++ {
		v = []any{v}
	}
	got := Render(v)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "max depth reached")
}

func ptr[T any](v T) *T { return &v }
