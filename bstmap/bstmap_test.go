package bstmap

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/pair"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keysOf[K, V any](m *Map[K, V]) []K {
	var keys []K
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func intMap(t *testing.T, keys ...int) (*Map[int, int], *alloc.Counting[pair.Pair[int, int]]) {
	t.Helper()
	c := alloc.NewCounting[pair.Pair[int, int]]()
	m, err := New(Config[int, int]{
		Less:      func(a, b int) bool { return a < b },
		Allocator: c,
	})
	if err != nil {
		t.Fatalf("failed to create map: %v", err)
	}
	for _, k := range keys {
		if _, _, err = m.Insert(pair.Make(k, 10*k)); err != nil {
			t.Fatalf("failed to insert %d: %v", k, err)
		}
	}
	return m, c
}

func TestNewRequiresOrdering(t *testing.T) {
	_, err := New(Config[string, int]{})
	if !errors.Is(err, containers.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for missing Less, got %v", err)
	}
}

func TestEmptyMap(t *testing.T) {
	m := NewOrdered[string, int]()
	if !m.Empty() || m.Size() != 0 {
		t.Fatalf("new map is not empty")
	}
	if !m.Begin().Equal(m.End()) || !m.RBegin().Equal(m.REnd()) {
		t.Errorf("begin and end of an empty map should be equal")
	}
	if !m.Find("x").Equal(m.End()) || m.Count("x") != 0 {
		t.Errorf("find in empty map should return end()")
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestForestScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	m := NewOrdered[string, int]()
	for _, p := range []pair.Pair[string, int]{
		pair.Make("forest", 1), pair.Make("sea", 42), pair.Make("sky", 26), pair.Make("mountains", 4),
	} {
		if _, inserted, err := m.Insert(p); err != nil || !inserted {
			t.Fatalf("insert of %v failed: inserted=%v, err=%v", p, inserted, err)
		}
	}
	v, err := m.Ref("river")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	*v = 101
	if m.Size() != 5 {
		t.Errorf("expected size 5, have %d", m.Size())
	}
	want := []string{"forest", "mountains", "river", "sea", "sky"}
	if keys := keysOf(m); !slices.Equal(keys, want) {
		t.Errorf("expected keys %v, have %v", want, keys)
	}
	if x, err := m.At("river"); err != nil || *x != 101 {
		t.Errorf("expected river -> 101, have %v, %v", x, err)
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertKeepsExistingEntry(t *testing.T) {
	m, _ := intMap(t, 5, 3, 8)
	it, inserted, err := m.Insert(pair.Make(3, 999))
	if err != nil || inserted {
		t.Fatalf("duplicate insert must not insert, inserted=%v err=%v", inserted, err)
	}
	if it.Key() != 3 || *it.Mapped() != 30 {
		t.Errorf("expected iterator to existing entry (3, 30), have %v", it.Value())
	}
	if m.Size() != 3 {
		t.Errorf("expected size 3, have %d", m.Size())
	}
	it, err = m.InsertHint(m.End(), pair.Make(4, 40))
	if err != nil || it.Key() != 4 || m.Size() != 4 {
		t.Errorf("hinted insert failed: %v", err)
	}
	*m.Find(8).Mapped() = 88
	if x, _ := m.At(8); *x != 88 {
		t.Errorf("update through iterator did not stick")
	}
}

func TestAtAndRef(t *testing.T) {
	m, _ := intMap(t, 1, 2)
	if _, err := m.At(7); !errors.Is(err, containers.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if m.Size() != 2 {
		t.Errorf("At must not insert")
	}
	v, err := m.Ref(7)
	if err != nil || *v != 0 || m.Size() != 3 {
		t.Errorf("Ref should insert a zero value, got %v, size=%d, err=%v", v, m.Size(), err)
	}
	v, _ = m.Ref(2)
	if *v != 20 || m.Size() != 3 {
		t.Errorf("Ref should find existing entry, got %d", *v)
	}
}

func TestEraseCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	//              50
	//         /          \
	//       30            70
	//      /  \         /   \
	//    20    40      60     90
	//   /        \      \   /
	//  10        45     65 85
	//    \
	//     15
	keys := []int{50, 30, 70, 20, 40, 60, 90, 10, 45, 65, 85, 15}
	for _, tc := range []struct {
		name  string
		erase int
	}{
		{"leaf", 45},
		{"leaf holding end", 90},
		{"leaf holding rend", 10},
		{"one child, holding rend", 10},
		{"one child", 60},
		{"one child, holding end", 90},
		{"two children, successor is right child", 30},
		{"two children, deep successor", 50},
		{"two children, deep successor without children", 70},
	} {
		m, c := intMap(t, keys...)
		switch tc.name {
		case "leaf holding end":
			m.EraseKey(85)
		case "leaf holding rend":
			m.EraseKey(15)
		}
		expected := slices.DeleteFunc(keysOf(m), func(k int) bool { return k == tc.erase })
		next := m.Erase(m.Find(tc.erase))
		if err := m.Check(); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := keysOf(m); !slices.Equal(got, expected) {
			t.Errorf("%s: expected %v, have %v", tc.name, expected, got)
		}
		if i := slices.IndexFunc(expected, func(k int) bool { return k > tc.erase }); i >= 0 {
			if next.Key() != expected[i] {
				t.Errorf("%s: erase returned %d, expected %d", tc.name, next.Key(), expected[i])
			}
		} else if !next.Equal(m.End()) {
			t.Errorf("%s: erase of the maximum should return end()", tc.name)
		}
		if c.Live() != m.Size() || c.Buffers() != m.Size() {
			t.Errorf("%s: leak, live=%d buffers=%d size=%d", tc.name, c.Live(), c.Buffers(), m.Size())
		}
	}
}

func TestEraseToEmptyAndReuse(t *testing.T) {
	m, c := intMap(t, 2, 1, 3)
	if n := m.EraseKey(42); n != 0 {
		t.Errorf("erasing a missing key should return 0, returned %d", n)
	}
	for _, k := range []int{2, 3, 1} {
		if n := m.EraseKey(k); n != 1 {
			t.Fatalf("erase of %d returned %d", k, n)
		}
		if err := m.Check(); err != nil {
			t.Fatalf("after erasing %d: %v", k, err)
		}
	}
	if !m.Empty() || !m.Begin().Equal(m.End()) {
		t.Fatalf("map should be empty")
	}
	if c.Live() != 0 || c.Buffers() != 0 {
		t.Errorf("leak after erasing everything: live=%d buffers=%d", c.Live(), c.Buffers())
	}
	m.Insert(pair.Make(7, 70))
	if err := m.Check(); err != nil {
		t.Error(err)
	}
	if m.Begin().Key() != 7 || m.RBegin().Value().First != 7 {
		t.Errorf("single entry should be first and last")
	}
}

func TestEraseRangeAndClear(t *testing.T) {
	m, c := intMap(t, 5, 2, 8, 1, 3, 7, 9)
	last := m.EraseRange(m.Find(2), m.Find(7))
	if last.Key() != 7 {
		t.Errorf("erase range should return last")
	}
	if want := []int{1, 7, 8, 9}; !slices.Equal(keysOf(m), want) {
		t.Errorf("expected %v, have %v", want, keysOf(m))
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
	m.Clear()
	if !m.Empty() || c.Live() != 0 || c.Buffers() != 0 {
		t.Errorf("clear leaked: size=%d live=%d buffers=%d", m.Size(), c.Live(), c.Buffers())
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestSentinelWiring(t *testing.T) {
	m, _ := intMap(t, 4, 2, 6, 1, 3, 5, 7)
	if m.End().Prev().Key() != 7 {
		t.Errorf("predecessor of end should be the maximum")
	}
	if !m.Begin().Prev().Equal(Iterator[int, int]{n: m.rend}) {
		t.Errorf("predecessor of begin should be rend")
	}
	if !m.Begin().Prev().Next().Equal(m.Begin()) {
		t.Errorf("successor of rend should be begin")
	}
	if !m.REnd().Base().Equal(m.Begin()) || !m.RBegin().Base().Equal(m.End()) {
		t.Errorf("reverse iterators should wrap begin and end")
	}
	var back []int
	for k := range m.Backward() {
		back = append(back, k)
	}
	if want := []int{7, 6, 5, 4, 3, 2, 1}; !slices.Equal(back, want) {
		t.Errorf("expected %v, have %v", want, back)
	}
}

func TestBounds(t *testing.T) {
	m, _ := intMap(t, 20, 10, 30)
	for _, tc := range []struct {
		k, lower, upper int // 0 means end()
	}{
		{5, 10, 10},
		{10, 10, 20},
		{20, 20, 30},
		{25, 30, 30},
		{30, 30, 0},
		{35, 0, 0},
	} {
		check := func(what string, it Iterator[int, int], want int) {
			if want == 0 {
				if !it.Equal(m.End()) {
					t.Errorf("%s(%d): expected end(), have %d", what, tc.k, it.Key())
				}
			} else if it.Equal(m.End()) || it.Key() != want {
				t.Errorf("%s(%d): expected %d", what, tc.k, want)
			}
		}
		check("LowerBound", m.LowerBound(tc.k), tc.lower)
		check("UpperBound", m.UpperBound(tc.k), tc.upper)
		lo, hi := m.EqualRange(tc.k)
		check("EqualRange.first", lo, tc.lower)
		check("EqualRange.second", hi, tc.upper)
	}
	if m.Count(20) != 1 || m.Count(21) != 0 {
		t.Errorf("count is wrong")
	}
}

func TestCloneIsDeepAndSameShape(t *testing.T) {
	m, c := intMap(t, 5, 2, 8, 1, 3, 9)
	clone, err := m.Clone()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = clone.Check(); err != nil {
		t.Fatal(err)
	}
	var d1, d2 bytes.Buffer
	Dump(m, &d1, &DumpConfig{})
	Dump(clone, &d2, &DumpConfig{})
	if d1.String() != d2.String() {
		t.Errorf("clone has a different shape:\n%s\nvs.\n%s", d1.String(), d2.String())
	}
	clone.EraseKey(5)
	*clone.Find(2).Mapped() = -1
	if m.Size() != 6 || *m.Find(2).Mapped() != 20 {
		t.Errorf("original changed by mutating the clone")
	}
	if !Equal(m, m) || Equal(m, clone) {
		t.Errorf("equality is broken")
	}
	clone.Clear()
	m.Clear()
	if c.Live() != 0 || c.Buffers() != 0 {
		t.Errorf("leak: live=%d buffers=%d", c.Live(), c.Buffers())
	}
}

func TestCopyFrom(t *testing.T) {
	a, _ := intMap(t, 1, 2, 3)
	b, c := intMap(t, 9)
	if err := b.CopyFrom(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(a, b) || b.Allocator() != alloc.Allocator[pair.Pair[int, int]](c) {
		t.Errorf("assignment failed: %v", keysOf(b))
	}
	if c.Live() != 3 {
		t.Errorf("old entries of b not destroyed, live=%d", c.Live())
	}
	if err := b.CopyFrom(b); err != nil || b.Size() != 3 {
		t.Errorf("self-assignment must be a no-op")
	}
	if err := b.Check(); err != nil {
		t.Error(err)
	}
}

func TestFailedInsertLeavesMapUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	m, c := intMap(t, 4, 2, 6)
	c.FailAfter = c.Constructed()
	if _, _, err := m.Insert(pair.Make(5, 50)); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if m.Size() != 3 || c.Live() != 3 || c.Buffers() != 3 {
		t.Errorf("failed insert leaked: size=%d live=%d buffers=%d", m.Size(), c.Live(), c.Buffers())
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
	c.Reset()
	c.FailAfter = 2
	if _, err := m.Clone(); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation from clone, got %v", err)
	}
	if c.Live() != 3 || c.Buffers() != 3 {
		t.Errorf("failed clone leaked: live=%d buffers=%d", c.Live(), c.Buffers())
	}
	c.Reset()
	c.Limit = 3
	if _, _, err := m.Insert(pair.Make(9, 90)); !errors.Is(err, containers.ErrLengthExceeded) {
		t.Errorf("expected ErrLengthExceeded, got %v", err)
	}
}

func TestSwapKeepsIterators(t *testing.T) {
	a, _ := intMap(t, 1, 2)
	b, _ := intMap(t, 7)
	it := a.Find(2)
	a.Swap(b)
	if a.Size() != 1 || b.Size() != 2 {
		t.Fatalf("swap did not exchange sizes")
	}
	if !it.Equal(b.Find(2)) || !it.Next().Equal(b.End()) {
		t.Errorf("iterator should refer to b after swap")
	}
	if err := a.Check(); err != nil {
		t.Error(err)
	}
	if err := b.Check(); err != nil {
		t.Error(err)
	}
}

func TestComparisonOperators(t *testing.T) {
	a, _ := intMap(t, 1, 2, 4)
	b, _ := intMap(t, 1, 2, 4)
	if !Equal(a, b) || Less(a, b) || Greater(a, b) || !LessOrEqual(a, b) || !GreaterOrEqual(a, b) {
		t.Errorf("equal maps do not compare equal")
	}
	b.Insert(pair.Make(24, 0))
	if Equal(a, b) || !Less(a, b) || !Greater(b, a) || Compare(a, b) != -1 {
		t.Errorf("expected a < b")
	}
	*b.Find(2).Mapped() = 21
	b.EraseKey(24)
	if !Less(a, b) || Compare(b, a) != 1 {
		t.Errorf("mapped values should take part in the comparison")
	}
	if !EqualFunc(a, b, func(x, y pair.Pair[int, int]) bool { return x.First == y.First }) {
		t.Errorf("EqualFunc should use the provided predicate")
	}
}

func TestRangeConstruction(t *testing.T) {
	src, _ := intMap(t, 3, 1, 2)
	m, err := NewRange(src.Begin(), src.End(), Config[int, int]{Less: src.KeyComp()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(src, m) {
		t.Errorf("expected %v, have %v", keysOf(src), keysOf(m))
	}
	desc, err := NewRange(src.RBegin(), src.REnd(), Config[int, int]{
		Less: func(a, b int) bool { return a > b },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{3, 2, 1}; !slices.Equal(keysOf(desc), want) {
		t.Errorf("expected %v, have %v", want, keysOf(desc))
	}
	if !m.ValueComp()(pair.Make(1, 100), pair.Make(2, 0)) {
		t.Errorf("value comparison should only look at keys")
	}
}

func TestDump(t *testing.T) {
	m := NewOrdered[int, string]()
	for _, p := range []pair.Pair[int, string]{pair.Make(2, "b"), pair.Make(1, "a"), pair.Make(3, "c")} {
		m.Insert(p)
	}
	var out bytes.Buffer
	Dump(m, &out, &DumpConfig{})
	want := "        [end]\n" +
		"    (3, c)\n" +
		"(2, b)\n" +
		"    (1, a)\n" +
		"        [rend]\n"
	if out.String() != want {
		t.Errorf("unexpected dump:\n%s", out.String())
	}
	f := NewOrdered[string, int]()
	f.Insert(pair.Make("forest", 1))
	out.Reset()
	Dump(f, &out, &DumpConfig{Width: 8})
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if want := []string{"    [en…", "(forest…", "    [re…"}; !slices.Equal(lines, want) {
		t.Errorf("expected truncated lines %q, have %q", want, lines)
	}
}

func TestDumpMeasuresWideCharacters(t *testing.T) {
	m := NewOrdered[string, int]()
	m.Insert(pair.Make("日本語のキー", 1))
	var out bytes.Buffer
	config := &DumpConfig{Width: 8, Context: uax11.LatinContext}
	Dump(m, &out, config)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if want := []string{"    [en…", "(日本語…", "    [re…"}; !slices.Equal(lines, want) {
		t.Errorf("expected truncated lines %q, have %q", want, lines)
	}
	for _, line := range lines {
		if w := uax11.StringWidth(grapheme.StringFromString(line), config.Context); w > config.Width {
			t.Errorf("line %q is %d positions wide, limit is %d", line, w, config.Width)
		}
	}
}

func TestDumpLeavesPaletteAlone(t *testing.T) {
	entry, sentinel := EntryColor, SentinelColor
	defer func() { EntryColor, SentinelColor = entry, sentinel }()
	EntryColor, SentinelColor = color.New(color.FgBlue), color.New(color.FgRed)
	EntryColor.DisableColor()
	SentinelColor.DisableColor()
	//
	m := NewOrdered[int, string]()
	m.Insert(pair.Make(1, "a"))
	var out bytes.Buffer
	Dump(m, &out, &DumpConfig{Colors: true})
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected colorized dump, have %q", out.String())
	}
	if s := EntryColor.Sprint("x") + SentinelColor.Sprint("y"); s != "xy" {
		t.Errorf("dump re-enabled the palette, colors print %q", s)
	}
}

func TestMap2Dot(t *testing.T) {
	m := NewOrdered[int, string]()
	var out bytes.Buffer
	Map2Dot(m, &out)
	if s := out.String(); strings.Count(s, "->") != 1 || !strings.Contains(s, `label="rend"`) {
		t.Errorf("unexpected DOT for empty map:\n%s", s)
	}
	for _, p := range []pair.Pair[int, string]{pair.Make(2, "b"), pair.Make(1, "a"), pair.Make(3, "c")} {
		m.Insert(p)
	}
	out.Reset()
	Map2Dot(m, &out)
	s := out.String()
	if !strings.HasPrefix(s, "strict digraph {") || !strings.Contains(s, `label="end"`) {
		t.Errorf("DOT output is missing header or sentinels:\n%s", s)
	}
	if n := strings.Count(s, "->"); n != 6 {
		t.Errorf("expected 6 edges, have %d:\n%s", n, s)
	}
}
