package staticcell

import (
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestMakeStatic(t *testing.T) {
	val := MakeStatic(uint32(42))
	assert.Equal(t, *val, uint32(42))
	*val = 43
	assert.Equal(t, *val, uint32(43))
}

func TestMakeStatic_DistinctSites(t *testing.T) {
	a := MakeStatic(1)
	b := MakeStatic(1)
	assert.That(t, a != b)
}

func makeCounter() *int {
	return MakeStatic(0)
}

func TestMakeStatic_SameSitePanics(t *testing.T) {
	p := makeCounter()
	assert.Equal(t, *p, 0)
	expectPanic(t, ErrAlreadyClaimed, func() { makeCounter() })
}

func TestMakeStatic_SameLineCollision(t *testing.T) {
	err := panicErr(func() {
		a, b := MakeStatic(1), MakeStatic(2)
		_, _ = a, b
	})
	assert.That(t, errors.Is(err, ErrAlreadyClaimed))
	assert.That(t, strings.Contains(err.Error(), "only one MakeStatic call is allowed per source line"))
	assert.That(t, strings.Contains(err.Error(), "make_static_test.go:"))
}

func TestMakeStatic_RerunNamesSite(t *testing.T) {
	err := panicErr(func() {
		for range 2 {
			MakeStatic("rerun")
		}
	})
	assert.That(t, errors.Is(err, ErrAlreadyClaimed))
	assert.That(t, strings.Contains(err.Error(), "already ran"))
}

func makeGeneric[T any]() *T {
	var zero T
	return MakeStatic(zero)
}

func TestMakeStatic_GenericCallerPerType(t *testing.T) {
	i := makeGeneric[int]()
	s := makeGeneric[string]()
	assert.Equal(t, *i, 0)
	assert.Equal(t, *s, "")
	expectPanic(t, ErrAlreadyClaimed, func() { makeGeneric[int]() })
}

func TestMakeStaticWith(t *testing.T) {
	buf := MakeStaticWith(func(b *[4096]byte) { b[4095] = 0xff }, Section(".ext_ram.bss.buf"))
	assert.Equal(t, buf[4095], byte(0xff))
}

func TestMakeStatic_Attrs(t *testing.T) {
	attrs := []Attr{Used(), ExportName("exported_symbol_name"), Attribute("align", "64")}
	_ = MakeStatic(uint64(0), attrs...)
	attrs[0] = Attr{Key: "mutated"}

	var found *Site
	for _, s := range Sites() {
		if strings.HasSuffix(s.File, "make_static_test.go") && s.Type == "uint64" {
			found = &s
			break
		}
	}
	assert.That(t, found != nil)
	assert.That(t, found.Claimed)
	assert.That(t, strings.HasSuffix(found.Function, "TestMakeStatic_Attrs"))
	assert.DeepEqual(t, found.Attrs, []Attr{
		{Key: "used"},
		{Key: "export_name", Value: "exported_symbol_name"},
		{Key: "align", Value: "64"},
	})
}

func TestSites_Sorted(t *testing.T) {
	_ = MakeStatic("a")
	_ = MakeStatic("b")
	sites := Sites()
	assert.That(t, len(sites) >= 2)
	for i := 1; i < len(sites); i++ {
		prev, cur := sites[i-1], sites[i]
		assert.That(t, prev.File < cur.File || (prev.File == cur.File && prev.Line <= cur.Line))
	}
}

func TestAttrString(t *testing.T) {
	assert.Equal(t, Used().String(), "used")
	assert.Equal(t, Section(".bss").String(), `link_section = ".bss"`)
	assert.Equal(t, ExportName("x").String(), `export_name = "x"`)
}
