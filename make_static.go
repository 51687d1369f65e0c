package staticcell

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strconv"

	"github.com/llxisdsh/pb"
)

// Attr is a declaration attribute attached to a MakeStatic site, such as a
// linker section or an export name. Attributes are recorded verbatim and
// never interpreted; Sites reports them back.
type Attr struct {
	Key   string
	Value string
}

// Attribute returns an arbitrary attribute.
func Attribute(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Section names the section the storage is meant for.
func Section(name string) Attr {
	return Attr{Key: "link_section", Value: name}
}

// Used marks the storage as retained by the linker.
func Used() Attr {
	return Attr{Key: "used"}
}

// ExportName overrides the symbol name of the storage.
func ExportName(name string) Attr {
	return Attr{Key: "export_name", Value: name}
}

func (a Attr) String() string {
	if a.Value == "" {
		return a.Key
	}
	return a.Key + " = " + strconv.Quote(a.Value)
}

// Site describes one MakeStatic call site.
type Site struct {
	File     string
	Line     int
	Function string
	Type     string
	Attrs    []Attr
	Claimed  bool
}

type siteKey struct {
	file string
	line int
	typ  reflect.Type
}

type site struct {
	fn    string
	attrs []Attr
	cell  interface{ IsClaimed() bool }
}

// sites maps every MakeStatic call site to the cell declared for it.
var sites pb.MapOf[siteKey, *site]

// MakeStatic converts v into a long-lived *T.
//
// Each call site declares its own process-wide LateCell[T] the first time it
// runs and claims it with v. Running the same site again panics with
// ErrAlreadyClaimed. attrs are recorded on the declaration as given.
//
// Sites are identified by file and line, so at most one MakeStatic call may
// appear on a source line. A generic caller declares one cell per T.
//
//	cfg := staticcell.MakeStatic(Config{Baud: 115200}, staticcell.Section(".ext_ram.bss"))
func MakeStatic[T any](v T, attrs ...Attr) *T {
	m := declare[T](attrs)
	return m.Write(v)
}

// MakeStaticWith is like MakeStatic but builds the value in place.
func MakeStaticWith[T any](build func(*T), attrs ...Attr) *T {
	m := declare[T](attrs)
	return m.WriteWith(build)
}

// declare finds or creates the cell of the calling site and claims it.
func declare[T any](attrs []Attr) *MaybeUninit[T] {
	// Skip runtime.Callers, declare and MakeStatic/MakeStaticWith. A few
	// extra pcs let CallersFrames expand inlined callers correctly.
	var pcs [4]uintptr
	n := runtime.Callers(3, pcs[:])
	frame, _ := runtime.CallersFrames(pcs[:n]).Next()

	key := siteKey{file: frame.File, line: frame.Line, typ: reflect.TypeFor[T]()}
	s, _ := sites.ProcessEntry(
		key,
		func(e *pb.EntryOf[siteKey, *site]) (*pb.EntryOf[siteKey, *site], *site, bool) {
			if e != nil {
				return e, e.Value, true
			}
			ns := &site{
				fn:    frame.Function,
				attrs: slices.Clone(attrs),
				cell:  NewLateCell[T](),
			}
			return &pb.EntryOf[siteKey, *site]{Key: key, Value: ns}, ns, false
		},
	)
	m, ok := s.cell.(*LateCell[T]).TryUninit()
	if !ok {
		fatal[T](lateCellName, "MakeStatic", stateClaimed, fmt.Errorf(
			"%w: site %s:%d already ran; only one MakeStatic call is allowed per source line",
			ErrAlreadyClaimed, key.file, key.line))
	}
	return m
}

// Sites returns a snapshot of every MakeStatic site declared so far, ordered
// by file and line.
func Sites() []Site {
	var out []Site
	sites.Range(func(k siteKey, s *site) bool {
		out = append(out, Site{
			File:     k.file,
			Line:     k.line,
			Function: s.fn,
			Type:     k.typ.String(),
			Attrs:    slices.Clone(s.attrs),
			Claimed:  s.cell.IsClaimed(),
		})
		return true
	})
	slices.SortFunc(out, func(a, b Site) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Type, b.Type),
		)
	})
	return out
}
