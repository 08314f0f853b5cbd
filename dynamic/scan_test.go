package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.pyscope.dev/syntax"
)

func TestScanCallsTopLevel(t *testing.T) {
	call := callx(nm(1, "walk"), stmtOf(intLit(1)))
	got := ScanCalls(stmtOf(call), "walk")
	require.Len(t, got, 1)
	assert.Same(t, call, got[0])
}

func TestScanCallsNestedContainers(t *testing.T) {
	// [{"k": walk(1)}, (walk(2),)]
	inner1 := callx(nm(1, "walk"), stmtOf(intLit(1)))
	inner2 := callx(nm(1, "walk"), stmtOf(intLit(2)))
	stmt := stmtOf(&syntax.SeqLit{
		Kind: syntax.ListLit,
		Elems: []*syntax.Statement{
			stmtOf(&syntax.MapLit{Entries: []syntax.MapEntry{{
				Key:   stmtOf(&syntax.Literal{Raw: `"k"`, Value: "k"}),
				Value: stmtOf(inner1),
			}}}),
			stmtOf(&syntax.SeqLit{Kind: syntax.TupleLit, Elems: []*syntax.Statement{stmtOf(inner2)}}),
		},
	})

	got := ScanCalls(stmt, "walk")
	require.Len(t, got, 2)
	assert.Same(t, inner1, got[0])
	assert.Same(t, inner2, got[1])
}

func TestScanCallsNestedArguments(t *testing.T) {
	// foo(bar(baz(1))): scanning for baz must find it inside two
	// levels of argument packs.
	baz := callx(nm(1, "baz"), stmtOf(intLit(1)))
	bar := callx(nm(1, "bar"), stmtOf(baz))
	foo := callx(nm(1, "foo"), stmtOf(bar))
	stmt := stmtOf(foo)

	got := ScanCalls(stmt, "baz")
	require.Len(t, got, 1)
	assert.Same(t, baz, got[0])
}

func TestScanCallsExclusion(t *testing.T) {
	// bar(foo(1)): the bar call must never be reported for "foo".
	foo := callx(nm(1, "foo"), stmtOf(intLit(1)))
	bar := callx(nm(1, "bar"), stmtOf(foo))
	stmt := stmtOf(bar)

	got := ScanCalls(stmt, "foo")
	require.Len(t, got, 1)
	assert.Same(t, foo, got[0])

	assert.Empty(t, ScanCalls(stmt, "qux"))
}

func TestScanCallsChainReturnsHead(t *testing.T) {
	// a.b(x).c(): a match on a trailing link reports the chain head,
	// so the caller still sees the full call path.
	head := callx(nm(1, "a", "b"), stmtOf(intLit(1)))
	head.Next = callx(nm(1, "c"))

	got := ScanCalls(stmtOf(head), "c")
	require.Len(t, got, 1)
	assert.Same(t, head, got[0])
}

func TestScanStatementAssignTargets(t *testing.T) {
	target := callx(nm(1, "walk"))
	stmt := &syntax.Statement{
		Assigns: []syntax.Assign{{Op: "=", Targets: []syntax.Expr{target}}},
		Exprs:   []syntax.Expr{intLit(1)},
	}

	assert.Empty(t, ScanCalls(stmt, "walk"))
	got := scanStatement(stmt, "walk", true)
	require.Len(t, got, 1)
	assert.Same(t, target, got[0])
}

func TestScanCallsPure(t *testing.T) {
	call := callx(nm(1, "walk"))
	stmt := stmtOf(call, intLit(1))
	before := len(stmt.Exprs)
	ScanCalls(stmt, "walk")
	ScanCalls(stmt, "other")
	assert.Equal(t, before, len(stmt.Exprs))
}
