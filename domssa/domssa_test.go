package domssa

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/ssa"

	ssainfo "github.com/nickng/domtree/ssa"
	"github.com/nickng/domtree/ssa/build"
)

func buildMain(t *testing.T, src string) *ssa.Function {
	t.Helper()
	info, err := build.FromReader(strings.NewReader(src)).Default().Build()
	if err != nil {
		t.Fatalf("cannot build SSA: %v", err)
	}
	mains, err := ssainfo.MainPkgs(info.Prog, false)
	if err != nil {
		t.Fatalf("cannot find main package: %v", err)
	}
	if len(mains) == 0 {
		t.Fatal("no main package found")
	}
	fn := mains[0].Func("main")
	if fn == nil {
		t.Fatal("no main.main function found")
	}
	return fn
}

func TestBuildDiamond(t *testing.T) {
	src := `package main
	func cond() bool { return true }
	func main() {
		if cond() {
			println("a")
		} else {
			println("b")
		}
		println("done")
	}`
	fn := buildMain(t, src)
	info, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	entry := fn.Blocks[0]
	last := fn.Blocks[len(fn.Blocks)-1]
	dominates, err := info.Dominates(entry, last)
	if err != nil {
		t.Fatalf("Dominates: %v", err)
	}
	if !dominates {
		t.Error("entry block does not dominate the final block")
	}
}

func TestBuildLoop(t *testing.T) {
	src := `package main
	func main() {
		for i := 0; i < 10; i++ {
			println(i)
		}
	}`
	fn := buildMain(t, src)
	info, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tree := info.Tree()
	entry := fn.Blocks[0]
	if len(tree[entry]) == 0 {
		t.Error("entry block has no dominated children")
	}
	for _, b := range fn.Blocks {
		dominates, err := info.Dominates(entry, b)
		if err != nil {
			t.Fatalf("Dominates: %v", err)
		}
		if !dominates {
			t.Errorf("entry does not dominate block %v", b)
		}
	}
}

func TestBuildEmptyBody(t *testing.T) {
	// main.main is never external, so it always has at least one block
	// (the implicit return); ErrNoBlocks only fires for external
	// functions, which this test can't easily construct standalone.
	fn := buildMain(t, `package main
	func main() {}`)
	if _, err := Build(fn); err != nil {
		t.Fatalf("Build(main) with trivial body: %v", err)
	}
}

func TestWriteDot(t *testing.T) {
	src := `package main
	func cond() bool { return true }
	func main() {
		if cond() {
			println("a")
		}
		println("done")
	}`
	fn := buildMain(t, src)
	info, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf strings.Builder
	if err := info.WriteDot(&buf); err != nil {
		t.Fatalf("WriteDot: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "digraph domtree {") {
		t.Errorf("WriteDot output missing expected header: %q", buf.String())
	}
}
