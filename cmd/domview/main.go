// Command domview prints the dominator tree of a function's control-flow
// graph, built from Go source files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/tools/go/ssa"

	"github.com/nickng/domtree/domssa"
	"github.com/nickng/domtree/ssa/build"
)

const (
	Usage = `domview is a tool for printing the dominator tree of Go source code.

Usage:

  domview [options] file.go [files.go...]

Options:

`
)

var (
	buildlogPath string
	defaultArgs  bool
	outPath      string
	viewFunc     string
	dotFormat    bool

	out io.Writer
)

const mainMain = "main.main"

func init() {
	flag.BoolVar(&defaultArgs, "default", true, "Use default SSA build arguments")
	flag.StringVar(&buildlogPath, "log", "", "Specify build log file (use '-' for stdout)")
	flag.StringVar(&outPath, "out", "", "Specify output file (default: stdout)")
	flag.StringVar(&viewFunc, "func", mainMain, `Specify the function to view (format: (import/path).FuncName`)
	flag.BoolVar(&dotFormat, "dot", false, "Print the dominator tree in Graphviz .dot format")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, Usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	conf := build.FromFiles(flag.Args())
	if defaultArgs {
		conf = conf.Default()
	}

	switch buildlogPath {
	case "":
	case "-":
		conf = conf.WithBuildLog(os.Stdout, log.LstdFlags)
	default:
		f, err := os.Create(buildlogPath)
		if err != nil {
			log.Fatalf("Cannot create log %s: %v", buildlogPath, err)
		}
		defer f.Close()
		conf = conf.WithBuildLog(f, log.LstdFlags)
	}

	switch outPath {
	case "":
		out = os.Stdout
	default:
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Cannot create output file %s: %v", outPath, err)
		}
		defer f.Close()
		out = f
	}

	info, err := conf.Build()
	if err != nil {
		log.Fatal("Cannot build SSA from files:", err)
	}
	fn, err := info.FindFunc(viewFunc)
	if err != nil {
		log.Fatal("Cannot find function:", err)
	}
	if fn == nil {
		log.Fatalf("Function %s not found", viewFunc)
	}

	dom, err := domssa.Build(fn)
	if err != nil {
		log.Fatal("Cannot build dominator tree:", err)
	}
	if dotFormat {
		if err := dom.WriteDot(out); err != nil {
			log.Fatal("Cannot write dominator tree:", err)
		}
		return
	}
	printTree(out, dom.Tree(), fn.Blocks[0], 0)
}

// printTree prints the dominator tree rooted at b as indented text.
func printTree(w io.Writer, tree map[*ssa.BasicBlock][]*ssa.BasicBlock, b *ssa.BasicBlock, depth int) {
	fmt.Fprintf(w, "%*s%s\n", depth*2, "", b)
	for _, child := range tree[b] {
		printTree(w, tree, child, depth+1)
	}
}
