package templates

import (
	"strings"

	"github.com/valyala/quicktemplate"
)

// CombinatorsGen renders the cells package's arity combinator file for the
// given maximum number of typed dependencies.
func CombinatorsGen(maxArity int) string {
	sb := &strings.Builder{}
	qw := quicktemplate.AcquireWriter(sb)
	defer quicktemplate.ReleaseWriter(qw)
	w := qw.N()

	w.S("// Code generated by cellgraph codegen; DO NOT EDIT.\n")
	w.S("\n")
	w.S("package cells\n")
	w.S("\n")
	w.S("// Arity-typed sugar over NewComputed and NewEffect for fixed dependency\n")
	w.S("// lists. The derive and effect bodies receive the settled values of their\n")
	w.S("// sources; a failing source short-circuits and the error surfaces through\n")
	w.S("// the node's own read.\n")

	for n := 1; n <= maxArity; n++ {
		writeComputed(w, n)
	}
	for n := 1; n <= maxArity; n++ {
		writeEffect(w, n)
	}

	return sb.String()
}

func writeComputed(w *quicktemplate.QWriter, n int) {
	w.S("\nfunc Computed")
	w.D(n)
	w.S("[")
	w.S(numberedList("T", n))
	w.S(", O any](\n")
	w.S("\trs *ReactiveSystem,\n")
	for i := 0; i < n; i++ {
		w.S("\td")
		w.D(i)
		w.S(" Readable[T")
		w.D(i)
		w.S("],\n")
	}
	w.S("\tfn func(")
	w.S(numberedList("T", n))
	w.S(") (O, error),\n")
	w.S(") *Computed[O] {\n")
	w.S("\treturn NewComputed(rs, func(oldValue O) (O, error) {\n")
	writeReads(w, n, "oldValue")
	w.S("\t\treturn fn(")
	w.S(numberedList("v", n))
	w.S(")\n")
	w.S("\t})\n")
	w.S("}\n")
}

func writeEffect(w *quicktemplate.QWriter, n int) {
	w.S("\nfunc Effect")
	w.D(n)
	w.S("[")
	w.S(numberedList("T", n))
	w.S(" any](\n")
	w.S("\trs *ReactiveSystem,\n")
	for i := 0; i < n; i++ {
		w.S("\td")
		w.D(i)
		w.S(" Readable[T")
		w.D(i)
		w.S("],\n")
	}
	w.S("\tfn func(")
	w.S(numberedList("T", n))
	w.S(") (CleanupFunc, error),\n")
	w.S(") (*Effect, error) {\n")
	w.S("\treturn NewEffect(rs, func() (CleanupFunc, error) {\n")
	writeReads(w, n, "nil")
	w.S("\t\treturn fn(")
	w.S(numberedList("v", n))
	w.S(")\n")
	w.S("\t})\n")
	w.S("}\n")
}

func writeReads(w *quicktemplate.QWriter, n int, onErr string) {
	for i := 0; i < n; i++ {
		w.S("\t\tv")
		w.D(i)
		w.S(", err := d")
		w.D(i)
		w.S(".read()\n")
		w.S("\t\tif err != nil {\n")
		w.S("\t\t\treturn ")
		w.S(onErr)
		w.S(", err\n")
		w.S("\t\t}\n")
	}
}
