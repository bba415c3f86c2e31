package record

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/fabiovitalba/piston"
)

// KindCount is the number of entries of one kind.
type KindCount struct {
	Kind  string
	Count int
}

// Summary counts the entries of rec per kind, in identifier order. Kinds
// that never occur are left out; unknown kinds are counted last.
func Summary(rec Recording) []KindCount {
	counts := map[string]int{}
	for _, e := range rec.Entries {
		counts[e.Kind]++
	}
	var out []KindCount
	for _, id := range piston.IDs() {
		name := KindName(id)
		if n := counts[name]; n > 0 {
			out = append(out, KindCount{Kind: name, Count: n})
			delete(counts, name)
		}
	}
	var rest []string
	for k := range counts {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		out = append(out, KindCount{Kind: k, Count: counts[k]})
	}
	return out
}

// Edge is a kind followed directly by another, Count times.
type Edge struct {
	From  string
	To    string
	Count int
}

// collectEdges returns the successor pairs of rec sorted by From, then To.
func collectEdges(rec Recording) []Edge {
	seen := map[[2]string]int{}
	for i := 1; i < len(rec.Entries); i++ {
		seen[[2]string{rec.Entries[i-1].Kind, rec.Entries[i].Kind}]++
	}
	edges := make([]Edge, 0, len(seen))
	for k, n := range seen {
		edges = append(edges, Edge{From: k[0], To: k[1], Count: n})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// ExportDOT renders rec as Graphviz source: one node per kind labeled with
// its count, one edge per observed successor pair. Tick kinds are drawn as
// ellipses.
func ExportDOT(rec Recording) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Recording {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for _, kc := range Summary(rec) {
		shape := ""
		if id, ok := KindID(kc.Kind); ok && piston.IsTick(id) {
			shape = " shape=ellipse"
		}
		fmt.Fprintf(&buf, "  %q [label=\"%s (%d)\"%s];\n", kc.Kind, kc.Kind, kc.Count, shape)
	}
	for _, e := range collectEdges(rec) {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", e.From, e.To, e.Count)
	}
	buf.WriteString("}\n")
	return buf.String()
}
