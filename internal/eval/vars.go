package eval

import (
	"sort"

	"github.com/greek-cheese/casio-logic-calculator/internal/ast"
)

// Variables collects the distinct variable names appearing in the tree,
// sorted ascending. Boolean literals are not variables. The tree is not
// modified.
func Variables(n *ast.Node) []string {
	seen := make(map[string]bool)
	collect(n, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collect(n *ast.Node, seen map[string]bool) {
	if n == nil {
		return
	}
	if n.Kind == ast.Var && n.IsLeaf() {
		seen[n.Name] = true
	}
	collect(n.Left, seen)
	collect(n.Right, seen)
}
