package component

import (
	"fmt"
	"strings"
)

// TreeString renders the subtree rooted at root as an indented key listing,
// one component per line in render order. Intended for debugging and test
// assertions.
//
//	root
//	  header
//	  body
//	    row-1
func TreeString(root Component) string {
	var b strings.Builder
	writeTree(&b, root, 0)
	return b.String()
}

func writeTree(b *strings.Builder, c Component, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), c.Key())
	c.Base().VisitChildren(func(child Component) bool {
		writeTree(b, child, depth+1)
		return true
	})
}
