// Package visualize renders a btreeset.Tree as an indented, colourised
// text dump for the demo REPL. It is adapted from the btree.Visualizer
// the teacher's cli package drives (vchandela-ddia/btree/cli/cli.go); that
// type held a value per key, ours holds only keys, since a set has no
// payload to print alongside them.
package visualize

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"btreeset/btreeset"
)

var (
	depthColor = []*color.Color{
		color.New(color.FgCyan, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgMagenta, color.Bold),
	}
	leafColor = color.New(color.FgWhite)
)

// Tree renders the full structure of a btreeset.Tree[K], one line per
// node, indented by depth. Internal nodes are coloured by depth (cycling
// through a short palette so deep trees stay readable); leaves are always
// printed in leafColor.
func Tree[K cmp.Ordered](root btreeset.NodeHandle[K], format func(K) string) string {
	var b strings.Builder
	var walk func(h btreeset.NodeHandle[K], depth int)
	walk = func(h btreeset.NodeHandle[K], depth int) {
		if !h.Valid() {
			return
		}
		keys := make([]string, 0, len(h.Keys()))
		for _, k := range h.Keys() {
			keys = append(keys, format(k))
		}
		line := fmt.Sprintf("%s[ %s ]", strings.Repeat("  ", depth), strings.Join(keys, " "))
		if h.IsLeaf() {
			b.WriteString(leafColor.Sprint(line))
		} else {
			c := depthColor[depth%len(depthColor)]
			b.WriteString(c.Sprint(line))
		}
		b.WriteByte('\n')
		for _, child := range h.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return b.String()
}
