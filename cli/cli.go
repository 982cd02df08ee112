// Package cli drives an interactive REPL over a btreeset.Tree[string],
// adapted from vchandela-ddia/btree/cli/cli.go. The teacher's SET/DEL/GET
// commands managed key-value pairs; since this is a set, ADD/DEL/HAS take
// a single key and there is no value to print, and LIST is added as the
// set's equivalent of an in-order scan.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"btreeset/btreeset"
	"btreeset/internal/visualize"
)

// CLI reads commands from scanner and applies them to tree, printing a
// colourised structural dump after every mutation.
type CLI struct {
	scanner *bufio.Scanner
	tree    *btreeset.Tree[string]
	out     func(string)
}

// New builds a CLI reading from scanner and mutating tree. out receives
// every line the CLI would otherwise print, so callers can redirect output
// (the demo wires it to os.Stdout; tests can capture it instead). The "> "
// prompt is not passed to out; it is always written to os.Stdout.
func New(scanner *bufio.Scanner, tree *btreeset.Tree[string], out func(string)) *CLI {
	if out == nil {
		out = func(s string) { fmt.Println(s) }
	}
	return &CLI{scanner: scanner, tree: tree, out: out}
}

// Start runs the REPL loop until the input scanner is exhausted or an EXIT
// command is processed.
func (c *CLI) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *CLI) printHelp() {
	c.out(`
btreeset REPL

Available commands:
  ADD <key>   Insert a key into the set
  DEL <key>   Remove a key from the set
  HAS <key>   Report whether the set contains a key
  LIST        Print every key in order
  EXIT        Terminate this session
`)
}

func (c *CLI) printPrompt() { fmt.Print("> ") }

// processInput returns false when the REPL should stop.
func (c *CLI) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	switch strings.ToLower(fields[0]) {
	case "add":
		c.processAdd(fields[1:])
	case "del":
		c.processDel(fields[1:])
	case "has":
		c.processHas(fields[1:])
	case "list":
		c.processList()
	case "exit":
		return false
	default:
		c.out(fmt.Sprintf("Unknown command %q", fields[0]))
	}
	return true
}

func (c *CLI) processAdd(args []string) {
	if len(args) != 1 {
		c.out("Usage: ADD <key>")
		return
	}
	if !c.tree.Insert(args[0]) {
		c.out(fmt.Sprintf("%q already present.", args[0]))
		return
	}
	c.out(c.dump())
}

func (c *CLI) processDel(args []string) {
	if len(args) != 1 {
		c.out("Usage: DEL <key>")
		return
	}
	if !c.tree.Remove(args[0]) {
		c.out("Key not found.")
		return
	}
	c.out(c.dump())
}

func (c *CLI) processHas(args []string) {
	if len(args) != 1 {
		c.out("Usage: HAS <key>")
		return
	}
	c.out(fmt.Sprintf("%v", c.tree.Contains(args[0])))
}

func (c *CLI) processList() {
	var keys []string
	var walk func(h btreeset.NodeHandle[string])
	walk = func(h btreeset.NodeHandle[string]) {
		if !h.Valid() {
			return
		}
		if h.IsLeaf() {
			keys = append(keys, h.Keys()...)
			return
		}
		children := h.Children()
		nodeKeys := h.Keys()
		for i, child := range children {
			walk(child)
			if i < len(nodeKeys) {
				keys = append(keys, nodeKeys[i])
			}
		}
	}
	walk(c.tree.Root())
	c.out(strings.Join(keys, ", "))
}

func (c *CLI) dump() string {
	return visualize.Tree(c.tree.Root(), func(k string) string { return k })
}

// NewStdinScanner is a small convenience constructor matching the
// teacher's main.go wiring (bufio.NewScanner(os.Stdin)).
func NewStdinScanner() *bufio.Scanner { return bufio.NewScanner(os.Stdin) }
