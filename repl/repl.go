// Package repl provides an interactive query loop over a name index.
//
// Each input line is an identifier. The REPL prints where the name is
// referenced, and the order in which module discovery would visit
// candidate modules for it. Tab completes indexed names, an unknown
// name gets a near-miss suggestion, and Control-C interrupts the
// current query.
package repl

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"go.pyscope.dev/dynamic"
	"go.pyscope.dev/internal/index"
	"go.pyscope.dev/internal/spell"
	"go.pyscope.dev/syntax"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, query, print loop. Discovery runs against the
// given session and seed modules; reference counts come from ix.
func REPL(sess *dynamic.Session, seeds []*syntax.Module, ix *index.Index) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	completions := make([]readline.PrefixCompleterInterface, 0, len(ix.Names))
	for _, name := range ix.AllNames() {
		completions = append(completions, readline.PcItem(name))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       ">>> ",
		AutoComplete: readline.NewPrefixCompleter(completions...),
	})
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, sess, seeds, ix); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads one identifier query and prints the answer.
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed.
func rep(rl *readline.Instance, sess *dynamic.Session, seeds []*syntax.Module, ix *index.Index) error {
	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return nil
	}

	refs := ix.Refs(name)
	if len(refs) == 0 {
		if alt := spell.Suggest(name, ix.Names); alt != "" {
			fmt.Printf("no references to %s; did you mean %s?\n", name, alt)
		} else {
			fmt.Printf("no references to %s\n", name)
		}
		return nil
	}

	bold := color.New(color.Bold)
	bold.Printf("%s\n", name)
	for _, ref := range refs {
		fmt.Printf("  %s (%d)\n", ref.Path, ref.Count)
	}

	fmt.Println("discovery order:")
	n := 0
	for m := range sess.Discover(seeds, name) {
		select {
		case <-interrupted:
			fmt.Println("interrupted")
			return nil
		default:
		}
		n++
		path := m.Path
		if path == "" {
			path = "<synthetic>"
		}
		fmt.Printf("  %2d. %s\n", n, path)
	}
	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
