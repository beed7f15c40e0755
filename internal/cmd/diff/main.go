// diff is a small CLI to manually run the diffing implementations in this module.
package main

import (
	"flag"
	"fmt"
	"os"

	"znkr.io/textcmp"
	"znkr.io/textcmp/internal/benchmarks"
)

func main() {
	lib := flag.String("lib", "textcmp", "library to use for diffing")
	context := flag.Int("context", 3, "number of context lines (textcmp only)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: usage: diff <expected> <actual>\n")
		os.Exit(1)
	}

	if err := run(*lib, *context, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lib string, context int, xfile, yfile string) error {
	x, err := os.ReadFile(xfile)
	if err != nil {
		return err
	}
	y, err := os.ReadFile(yfile)
	if err != nil {
		return err
	}

	if lib == "textcmp" {
		out := textcmp.Unified(string(x), string(y),
			textcmp.Context(context),
			textcmp.Names(xfile, yfile))
		os.Stdout.WriteString(out)
		return nil
	}
	for _, impl := range benchmarks.Impls {
		if impl.Name == lib {
			os.Stdout.WriteString(impl.Diff(string(x), string(y)))
			return nil
		}
	}
	return fmt.Errorf("lib not found %q", lib)
}
