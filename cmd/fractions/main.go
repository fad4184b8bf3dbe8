package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	logging "github.com/ipfs/go-log"
	"github.com/mattn/go-isatty"

	fr "github.com/zephyrtronium/fractions"
	"github.com/zephyrtronium/fractions/exprfile"
)

func main() {
	log.SetFlags(0)
	var (
		inname, level string
		echo, dec     bool
		slow          bool
		procs         int
	)
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	flag.StringVar(&inname, "in", "", "YAML expression document, - for stdin (default a built-in example)")
	flag.BoolVar(&echo, "echo", tty, "print the expression before its value")
	flag.BoolVar(&dec, "decimal", false, "also print decimal approximations")
	flag.BoolVar(&slow, "slow", false, "always sum over a computed common denominator")
	flag.IntVar(&procs, "j", 1, "goroutines used to reduce top-level terms")
	flag.StringVar(&level, "log", "error", "log level (debug, info, warn, error)")
	flag.Parse()
	if err := logging.SetLogLevel(fr.LoggerName, level); err != nil {
		log.Fatalf("setting log level %q: %v", level, err)
	}

	e, err := expr(inname)
	if err != nil {
		log.Fatal(err)
	}
	r, err := fr.Evaluate(e, fr.FastPath(!slow), fr.Concurrency(procs))
	if err != nil {
		log.Fatal(err)
	}
	if echo {
		fmt.Println(e)
	}
	exact, simp := r.Strings()
	fmt.Println(exact)
	if simp != "" {
		fmt.Println(simp)
	}
	if dec {
		fmt.Printf("%g\n", r.Exact.Float64())
	}
}

func expr(inname string) (*fr.Expr, error) {
	switch inname {
	case "":
		return demo()
	case "-":
		return exprfile.Load(bufio.NewReader(os.Stdin))
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return exprfile.Load(bufio.NewReader(f))
}

// demo builds 2 - 7/3 + 5/6.
func demo() (*fr.Expr, error) {
	return fr.NewBuilder().
		Number(2).
		Fraction(fr.Minus, 7, 3).
		Fraction(fr.Plus, 5, 6).
		Expr()
}
