// Command simplex solves an LP file with the two-phase Simplex method
// and prints the optimum objective value.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/qsolve/simplex/lpfile"
	"github.com/qsolve/simplex/simplex"
)

func main() {
	var verbose bool
	var maxIter int
	flag.BoolVar(&verbose, "v", false, "trace every pivot")
	flag.IntVar(&maxIter, "max-iter", 0, "maximum pivots before giving up (0 = unlimited)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: simplex [-v] [-max-iter N] <file.lp>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	opts := simplex.Options{Verbose: verbose, MaxIter: maxIter}

	loaded, err := lpfile.Load(path, opts)
	if err != nil {
		if errors.Is(err, simplex.ErrInfeasible) {
			fmt.Println("infeasible")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "simplex: %v\n", err)
		os.Exit(1)
	}

	z, err := loaded.Solve(opts)
	if err != nil {
		if errors.Is(err, simplex.ErrUnbounded) {
			fmt.Println("unbounded")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "simplex: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Z = %.9f\n", float64(z))
}
