package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nygeek/cnc"
	"github.com/nygeek/cnc/internal/tape"
)

func main() {
	ctx := context.Background()

	var (
		algebra   string
		depth     int
		tolerance float64
		tapePath  string
		trace     bool
		timeout   time.Duration
	)
	flag.StringVar(&algebra, "algebra", "complex",
		"numeric algebra: real, complex, decimal, quaternion, or octonion")
	flag.IntVar(&depth, "depth", 4, "register stack depth (minimum 4)")
	flag.Float64Var(&tolerance, "tolerance", 1e-10, "near-integer clamp tolerance")
	flag.StringVar(&tapePath, "tape", "", "record the interaction tape to a sqlite file")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.Parse()

	alg, err := cnc.LookupAlgebra(algebra)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	opts := []cnc.Option{
		cnc.WithAlgebra(alg),
		cnc.WithDepth(depth),
		cnc.WithTolerance(tolerance),
		cnc.WithInput(os.Stdin),
		cnc.WithOutput(os.Stdout),
		cnc.WithPrompt("CNC> "),
	}
	if tapePath != "" {
		store, err := tape.Open(tapePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, cnc.WithRecorder(store))
	}
	if trace {
		opts = append(opts, cnc.WithLogf(log.Printf))
	}

	eng := cnc.New(opts...)
	defer eng.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := eng.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
