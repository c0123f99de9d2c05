// SPDX-License-Identifier: MIT

// Command spkmeans runs one stage of the spectral k-means pipeline on a
// point file and prints the result.
//
//	spkmeans spk points.txt --k 3
//	spkmeans gl points.txt.gz --format yaml
//	spkmeans jacobi symmetric.txt --metrics-file run.prom
//
// Any failure prints "An Error Has Occurred" on stdout and exits with 1;
// the cause is logged on stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const errorMessage = "An Error Has Occurred"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.log.Error().Err(err).Msg("run failed")
		fmt.Fprintln(stdout, errorMessage)
		return 1
	}

	return 0
}
