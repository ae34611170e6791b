// Command sharekit reconstructs a threshold-shared secret from one or more
// JSON share bundles, cross-validating every k-subset of the shares and
// reporting either the agreed secret or the full set of conflicting
// candidates.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vitalvas/sharekit/combin"
	"github.com/vitalvas/sharekit/shamir"
	"github.com/vitalvas/sharekit/sharefile"
	"github.com/vitalvas/sharekit/xlogger"
)

type options struct {
	firstK          bool
	maxCombinations int64
}

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logType := flag.String("log-type", "text", "log output format (text, json)")
	firstK := flag.Bool("first-k", false, "interpolate only the k lowest-index shares instead of cross-validating every subset")
	maxCombinations := flag.Int64("max-combinations", 1_000_000, "abort when the number of k-subsets C(n,k) exceeds this value")
	flag.Parse()

	logger := xlogger.New(xlogger.Config{
		Level:   *logLevel,
		LogType: *logType,
	})

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <bundle.json> ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := options{
		firstK:          *firstK,
		maxCombinations: *maxCombinations,
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := run(path, opts, logger); err != nil {
			logger.Error("reconstruction failed", "file", path, "error", err)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

func run(path string, opts options, logger *slog.Logger) error {
	bundle, err := sharefile.Read(path)
	if err != nil {
		return err
	}

	logger.Debug("decoded bundle",
		"file", path,
		"n", bundle.N,
		"k", bundle.K,
		"shares", len(bundle.Shares),
	)

	shares := bundle.Shares
	if opts.firstK && len(shares) > bundle.K {
		shares = shares[:bundle.K]
	}

	count := combin.Count(len(shares), bundle.K)
	if !count.IsInt64() || count.Int64() > opts.maxCombinations {
		return fmt.Errorf("C(%d,%d) = %s exceeds -max-combinations=%d",
			len(shares), bundle.K, count, opts.maxCombinations)
	}

	result, err := shamir.Reconstruct(shares, bundle.K)
	if err != nil {
		return err
	}

	if result.Consistent() {
		secret := result.Secret()
		if !secret.IsInt() {
			logger.Warn("secret is not an integer, shares may be corrupted or mis-encoded",
				"file", path, "secret", secret.String())
		}
		fmt.Printf("%s -> secret = %s\n", path, secret)
		return nil
	}

	fmt.Printf("%s -> inconsistent shares, %d candidates:\n", path, len(result.Candidates))
	for _, candidate := range result.Candidates {
		fmt.Printf("  %s\n", candidate)
	}

	return nil
}
