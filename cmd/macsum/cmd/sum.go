package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"massnet.org/macsum/batch"
	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/errors"
	"massnet.org/macsum/fileio"
	"massnet.org/macsum/ledger"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

var (
	sumFlagRecord bool
	sumFlagTrace  bool
)

var sumCmd = &cobra.Command{
	Use:   "sum [files...]",
	Short: "Print SHA-256 digests of files",
	Long: `Print the SHA-256 digest of each file in the format "<digest>  <file>".
With no files, or when a file is -, standard input is read.
With --record, the digests are stored in the ledger for a later check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sumOptions{
			workers: config.Workers,
			ledger:  config.Ledger,
			record:  sumFlagRecord,
			trace:   sumFlagTrace,
		}
		return runSum(context.Background(), args, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type sumOptions struct {
	workers int
	ledger  string
	record  bool
	trace   bool
}

// traceObserver logs the phases of one hash computation.
func traceObserver(bits uint64) sha256.Observer {
	return func(phase sha256.Phase, block int) {
		logging.VPrint(logging.TRACE, "sha256 phase", logging.LogFormat{
			"phase": phase.String(),
			"block": block,
			"bits":  bits,
		})
	}
}

func sumDigestFunc(trace bool) batch.DigestFunc {
	engine := sha256.New()
	if !trace {
		return engine.Hash
	}
	if !logging.Enabled(logging.TRACE) {
		logging.CPrint(logging.WARN, "--trace has no effect below log level trace", logging.LogFormat{})
	}
	return func(msg bitseq.Seq) sha256.Digest {
		return engine.WithObserver(traceObserver(msg.Len())).Hash(msg)
	}
}

func runSum(ctx context.Context, paths []string, opts sumOptions, stdin io.Reader, stdout io.Writer) error {
	if opts.record && opts.ledger == "" {
		return invalidParameter("--record requires a ledger directory (--ledger)")
	}
	if len(paths) == 0 {
		paths = []string{fileio.Stdio}
	}

	in := newSharedStdin(stdin)
	jobs := make([]batch.Job, len(paths))
	for i, path := range paths {
		path := path
		jobs[i] = batch.Job{
			Name: path,
			Load: func() (bitseq.Seq, error) { return fileio.ReadFile(path, in.open(path)) },
		}
	}

	results, err := batch.NewRunner(opts.workers, sumDigestFunc(opts.trace)).Run(ctx, jobs)
	if err != nil {
		return err
	}

	var (
		firstErr error
		entries  []ledger.Entry
	)
	for _, res := range results {
		if res.Err != nil {
			logging.CPrint(logging.ERROR, "fail to hash file", logging.LogFormat{"file": res.Name, "err": res.Err})
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		if _, err := fmt.Fprintf(stdout, "%s  %s\n", res.Digest, res.Name); err != nil {
			return withCode(errors.ErrOutputWrite, err)
		}
		if res.Name != fileio.Stdio {
			entries = append(entries, ledger.Entry{Path: res.Name, Digest: res.Digest})
		}
	}

	if opts.record && len(entries) > 0 {
		if err := recordEntries(opts.ledger, entries); err != nil {
			return err
		}
	}
	return firstErr
}

func recordEntries(dir string, entries []ledger.Entry) error {
	l, err := ledger.Open(dir)
	if err != nil {
		return withCode(errors.ErrLedger, err)
	}
	defer l.Close()
	if err = l.RecordAll(entries); err != nil {
		return withCode(errors.ErrLedger, err)
	}
	logging.VPrint(logging.INFO, "digests recorded", logging.LogFormat{"ledger": dir, "count": len(entries)})
	return nil
}
