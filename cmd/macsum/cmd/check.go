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

const (
	statusOK      = "OK"
	statusFailed  = "FAILED"
	statusMissing = "MISSING"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-hash every file recorded in the ledger",
	Long: `Re-hash every file recorded in the ledger and print "<file>: OK",
"<file>: FAILED" or "<file>: MISSING".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(context.Background(), config.Ledger, config.Workers, cmd.OutOrStdout())
	},
}

func runCheck(ctx context.Context, dir string, workers int, stdout io.Writer) error {
	if dir == "" {
		return invalidParameter("no ledger directory given (--ledger)")
	}
	l, err := ledger.Open(dir)
	if err != nil {
		return withCode(errors.ErrLedger, err)
	}
	defer l.Close()

	entries, err := l.Entries()
	if err != nil {
		return withCode(errors.ErrLedger, err)
	}

	jobs := make([]batch.Job, len(entries))
	for i, e := range entries {
		path := e.Path
		jobs[i] = batch.Job{
			Name: path,
			Load: func() (bitseq.Seq, error) { return fileio.ReadFile(path, nil) },
		}
	}
	results, err := batch.NewRunner(workers, sha256.New().Hash).Run(ctx, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		status := statusOK
		if res.Err != nil {
			status = statusMissing
		} else {
			ok, err := l.Matches(res.Name, res.Digest)
			if err != nil {
				return withCode(errors.ErrLedger, err)
			}
			if !ok {
				status = statusFailed
			}
		}
		if status != statusOK {
			failed++
			logging.VPrint(logging.WARN, "ledger check failed", logging.LogFormat{"file": res.Name, "status": status})
		}
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", res.Name, status); err != nil {
			return withCode(errors.ErrOutputWrite, err)
		}
	}

	if failed > 0 {
		return withCode(errors.ErrDigestMismatch, fmt.Errorf("%d of %d files did not match", failed, len(results)))
	}
	return nil
}
