package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"massnet.org/macsum/batch"
	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/fileio"
	"massnet.org/macsum/hmac"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

var (
	macFlagKey      string
	macFlagMessage  string
	macFlagMessages []string
	macFlagOut      string
)

var macCmd = &cobra.Command{
	Use:   "mac --key <keyfile> --message <msgfile> [--out <outfile>]",
	Short: "Create an HMAC-SHA-256 of a message",
	Long: `Create the HMAC-SHA-256 of a UTF-8 message under a hex encoded key.
The MAC is written as 64 hex characters to --out (- for stdout).
With --messages, every listed file is authenticated under the same key
and "<mac>  <file>" lines are written instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		messages := macFlagMessages
		if macFlagMessage != "" {
			messages = append([]string{macFlagMessage}, messages...)
		}
		opts := macOptions{
			key:      macFlagKey,
			messages: messages,
			out:      macFlagOut,
			workers:  config.Workers,
			list:     len(macFlagMessages) > 0,
		}
		return runMAC(context.Background(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type macOptions struct {
	key      string
	messages []string
	out      string
	workers  int
	// list selects "<mac>  <file>" output even for a single message
	list bool
}

func runMAC(ctx context.Context, opts macOptions, stdin io.Reader, stdout io.Writer) error {
	if opts.key == "" {
		return invalidParameter("no key file given (--key)")
	}
	if len(opts.messages) == 0 {
		return invalidParameter("no message file given (--message)")
	}
	if opts.out == "" {
		opts.out = fileio.Stdio
	}

	// all inputs are acquired before any MAC is computed
	key, err := fileio.ReadKey(opts.key)
	if err != nil {
		return err
	}
	in := newSharedStdin(stdin)
	messages := make([]bitseq.Seq, len(opts.messages))
	for i, path := range opts.messages {
		if messages[i], err = fileio.ReadMessage(path, in.open(path)); err != nil {
			return err
		}
	}

	cache := hmac.NewKeyCache(hmac.DefaultKeyCacheSize)
	engine := hmac.New().WithKeyCache(cache)
	jobs := make([]batch.Job, len(messages))
	for i := range messages {
		msg := messages[i]
		jobs[i] = batch.Job{
			Name: opts.messages[i],
			Load: func() (bitseq.Seq, error) { return msg, nil },
		}
	}
	runner := batch.NewRunner(opts.workers, func(msg bitseq.Seq) sha256.Digest {
		return engine.Create(msg, key)
	})
	results, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}
	hits, misses := cache.Stats()
	logging.VPrint(logging.DEBUG, "mac created", logging.LogFormat{
		"messages":   len(results),
		"key_bits":   key.Len(),
		"cache_hits": hits,
		"cache_miss": misses,
	})

	if !opts.list && len(results) == 1 {
		return fileio.WriteDigestFile(opts.out, results[0].Digest, stdout)
	}
	var sb strings.Builder
	for _, res := range results {
		fmt.Fprintf(&sb, "%s  %s\n", res.Digest, res.Name)
	}
	return fileio.WriteText(opts.out, sb.String(), stdout)
}
