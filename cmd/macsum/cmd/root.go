package cmd

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"massnet.org/macsum/errors"
	"massnet.org/macsum/fileio"
	"massnet.org/macsum/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           filepath.Base(os.Args[0]),
	Short:         `SHA-256 digests and HMAC-SHA-256 message authentication codes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := RootCmd.Execute(); err != nil {
		code := errorCode(err)
		logging.CPrint(logging.ERROR, "command failed", logging.LogFormat{
			"err":    err,
			"code":   code,
			"reason": errors.Message(code),
		})
		os.Exit(errors.ExitStatus(code))
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.macsum.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "number of hashing workers (default is the number of CPUs)")
	RootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", "", "directory of the digest ledger (disabled when empty)")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("ledger", RootCmd.PersistentFlags().Lookup("ledger"))

	sumCmd.Flags().BoolVarP(&sumFlagRecord, "record", "r", false, "record digests in the ledger")
	sumCmd.Flags().BoolVar(&sumFlagTrace, "trace", false, "log hashing phases at trace level")
	RootCmd.AddCommand(sumCmd)

	macCmd.Flags().StringVarP(&macFlagKey, "key", "k", "", "file holding the hex encoded key")
	macCmd.Flags().StringVarP(&macFlagMessage, "message", "m", "", "file holding the UTF-8 message (- for stdin)")
	macCmd.Flags().StringSliceVar(&macFlagMessages, "messages", nil, "several message files sharing one key")
	macCmd.Flags().StringVarP(&macFlagOut, "out", "o", fileio.Stdio, "output file for the MAC (- for stdout)")
	RootCmd.AddCommand(macCmd)

	keygenCmd.Flags().StringVarP(&keygenFlagOut, "out", "o", fileio.Stdio, "key file to write (- for stdout)")
	keygenCmd.Flags().StringVarP(&keygenFlagPassphrase, "passphrase", "p", "", "passphrase to derive the key from (prompted when empty)")
	RootCmd.AddCommand(keygenCmd)

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(versionCmd)
}
