package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hashrecover/internal/app"
	"hashrecover/internal/candidate"
	"hashrecover/internal/digest"
	"hashrecover/internal/errors"
	rlog "hashrecover/internal/log"
)

// options collects the flag values of one invocation.
type options struct {
	cfg      app.Config
	logLevel string
}

// Execute runs the recover CLI against os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and answers a ConfigError with usage help instead of a
// failure.
func execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	var usage errors.ConfigError
	if !errors.As(err, &usage) {
		return err
	}
	cmd.PrintErrln(usage.Error())
	return cmd.Help()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	def := candidate.DefaultLists()

	root := &cobra.Command{
		Use:   "recover -i HASHES -o OUTPUT -d DICTIONARY",
		Short: "Recover plaintexts for a file of hex digests",
		Long: "Recover plaintexts for a file of hex digests.\n\n" +
			"Candidates are tried in stages of increasing cost: girl names, boy names,\n" +
			"case variants of those names followed by 0-9999, a general word list, and\n" +
			"finally every four-symbol string over a 71-symbol alphabet. Each recovered\n" +
			"digest is appended to OUTPUT as \"<HEX> <plaintext>\" as soon as it is found.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.ConfigError{Msg: "unexpected arguments: " + strings.Join(args, " ")}
			}
			if missing := opts.missing(); len(missing) > 0 {
				return errors.ConfigError{Msg: "missing required flags: " + strings.Join(missing, ", ")}
			}
			logger, err := rlog.New(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return errors.ConfigError{Msg: fmt.Sprintf("--log-level: %v", err)}
			}
			return runCrack(opts.cfg, logger)
		},
	}
	// Malformed flags are a usage problem, not a failure.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.ConfigError{Msg: err.Error()}
	})

	flags := root.Flags()
	flags.StringVarP(&opts.cfg.HashesPath, "hashes", "i", "", "hashes path")
	flags.StringVarP(&opts.cfg.OutputPath, "output", "o", "", "output filename")
	flags.StringVarP(&opts.cfg.DictionaryDir, "dictionary", "d", "", "dictionary directory")
	flags.StringVarP(&opts.cfg.Algorithm, "algorithm", "a", digest.Default, "digest algorithm, one of those listed by the algorithms command")
	flags.BoolVar(&opts.cfg.SkipMalformed, "skip-malformed", false, "skip malformed hash lines instead of aborting")
	flags.StringVar(&opts.cfg.Lists.GirlNames, "girl-names", def.GirlNames, "stage one word list inside the dictionary directory")
	flags.StringVar(&opts.cfg.Lists.BoyNames, "boy-names", def.BoyNames, "stage two word list inside the dictionary directory")
	flags.StringVar(&opts.cfg.Lists.Words, "words", def.Words, "stage four word list inside the dictionary directory")
	flags.StringVar(&opts.logLevel, "log-level", rlog.DefaultLevel, "log level (debug, info, warn, error)")

	root.AddCommand(algorithmsCmd())
	return root
}

// missing lists the required flags left empty.
func (o *options) missing() []string {
	var out []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"--hashes", o.cfg.HashesPath},
		{"--output", o.cfg.OutputPath},
		{"--dictionary", o.cfg.DictionaryDir},
	} {
		if f.value == "" {
			out = append(out, f.name)
		}
	}
	return out
}
