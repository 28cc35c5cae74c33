package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyalite/jwtverify"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("JWTVERIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "jwtverify",
		Short:         "Decode and verify compact-serialized signed tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("verbose", false, "log progress to stderr")
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newVerifyCmd(v))
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// newLogger returns a stderr logrus logger at debug level when --verbose is
// set, and a noop logger otherwise.
func newLogger(v *viper.Viper) jwtverify.Logger {
	if !v.GetBool("verbose") {
		return jwtverify.NoopLogger{}
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	return jwtverify.NewLogrusLogger(l)
}

// readToken takes the token from the first argument, or from stdin when the
// argument is "-" or absent.
func readToken(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading token from stdin: %w", err)
		}
		return "", errors.New("no token on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
