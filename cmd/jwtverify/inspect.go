package main

import (
	"github.com/spf13/cobra"

	"github.com/hyalite/jwtverify/verifier"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [token|-]",
		Short: "Decode a token without verifying it",
		Long: `Decode a token's header and payload and print them as JSON. The
signature is NOT checked; nothing printed here has been authenticated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd, args)
			if err != nil {
				return err
			}

			header, err := verifier.DecodeHeader(token)
			if err != nil {
				return err
			}
			payload, err := verifier.DecodeUnverified[map[string]any](token)
			if err != nil {
				return err
			}

			cmd.PrintErrln("warning: signature not verified")

			headerJSON := map[string]any{"alg": header.Algorithm.String()}
			for name, value := range header.Parameters {
				headerJSON[name] = value
			}

			return printJSON(cmd, map[string]any{
				"header":  headerJSON,
				"payload": payload,
			})
		},
	}
}
