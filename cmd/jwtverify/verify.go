package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyalite/jwtverify/keys"
	"github.com/hyalite/jwtverify/verifier"
)

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [token|-]",
		Short: "Verify a token and print its payload",
		Long: `Verify a token's signature against the configured key material and print
the payload as JSON. The token comes from the argument or from stdin.

Key material comes from --secret (HMAC), --public-key (a PEM file, RSA),
--jwks-url or --issuer (JWKS fetch). Flags can also be set through
JWTVERIFY_* environment variables, e.g. JWTVERIFY_SECRET.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, v)
		},
	}

	flags := cmd.Flags()
	flags.String("secret", "", "HMAC secret")
	flags.String("public-key", "", "path to a PEM-encoded public key")
	flags.String("jwks-url", "", "JWKS endpoint URL")
	flags.String("issuer", "", "issuer URL for JWKS discovery")
	flags.String("key-id", "", "select the JWKS key with this key ID")
	flags.StringSlice("alg", nil, "allowed algorithms (repeatable)")
	flags.Int("max-length", 0, "reject tokens longer than this many bytes")

	for _, name := range []string{"secret", "public-key", "jwks-url", "issuer", "key-id", "alg", "max-length"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, v *viper.Viper) error {
	token, err := readToken(cmd, args)
	if err != nil {
		return err
	}

	keySet, err := buildKeySet(cmd, v)
	if err != nil {
		return err
	}

	var opts []verifier.DecodeOption
	if algs := v.GetStringSlice("alg"); len(algs) > 0 {
		allowed := make([]verifier.Algorithm, len(algs))
		for i, alg := range algs {
			allowed[i] = verifier.Algorithm(alg)
		}
		opts = append(opts, verifier.WithAllowedAlgorithms(allowed...))
	}
	if maxLength := v.GetInt("max-length"); maxLength > 0 {
		opts = append(opts, verifier.WithMaxTokenLength(maxLength))
	}

	payload, err := verifier.DecodeAndVerify[map[string]any](token, keySet, opts...)
	if err != nil {
		return err
	}

	return printJSON(cmd, payload)
}

// buildKeySet assembles the key material the flags describe. Several
// sources may be combined: a secret covers the HMAC family, a public key
// or JWKS endpoint covers the RSA family.
func buildKeySet(cmd *cobra.Command, v *viper.Viper) (verifier.KeySet, error) {
	keySet := verifier.NewKeySet()

	if secret := v.GetString("secret"); secret != "" {
		keySet = keySet.WithHMACSecret([]byte(secret))
	}

	if path := v.GetString("public-key"); path != "" {
		publicKey, err := keys.LoadPublicKeyFile(path)
		if err != nil {
			return verifier.KeySet{}, err
		}
		keySet = keySet.WithPublicKey(publicKey)
	}

	jwksURL := v.GetString("jwks-url")
	issuer := v.GetString("issuer")
	if jwksURL != "" || issuer != "" {
		if v.GetString("public-key") != "" {
			return verifier.KeySet{}, errors.New("--public-key conflicts with --jwks-url and --issuer")
		}

		var providerOpts []keys.ProviderOption
		if jwksURL != "" {
			providerOpts = append(providerOpts, keys.WithJWKSURL(jwksURL))
		}
		if issuer != "" {
			providerOpts = append(providerOpts, keys.WithIssuer(issuer))
		}
		if keyID := v.GetString("key-id"); keyID != "" {
			providerOpts = append(providerOpts, keys.WithKeyID(keyID))
		}
		providerOpts = append(providerOpts, keys.WithLogger(newLogger(v)))

		provider, err := keys.NewProvider(providerOpts...)
		if err != nil {
			return verifier.KeySet{}, err
		}
		fetched, err := provider.KeySet(cmd.Context())
		if err != nil {
			return verifier.KeySet{}, err
		}
		keySet = fetched
		if secret := v.GetString("secret"); secret != "" {
			keySet = keySet.WithHMACSecret([]byte(secret))
		}
	}

	return keySet, nil
}

func printJSON(cmd *cobra.Command, value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
