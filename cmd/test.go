package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/credential"
	"github.com/hellodash/hellodash/health"
	"github.com/hellodash/hellodash/openai"
	"github.com/hellodash/hellodash/render"
	"github.com/hellodash/hellodash/tmdb"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test API credentials",
	Long:  `Validate the TMDB and OpenAI API keys against their services and report the result for each.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Println(render.Title("🔑 Credential check"))
	fmt.Println()

	reportResult("TMDB", func(apiKey string) (health.Result, error) {
		client, err := tmdb.NewClient(apiKey, logger, tmdb.WithBaseURL(cfg.TMDB.URL))
		if err != nil {
			return health.TransientError, err
		}
		return client.Validate(ctx), nil
	}, "tmdb")

	reportResult("OpenAI", func(apiKey string) (health.Result, error) {
		client, err := openai.NewClient(apiKey, logger, openai.WithBaseURL(cfg.OpenAI.URL))
		if err != nil {
			return health.TransientError, err
		}
		return client.Validate(ctx), nil
	}, "openai")

	return nil
}

// reportResult resolves the credential for service, runs the validation, and
// prints one status line.
func reportResult(label string, validate func(apiKey string) (health.Result, error), service string) {
	apiKey, ok := resolver.Resolve(service)
	if !ok {
		fmt.Println(render.ErrorMessage(
			label+": no API key available.",
			"Set "+credential.EnvVar(service)+" or run interactively to be prompted.",
		))
		return
	}

	result, err := validate(apiKey)
	if err != nil {
		logger.Error().Err(err).Str("service", service).Msg("Validation failed")
		fmt.Println(render.ErrorMessage(label+": validation could not run.", ""))
		return
	}

	switch result {
	case health.Valid:
		fmt.Println(render.Success(label + ": API key is valid."))
	case health.Invalid:
		fmt.Println(render.ErrorMessage(label+": API key was rejected.", "Check the key and try again."))
	default:
		fmt.Println(render.ErrorMessage(label+": service unreachable, try again later.", ""))
	}
}
