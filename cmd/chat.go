package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/apierror"
	"github.com/hellodash/hellodash/credential"
	"github.com/hellodash/hellodash/health"
	"github.com/hellodash/hellodash/openai"
	"github.com/hellodash/hellodash/render"
	"github.com/hellodash/hellodash/retry"
)

var (
	chatModel      string
	chatListModels bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with an OpenAI model",
	Long: `Start an interactive chat session backed by the OpenAI chat-completion
API. The full conversation history is sent with every message. Requires
an OpenAI API key, taken from ` + credential.EnvVar("openai") + ` or an
interactive prompt.

Special inputs: /clear resets the conversation, /quit exits.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "model to use (default from config)")
	chatCmd.Flags().BoolVar(&chatListModels, "list-models", false, "list available chat models and exit")
}

func runChat(cmd *cobra.Command, args []string) error {
	apiKey, ok := resolver.Resolve("openai")
	if !ok {
		fmt.Println(render.ErrorMessage(
			"No OpenAI API key available.",
			"Set "+credential.EnvVar("openai")+" or run interactively to be prompted.",
		))
		return nil
	}

	client, err := openai.NewClient(apiKey, logger, openai.WithBaseURL(cfg.OpenAI.URL))
	if err != nil {
		return fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	ctx := context.Background()
	switch client.Validate(ctx) {
	case health.Invalid:
		fmt.Println(render.ErrorMessage(
			apierror.Message(apierror.Authentication),
			apierror.Hint(apierror.Authentication),
		))
		return nil
	case health.TransientError:
		logger.Warn().Msg("OpenAI health check failed")
		fmt.Println(render.ErrorMessage(
			apierror.Message(apierror.Connection),
			"The service may be temporarily unavailable. Try again shortly.",
		))
		return nil
	}

	if chatListModels {
		models, err := client.Models(ctx)
		if err != nil {
			category := apierror.Classify(err)
			fmt.Println(render.ErrorMessage(apierror.Message(category), apierror.Hint(category)))
			return nil
		}
		fmt.Println(render.Title("Available models"))
		for _, m := range models {
			fmt.Println("  " + m.ID)
		}
		return nil
	}

	model := chatModel
	if model == "" {
		model = cfg.OpenAI.Model
	}

	fmt.Println(render.Title("💬 Chat"))
	fmt.Printf("Model: %s. Type /clear to reset, /quit to exit.\n\n", model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			sess.ClearHistory()
			fmt.Println(render.Success("Conversation cleared."))
			continue
		}

		sess.AppendUser(input)

		request := openai.ChatRequest{
			Model:       model,
			Messages:    sess.Transcript(cfg.OpenAI.SystemMessage),
			Temperature: cfg.OpenAI.Temperature,
			MaxTokens:   cfg.OpenAI.MaxTokens,
		}

		var result *openai.ChatResult
		err := retry.Do(ctx, 3, func() error {
			var completeErr error
			result, completeErr = client.Complete(ctx, request)
			return completeErr
		})
		if err != nil {
			category := apierror.Classify(err)
			logger.Error().Err(err).Str("category", category.String()).Msg("Chat completion failed")
			fmt.Println(render.ErrorMessage(apierror.Message(category), apierror.Hint(category)))
			continue
		}

		sess.AppendAssistant(result.Reply)
		fmt.Printf("\n%s\n\n", result.Reply)
		logger.Debug().
			Str("finish_reason", result.FinishReason).
			Int("total_tokens", result.Usage.TotalTokens).
			Msg("Completion received")
	}

	return scanner.Err()
}
