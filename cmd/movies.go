package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/apierror"
	"github.com/hellodash/hellodash/credential"
	"github.com/hellodash/hellodash/health"
	"github.com/hellodash/hellodash/render"
	"github.com/hellodash/hellodash/retry"
	"github.com/hellodash/hellodash/tmdb"
)

var moviesPage int

// moviesCmd represents the movies command
var moviesCmd = &cobra.Command{
	Use:   "movies <query>",
	Short: "Search for movies on TMDB",
	Long: `Search The Movie Database for movies matching a query. Requires a TMDB
API key, taken from ` + credential.EnvVar("tmdb") + ` or an interactive prompt.
Responses are cached for the session's cache TTL.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMovies,
}

func init() {
	moviesCmd.Flags().IntVar(&moviesPage, "page", 1, "result page to fetch")
}

func runMovies(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("search query must not be empty")
	}
	if moviesPage < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", moviesPage)
	}

	apiKey, ok := resolver.Resolve("tmdb")
	if !ok {
		fmt.Println(render.ErrorMessage(
			"No TMDB API key available.",
			"Set "+credential.EnvVar("tmdb")+" or run interactively to be prompted.",
		))
		return nil
	}

	client, err := tmdb.NewClient(apiKey, logger, tmdb.WithBaseURL(cfg.TMDB.URL))
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
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
		logger.Warn().Msg("TMDB health check failed")
		fmt.Println(render.ErrorMessage(
			apierror.Message(apierror.Connection),
			"The service may be temporarily unavailable. Try again shortly.",
		))
		return nil
	}

	cacheKey := fmt.Sprintf("tmdb:search:%s:page=%d", strings.ToLower(query), moviesPage)
	value, err := sess.SearchCache.GetOrFetch(cacheKey, func() (any, error) {
		var result *tmdb.SearchResult
		err := retry.Do(ctx, 3, func() error {
			var searchErr error
			result, searchErr = client.Search(ctx, query, moviesPage)
			return searchErr
		})
		return result, err
	})
	if err != nil {
		category := apierror.Classify(err)
		logger.Error().Err(err).Str("category", category.String()).Msg("Movie search failed")
		fmt.Println(render.ErrorMessage(apierror.Message(category), apierror.Hint(category)))
		return nil
	}
	result := value.(*tmdb.SearchResult)

	fmt.Println(render.Title("🎬 Results for \"" + query + "\""))
	fmt.Println()

	if len(result.Movies) == 0 {
		fmt.Println("No movies found.")
		return nil
	}

	sess.SetPage(result.Page, result.TotalPages)

	for _, movie := range result.Movies {
		fmt.Println(render.Subtitle(fmt.Sprintf("%s (%s)", movie.Title, movie.ReleaseYear)))
		fmt.Printf("  Rating: %.1f/10 (%d votes)\n", movie.VoteAverage, movie.VoteCount)
		fmt.Printf("  %s\n", movie.Overview)
		if movie.PosterURL != "" {
			fmt.Printf("  Poster: %s\n", movie.PosterURL)
		}
		fmt.Println()
	}

	fmt.Printf("Page %d of %d (%d results)\n", result.Page, result.TotalPages, result.TotalResults)
	if result.HasNextPage() {
		fmt.Printf("Next page: hellodash movies --page %d %q\n", result.Page+1, query)
	}

	return nil
}
