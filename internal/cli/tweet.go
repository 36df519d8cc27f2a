package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/tweet"
)

// tweetTTL is how long oEmbed responses stay cached.
const tweetTTL = 24 * time.Hour

// Allowed card widths.
const (
	minTweetWidth = 320
	maxTweetWidth = 1600
)

// tweetCommand draws a tweet as a card and styles it.
func (c *CLI) tweetCommand() *cobra.Command {
	var (
		f     styleFlags
		width int
	)

	cmd := &cobra.Command{
		Use:   "tweet <url>",
		Short: "Render a tweet as a styled card",
		Example: `  styler tweet https://x.com/jack/status/20 -p card-elevated
  styler tweet https://twitter.com/jack/status/20 --width 560 -f png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := styerr.ValidateTweetURL(args[0]); err != nil {
				return err
			}
			if width < minTweetWidth || width > maxTweetWidth {
				return styerr.New(styerr.ErrCodeInvalidInput, "width must be between %d and %d", minTweetWidth, maxTweetWidth)
			}
			return c.runWith(cmd.Context(), &f, "Fetching tweet...", func(ctx context.Context, e *env, opts pipeline.Options) (*pipeline.Result, error) {
				client := twitter.NewClient(e.cache, tweetTTL)
				return e.runner.ExecuteTweet(ctx, client, args[0], width, opts)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().IntVarP(&width, "width", "w", tweet.DefaultWidth, "card width in pixels")
	return cmd
}
