package cli

import (
	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
	"github.com/younextz/screenshot-styler/pkg/server"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

// serveCommand runs the HTTP service until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		noCache    bool
		noTweets   bool
		noSettings bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the styling API over HTTP",
		Long: `Serve exposes the catalogues and renderers as a JSON/multipart API:

  GET  /api/presets, /api/palettes, /api/frames, /api/code/themes
  POST /api/render (multipart "image"), /api/code, /api/tweet
  GET|PUT|DELETE /api/settings

The listen address and upload limit come from the [server] section of the
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			e, err := c.newEnv(ctx, noCache)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.assets.Preload(ctx); err != nil {
				c.Logger.Warn("picture backgrounds unavailable", "err", err)
			}

			opts := []server.Option{
				server.WithLogger(c.Logger),
				server.WithPalettes(e.palettes),
				server.WithAssets(e.assets),
				server.WithMaxUploadSize(c.Config.Server.MaxUploadSize),
				server.WithReducedMotion(c.Config.Defaults.ReducedMotion),
				server.WithPreferRSVG(c.Config.PreferRSVG()),
			}
			if !noTweets {
				opts = append(opts, server.WithTweetClient(twitter.NewClient(e.cache, tweetTTL)))
			}
			if !noSettings {
				store, err := settings.Open(ctx, c.Config.Settings, c.Config.Cache.RedisURL)
				if err != nil {
					return err
				}
				defer store.Close()
				opts = append(opts, server.WithSettings(store))
			}

			printInfo("Serving on %s", StyleLink.Render("http://"+addr))
			return server.New(e.runner, opts...).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&noTweets, "no-tweets", false, "disable /api/tweet")
	cmd.Flags().BoolVar(&noSettings, "no-settings", false, "disable /api/settings")
	return cmd
}
