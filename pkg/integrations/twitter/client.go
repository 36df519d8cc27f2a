package twitter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/younextz/screenshot-styler/pkg/cache"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/integrations"
)

const defaultEndpoint = "https://publish.twitter.com/oembed"

// Tweet is the data drawn on a tweet card.
type Tweet struct {
	URL       string `json:"url"`
	Author    string `json:"author"`
	Handle    string `json:"handle"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
	Likes     int    `json:"likes"`
	Retweets  int    `json:"retweets"`
}

type oembedResponse struct {
	AuthorName string `json:"author_name"`
	AuthorURL  string `json:"author_url"`
	HTML       string `json:"html"`
}

// Client fetches tweets.
type Client struct {
	*integrations.Client
	endpoint string
}

// NewClient returns a client caching responses in backend for ttl.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:   integrations.NewClient(backend, "oembed", ttl, map[string]string{"Accept": "application/json"}),
		endpoint: defaultEndpoint,
	}
}

// WithEndpoint points the client at another oEmbed endpoint.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

// Fetch loads the tweet at tweetURL. Every failure is reported as
// TWEET_FETCH_FAILED ("Failed to load tweet") except invalid URLs.
func (c *Client) Fetch(ctx context.Context, tweetURL string, refresh bool) (*Tweet, error) {
	tweetURL = strings.TrimSpace(tweetURL)
	if tweetURL == "" {
		return nil, styerr.New(styerr.ErrCodeInvalidURL, "Please enter a tweet URL")
	}
	if err := styerr.ValidateTweetURL(tweetURL); err != nil {
		return nil, err
	}

	var resp oembedResponse
	err := c.Cached(ctx, tweetURL, refresh, &resp, func() error {
		return c.Get(ctx, c.endpoint+"?omit_script=1&url="+integrations.URLEncode(tweetURL), &resp)
	})
	if err != nil {
		var rl *styerr.RateLimitedError
		if errors.As(err, &rl) {
			return nil, styerr.Wrap(styerr.ErrCodeRateLimited, err, "Failed to load tweet")
		}
		return nil, styerr.Wrap(styerr.ErrCodeTweetFetch, err, "Failed to load tweet")
	}
	if resp.AuthorName == "" && resp.HTML == "" {
		return nil, styerr.New(styerr.ErrCodeTweetFetch, "Failed to load tweet")
	}

	text, stamp := parseBlockquote(resp.HTML)
	return &Tweet{
		URL:       tweetURL,
		Author:    resp.AuthorName,
		Handle:    HandleFromURL(resp.AuthorURL),
		Text:      text,
		Timestamp: stamp,
	}, nil
}

// HandleFromURL returns the last path segment of an author URL.
func HandleFromURL(u string) string {
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndexByte(u, '/'); i >= 0 {
		return u[i+1:]
	}
	return u
}

// parseBlockquote extracts the paragraph text and the permalink text from the
// oEmbed blockquote. Line breaks inside paragraphs are kept.
func parseBlockquote(fragment string) (text, timestamp string) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return stripTags(fragment), ""
	}

	var paragraphs []string
	var lastLink string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p":
				paragraphs = append(paragraphs, strings.TrimSpace(textOf(n)))
				return
			case "a":
				lastLink = strings.TrimSpace(textOf(n))
			case "script", "style":
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if len(paragraphs) == 0 {
		return strings.TrimSpace(textOf(doc)), ""
	}
	return strings.Join(paragraphs, "\n\n"), lastLink
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteByte('\n')
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// stripTags removes anything between angle brackets and decodes entities.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}

func (t Tweet) String() string {
	return fmt.Sprintf("%s (@%s): %s", t.Author, t.Handle, t.Text)
}
