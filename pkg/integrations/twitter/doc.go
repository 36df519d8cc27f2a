// Package twitter loads public tweets through the oEmbed endpoint at
// publish.twitter.com.
//
// oEmbed returns the author and an HTML blockquote. The blockquote's
// paragraphs become [Tweet.Text] and its trailing permalink text becomes
// [Tweet.Timestamp]. oEmbed exposes no engagement counts, so Likes and
// Retweets are zero.
package twitter
