package fetch

import (
	"strings"

	"github.com/truthscan/truthscan/internal/model"
	"golang.org/x/net/html"
)

// parseTimeline extracts up to limit posts from a Nitter search result page.
// A mirror serves posts as div.timeline-item blocks containing a.username,
// div.tweet-content, and span.tweet-date > a[title]. Missing fields fall
// back like the markup sometimes does: username "Unknown", content and date
// empty. An entry that yields neither a username nor content is skipped;
// one broken entry never aborts the batch.
func parseTimeline(markup string, limit int) ([]model.SocialPost, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var posts []model.SocialPost
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if len(posts) >= limit {
			return
		}

		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "timeline-item") {
			if post, ok := parseTimelineItem(n); ok {
				posts = append(posts, post)
			}
			// Items never nest; no need to descend further
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return posts, nil
}

// parseTimelineItem extracts one post from a timeline-item div
func parseTimelineItem(item *html.Node) (model.SocialPost, bool) {
	username := ""
	content := ""
	date := ""

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "a" && hasClass(n, "username") && username == "":
				username = strings.TrimSpace(nodeText(n))
			case n.Data == "div" && hasClass(n, "tweet-content") && content == "":
				content = strings.TrimSpace(nodeText(n))
			case n.Data == "span" && hasClass(n, "tweet-date") && date == "":
				date = tweetDateTitle(n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(item)

	if username == "" && content == "" {
		return model.SocialPost{}, false
	}
	if username == "" {
		username = "Unknown"
	}

	return model.SocialPost{
		Platform:  "Twitter",
		User:      username,
		Content:   content,
		Date:      date,
		Synthetic: false,
	}, true
}

// tweetDateTitle pulls the title attribute off the anchor inside a
// tweet-date span
func tweetDateTitle(span *html.Node) string {
	for c := span.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			return attrValue(c, "title")
		}
	}
	return ""
}

// nodeText collects all text nodes under n
func nodeText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// hasClass reports whether the node's class attribute contains the class
func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or ""
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
