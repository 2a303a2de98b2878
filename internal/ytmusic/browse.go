package ytmusic

import (
	"context"
	"log"
)

// maxContinuationFetches bounds how many continuation rounds a single feed
// request follows. Feeds can continue essentially forever; ten rounds is
// plenty for a screenful and keeps worst-case latency bounded.
const maxContinuationFetches = 10

const (
	browseIDHome    = "FEmusic_home"
	browseIDExplore = "FEmusic_explore"
)

// Home returns the personalized home feed, following continuations.
func (c *Client) Home(ctx context.Context) ([]HomeSection, error) {
	return c.browseFeed(ctx, browseIDHome)
}

// Explore returns the explore feed.
func (c *Client) Explore(ctx context.Context) ([]HomeSection, error) {
	return c.browseFeed(ctx, browseIDExplore)
}

// browseFeed assembles a feed page by page. The initial response carries a
// continuation token; each follow-up request is solely {"continuation":
// token} and yields the next page plus the next token. Continuations run
// strictly sequentially, since a token is only valid against the response
// that produced it. A continuation failure ends the loop quietly: pages
// already accumulated stay valid and are returned without error.
func (c *Client) browseFeed(ctx context.Context, browseID string) ([]HomeSection, error) {
	doc, err := c.execute(ctx, "browse", map[string]any{"browseId": browseID}, c.ttl.Home)
	if err != nil {
		return nil, err
	}
	sections := parseSections(sectionList(doc))
	token := nextContinuation(doc)

	for fetches := 0; token != "" && fetches < maxContinuationFetches; fetches++ {
		next, err := c.execute(ctx, "browse", map[string]any{"continuation": token}, c.ttl.Home)
		if err != nil {
			log.Printf("kaset: %s continuation %d: %v", browseID, fetches+1, err)
			break
		}
		sections = append(sections, parseSections(continuationSections(next))...)
		token = continuationToken(next)
	}
	return sections, nil
}
