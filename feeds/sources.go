package feeds

import "market-pulse/timeago"

// Source describes one RSS feed and how its entries are labelled.
type Source struct {
	Name             string
	URL              string
	Limit            int // 0 keeps every item
	DefaultPublisher string
	Ago              timeago.Policy
}

const DefaultRelayURL = "https://api.allorigins.win/raw"

var (
	NewsSource = Source{
		Name:             "news",
		URL:              "https://news.google.com/rss/search?q=Indian+Stock+Market+Sensex+Nifty+when:2d&hl=en-IN&gl=IN&ceid=IN:en",
		DefaultPublisher: "News",
		Ago:              timeago.Compact,
	}

	IPOSource = Source{
		Name:             "ipo",
		URL:              "https://news.google.com/rss/search?q=IPO+India+GMP+Subscription+Listing+when:7d&hl=en-IN&gl=IN&ceid=IN:en",
		DefaultPublisher: "News",
		Ago:              timeago.Daily,
	}

	GlobalImpactSource = Source{
		Name:             "global-impact",
		URL:              "https://news.google.com/rss/search?q=US+Economy+Fed+Nasdaq+Crude+Oil+China+Market+when:2d&hl=en-US&gl=US&ceid=US:en",
		Limit:            10,
		DefaultPublisher: "Global Wire",
		Ago:              timeago.Daily,
	}
)
