package models

// Article is one feed entry as shown on a news card.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pub_date"`
	Source  string `json:"source"`
	TimeAgo string `json:"time_ago"`
}
