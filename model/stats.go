package model

// CategoryCount is one bucket of a group-by-category aggregation
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ArticleStats struct {
	Total        int64           `json:"total"`
	PeerReviewed int64           `json:"peerReviewed"`
	ByCategory   []CategoryCount `json:"byCategory"`
}

// DashboardStats counts live documents per collection
type DashboardStats struct {
	Events          int64 `json:"events"`
	PublishedNews   int64 `json:"publishedNews"`
	DraftNews       int64 `json:"draftNews"`
	Publications    int64 `json:"publications"`
	JournalArticles int64 `json:"journalArticles"`
	JournalVolumes  int64 `json:"journalVolumes"`
	Staff           int64 `json:"staff"`
	ResourcePersons int64 `json:"resourcePersons"`
	Users           int64 `json:"users"`
}
