package domain

type HotspotStats struct {
	Total     int64 `json:"total"`
	Recent    int64 `json:"recent"`
	WithNotes int64 `json:"withNotes"`
	Minutes   int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
