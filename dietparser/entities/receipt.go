package entities

// MatchResult is one receipt line resolved against the food vocabulary.
type MatchResult struct {
	Name         string `json:"name"`
	Matched      string `json:"matched"`
	Quantity     string `json:"quantity"`
	Score        int    `json:"score"`
	OriginalScan string `json:"original_scan"`
}
