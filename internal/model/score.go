package model

// SentimentResult summarizes the tone of a company's news coverage.
// Score is on the [0,1] scale where 0.5 is neutral. Discount is the
// uncertainty multiplier that was applied to the raw polarity.
type SentimentResult struct {
	Score    float64 `json:"score"`
	Discount float64 `json:"discount"`
	Matched  int     `json:"matched_keywords"`
}

// ScoreBreakdown holds the three component scores and their weighted
// combination for a single company. All values lie in [0,1].
type ScoreBreakdown struct {
	Financial float64 `json:"financial"`
	Risk      float64 `json:"risk"`
	News      float64 `json:"news"`
	Final     float64 `json:"final"`
}

// RankedCompany pairs a company with its score breakdown.
type RankedCompany struct {
	Name   string         `json:"name"`
	Scores ScoreBreakdown `json:"scores"`
}

// RankedResult is the pipeline's terminal output: companies ordered by
// final score descending, the selected top entry, and the calibrated
// confidence in [0,1].
type RankedResult struct {
	Ranking     []RankedCompany `json:"ranking"`
	Recommended string          `json:"recommended"`
	Confidence  float64         `json:"confidence"`
}
