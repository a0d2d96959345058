package scorer

import (
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/sentiment"
)

// ScoreNews passes the uncertainty-discounted sentiment through for every
// record, guaranteeing the [0,1] bound and supplying the neutral default
// for companies with no associated news.
func ScoreNews(records []model.CompanyRecord, sentiments map[string]model.SentimentResult, _ Params) map[string]float64 {
	scores := make(map[string]float64, len(records))
	for _, r := range records {
		if s, ok := sentiments[r.Name]; ok {
			scores[r.Name] = clamp01(s.Score)
		} else {
			scores[r.Name] = sentiment.NeutralScore
		}
	}
	return scores
}
