package domain

// SentimentLabel is one of the fixed three-way labels used by the daily
// flow aggregate. Emotion categories themselves are opaque strings; only
// the flow aggregate matches against this fixed set.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// FlowLabels is the default label set for the daily three-way flow
// aggregate, in presentation order.
var FlowLabels = []SentimentLabel{SentimentPositive, SentimentNegative, SentimentNeutral}
