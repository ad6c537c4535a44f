package types

// CallDetails is the decoded analytics row for one call recording. Optional
// columns are pointers so absent cells serialize as omitted rather than "".
type CallDetails struct {
	CallID               int      `json:"call_id"`
	AudioDurationMinutes float64  `json:"audio_duration_minutes"`
	UserType             string   `json:"user_type"`
	CallObjective        string   `json:"call_objective"`
	Top3Themes           []string `json:"top3_themes"`
	NextAction           string   `json:"next_action"`
	CallSentiment        string   `json:"call_sentiment"`
	Summary              string   `json:"summary"`

	AgentImprovementFeedback *string `json:"agent_improvement_feedback,omitempty"`
	OrderID                  *string `json:"order_id,omitempty"`
	ProductType              *string `json:"product_type,omitempty"`
	City                     *string `json:"city,omitempty"`

	// Columns present only in later dataset revisions. Earlier snapshots carry
	// a combined Language cell instead; the resolver splits it into the two
	// language fields.
	CallType         *string `json:"call_type,omitempty"`
	BuyingIntent     *string `json:"buying_intent,omitempty"`
	CustomerLanguage *string `json:"customer_language,omitempty"`
	AgentLanguage    *string `json:"agent_language,omitempty"`
}
