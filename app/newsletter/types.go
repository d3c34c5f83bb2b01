package newsletter

// SubscribeRequest is the POST /api/subscribe body. Company is a honeypot
// field: legitimate users never fill it.
type SubscribeRequest struct {
	Email   string        `json:"email"`
	Company string        `json:"company"`
	Name    string        `json:"name"`
	Data    SubscribeData `json:"data"`
}

// SubscribeData carries optional analytics attribution. The three optional
// UTM fields are pointers so that absent and empty can be told apart, as the
// upstream payload only includes them when present.
type SubscribeData struct {
	Source      string  `json:"source"`
	Page        string  `json:"page"`
	UTMSource   string  `json:"utm_source"`
	UTMCampaign string  `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
	UTMTerm     *string `json:"utm_term"`
	UTMContent  *string `json:"utm_content"`
}
