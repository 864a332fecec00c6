package click

// LookupData is the stored click returned by the lookup endpoint, in
// the frontend's own field names.
type LookupData struct {
	UniqueClickID string  `json:"unique_click_id"`
	TimestampMs   int64   `json:"timestamp_ms"`
	Valor         float64 `json:"valor"`
	FBCLID        string  `json:"fbclid,omitempty"`
	UTMSource     string  `json:"utm_source"`
	UTMMedium     string  `json:"utm_medium"`
	UTMCampaign   string  `json:"utm_campaign"`
	UTMContent    string  `json:"utm_content"`
	UTMTerm       string  `json:"utm_term"`
	IP            string  `json:"ip"`
}

type LookupResponse struct {
	Success bool       `json:"success"`
	Data    LookupData `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
