package click

import (
	"encoding/json"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

// SubmitRequest is the frontend click submission body.
//
// "valor" needs presence tracking: an absent field is a legitimate
// zero-amount click, while an explicit JSON null is a malformed
// submission and must be rejected. encoding/json cannot tell the two
// apart with a plain pointer, hence the custom unmarshaler.
type SubmitRequest struct {
	UniqueClickID string   `json:"unique_click_id"`
	Timestamp     int64    `json:"timestamp"`
	Valor         *float64 `json:"valor"`
	ValorPresent  bool     `json:"-"`
	FBCLID        string   `json:"fbclid"`
	UTMSource     string   `json:"utm_source"`
	UTMMedium     string   `json:"utm_medium"`
	UTMCampaign   string   `json:"utm_campaign"`
	UTMContent    string   `json:"utm_content"`
	UTMTerm       string   `json:"utm_term"`
	IP            string   `json:"ip"`
}

func (r *SubmitRequest) UnmarshalJSON(data []byte) error {
	type alias SubmitRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	_, present := raw["valor"]

	*r = SubmitRequest(decoded)
	r.ValorPresent = present
	return nil
}

// Validate rejects structurally invalid submissions before they reach
// the usecase.
func (r *SubmitRequest) Validate() error {
	if r.UniqueClickID == "" {
		return domain.ErrMissingClickID
	}
	if r.Timestamp == 0 {
		return domain.ErrMissingTimestamp
	}
	if !domain.ValidClickID(r.UniqueClickID) {
		return domain.ErrInvalidClickID
	}
	if r.ValorPresent && r.Valor == nil {
		return domain.ErrNullAmount
	}
	return nil
}

func (r *SubmitRequest) Amount() float64 {
	if r.Valor == nil {
		return 0
	}
	return *r.Valor
}
