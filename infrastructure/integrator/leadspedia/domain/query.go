package lpdomain

import "time"

const dateLayout = "2006-01-02"

// LeadQuery filtra os endpoints leads/getAll.do, getSold.do e getDelivered.do
type LeadQuery struct {
	Since       time.Time
	Until       time.Time
	AffiliateID string
	CampaignID  string
	VerticalID  string
	Status      string
}

func (q LeadQuery) Params() map[string]string {
	params := map[string]string{
		"fromDate": q.Since.Format(dateLayout),
		"toDate":   q.Until.Format(dateLayout),
	}
	setIf(params, "affiliateID", q.AffiliateID)
	setIf(params, "campaignID", q.CampaignID)
	setIf(params, "verticalID", q.VerticalID)
	setIf(params, "status", q.Status)
	return params
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// KeyMaterial é a base da chave de cache dos leads
func (q LeadQuery) KeyMaterial() map[string]any {
	return map[string]any{
		"source":       "leadspedia_leads",
		"since":        q.Since.Format(dateLayout),
		"until":        q.Until.Format(dateLayout),
		"affiliate_id": optional(q.AffiliateID),
		"campaign_id":  optional(q.CampaignID),
		"vertical_id":  optional(q.VerticalID),
		"status":       optional(q.Status),
	}
}

// AffiliateClickQuery filtra affiliateClicks/getAll. O subID costuma carregar o lead id do Meta.
type AffiliateClickQuery struct {
	Since       time.Time
	Until       time.Time
	AffiliateID string
	OfferID     string
	SubID       string
}

func (q AffiliateClickQuery) Params() map[string]string {
	params := map[string]string{
		"fromDate": q.Since.Format(dateLayout),
		"toDate":   q.Until.Format(dateLayout),
	}
	setIf(params, "affiliateID", q.AffiliateID)
	setIf(params, "offerID", q.OfferID)
	setIf(params, "subID", q.SubID)
	return params
}

// ReturnQuery filtra leads/getReturns.do; Until é opcional
type ReturnQuery struct {
	Since        time.Time
	Until        *time.Time
	CampaignID   string
	AffiliateID  string
	VerticalID   string
	AdvertiserID string
	ContractID   string

	// Pending, Approved, Rejected, Attempted Contact ou Researching
	Status string
}

func (q ReturnQuery) Params() map[string]string {
	params := map[string]string{
		"fromDate": q.Since.Format(dateLayout),
	}
	if q.Until != nil {
		params["toDate"] = q.Until.Format(dateLayout)
	}
	setIf(params, "campaignID", q.CampaignID)
	setIf(params, "affiliateID", q.AffiliateID)
	setIf(params, "verticalID", q.VerticalID)
	setIf(params, "advertiserID", q.AdvertiserID)
	setIf(params, "contractID", q.ContractID)
	setIf(params, "status", q.Status)
	return params
}

func setIf(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}
