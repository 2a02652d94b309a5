package lpdomain

import (
	"strings"
	"time"
	"unicode"
)

// LeadRecord é a visão tabular de um lead usada nas tabelas e no CSV
type LeadRecord struct {
	LeadID       string     `json:"lead_id"`
	ExternalID   *string    `json:"external_id"`
	Status       string     `json:"status"`
	Revenue      float64    `json:"revenue"`
	Payout       float64    `json:"payout"`
	Cost         float64    `json:"cost"`
	NetRevenue   float64    `json:"net_revenue"`
	MarginPct    *float64   `json:"margin_pct"`
	IsSold       bool       `json:"is_sold"`
	BuyerName    *string    `json:"buyer_name"`
	CreatedAt    *time.Time `json:"created_at"`
	SoldAt       *time.Time `json:"sold_at"`
	Vertical     *string    `json:"vertical"`
	Campaign     *string    `json:"campaign"`
	AffiliateID  string     `json:"affiliate_id"`
	SubID        *string    `json:"sub_id"`
	MetaCampaign string     `json:"meta_campaign"`
	MetaAdset    string     `json:"meta_adset"`
	MetaAd       string     `json:"meta_ad"`
	MetaPlatform string     `json:"meta_platform"`
	HasMetaMatch bool       `json:"has_meta_match"`
	Problems     string     `json:"problems"`
}

func LeadRecords(dispositions []LeadDisposition) []LeadRecord {
	records := make([]LeadRecord, 0, len(dispositions))
	for _, d := range dispositions {
		records = append(records, LeadRecord{
			LeadID:       d.LeadID,
			ExternalID:   d.ExternalID,
			Status:       d.Status,
			Revenue:      d.Revenue,
			Payout:       d.Payout,
			Cost:         d.Cost,
			NetRevenue:   d.NetRevenue(),
			MarginPct:    d.MarginPct(),
			IsSold:       d.IsSold(),
			BuyerName:    d.BuyerName,
			CreatedAt:    d.CreatedAt,
			SoldAt:       d.SoldAt,
			Vertical:     d.Vertical,
			Campaign:     d.Campaign,
			AffiliateID:  d.AffiliateID,
			SubID:        d.SubID,
			MetaCampaign: d.MetaCampaignName(),
			MetaAdset:    d.MetaAdsetName(),
			MetaAd:       d.MetaAdName(),
			MetaPlatform: d.MetaPlatform(),
			HasMetaMatch: d.HasMetaAttribution(),
			Problems:     strings.Join(d.Problems(), ", "),
		})
	}
	return records
}

const missing = "—"

const leadLogTimeLayout = "01/02 15:04"

var statusIcons = map[string]string{
	StatusSold:     "✅",
	StatusReturned: "🔄",
	StatusRejected: "❌",
	StatusPending:  "⏳",
	StatusUnsold:   "⚠️",
	StatusTrashed:  "🗑️",
	StatusScrubbed: "🧹",
}

// LeadLogEntry é uma linha do Lead Log do painel
type LeadLogEntry struct {
	LeadID       string   `json:"Lead ID"`
	Status       string   `json:"Status"`
	MetaCampaign string   `json:"Meta Campaign"`
	AdSet        string   `json:"Ad Set"`
	Ad           string   `json:"Ad"`
	Buyer        string   `json:"Buyer"`
	Contract     string   `json:"Contract"`
	Revenue      float64  `json:"Revenue"`
	Payout       float64  `json:"Payout"`
	Margin       float64  `json:"Margin"`
	MarginPct    *float64 `json:"Margin %"`
	Created      string   `json:"Created"`
	Sold         string   `json:"Sold"`
	Problems     string   `json:"Problems"`
	MessageToken string   `json:"Message Token"`
	Vertical     string   `json:"Vertical"`
}

// StatusLabel devolve o status com ícone, por exemplo "✅ Sold"
func StatusLabel(status string) string {
	icon, ok := statusIcons[status]
	if !ok {
		icon = "❓"
	}
	return icon + " " + titleCase(status)
}

// titleCase coloca em maiúscula a primeira letra de cada palavra e o resto em minúscula
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func ptrOrMissing(s *string) string {
	if s == nil {
		return missing
	}
	return orMissing(*s)
}

func timeOrMissing(t *time.Time) string {
	if t == nil {
		return missing
	}
	return t.Format(leadLogTimeLayout)
}

func LeadLog(dispositions []LeadDisposition) []LeadLogEntry {
	entries := make([]LeadLogEntry, 0, len(dispositions))
	for _, d := range dispositions {
		entries = append(entries, LeadLogEntry{
			LeadID:       d.LeadID,
			Status:       StatusLabel(d.Status),
			MetaCampaign: orMissing(d.MetaCampaignName()),
			AdSet:        orMissing(d.MetaAdsetName()),
			Ad:           orMissing(d.MetaAdName()),
			Buyer:        ptrOrMissing(d.BuyerName),
			Contract:     ptrOrMissing(d.ContractName),
			Revenue:      d.Revenue,
			Payout:       d.Payout,
			Margin:       d.NetRevenue(),
			MarginPct:    d.MarginPct(),
			Created:      timeOrMissing(d.CreatedAt),
			Sold:         timeOrMissing(d.SoldAt),
			Problems:     orMissing(strings.Join(d.Problems(), ", ")),
			MessageToken: ptrOrMissing(d.ReturnReason),
			Vertical:     ptrOrMissing(d.Vertical),
		})
	}
	return entries
}
