package lpdomain

import (
	"strings"
	"time"
)

// Source indica de qual endpoint veio o lead, o que muda a derivação do status
type Source int

const (
	SourceDefault Source = iota
	SourceSold
	SourceDelivered
	SourceAll
)

const (
	StatusSold     = "sold"
	StatusReturned = "returned"
	StatusRejected = "rejected"
	StatusPending  = "pending"
	StatusUnsold   = "unsold"
	StatusTrashed  = "trashed"
	StatusScrubbed = "scrubbed"
	StatusUnknown  = "unknown"
)

// LeadDisposition é o resultado da venda de um lead no Leadspedia
type LeadDisposition struct {
	LeadID       string         `json:"lead_id"`
	ExternalID   *string        `json:"external_id"`
	Status       string         `json:"status"`
	Revenue      float64        `json:"revenue"`
	Payout       float64        `json:"payout"`
	Cost         float64        `json:"cost"`
	BuyerName    *string        `json:"buyer_name"`
	ContractName *string        `json:"contract_name"`
	CreatedAt    *time.Time     `json:"created_at"`
	SoldAt       *time.Time     `json:"sold_at"`
	DeliveredAt  *time.Time     `json:"delivered_at"`
	Vertical     *string        `json:"vertical"`
	Campaign     *string        `json:"campaign"`
	AffiliateID  string         `json:"affiliate_id"`
	SubID        *string        `json:"sub_id"`
	ReturnReason *string        `json:"return_reason"`
	Raw          map[string]any `json:"-"`
}

func yes(data map[string]any, key string) bool {
	return strings.ToLower(AsString(data[key])) == "yes"
}

func deriveStatus(data map[string]any, source Source) string {
	returned := yes(data, "returned")

	switch source {
	case SourceSold:
		if returned {
			return StatusReturned
		}
		return StatusSold
	case SourceDelivered:
		soldID := strings.TrimSpace(AsString(First(data, "soldID", "sold_id")))
		switch {
		case returned:
			return StatusReturned
		case soldID != "":
			return StatusSold
		}
		return StatusUnsold
	case SourceAll:
		switch {
		case returned:
			return StatusReturned
		case yes(data, "sold"):
			return StatusSold
		case yes(data, "trash"):
			return StatusTrashed
		case yes(data, "scrubbed"):
			return StatusScrubbed
		}
		return StatusUnsold
	}

	if status := AsString(First(data, "status", "disposition")); status != "" {
		return strings.ToLower(status)
	}

	sold := strings.ToLower(AsString(data["sold"]))
	switch {
	case returned:
		return StatusReturned
	case sold == "yes":
		return StatusSold
	case sold == "no":
		return StatusPending
	}
	return StatusUnknown
}

// ParseDisposition converte uma linha da API em LeadDisposition
func ParseDisposition(data map[string]any, source Source) LeadDisposition {
	return LeadDisposition{
		LeadID:       AsString(First(data, "leadID", "id")),
		ExternalID:   OptionalString(First(data, "externalID", "sub_id", "subID")),
		Status:       deriveStatus(data, source),
		Revenue:      SafeFloat(First(data, "price", "RPL", "revenue", "soldPrice")),
		Payout:       SafeFloat(First(data, "payout", "affiliatePayout", "PPL")),
		Cost:         SafeFloat(First(data, "CPL", "cost", "leadCost")),
		BuyerName:    OptionalString(First(data, "buyerName", "buyer")),
		ContractName: OptionalString(First(data, "contractName", "contract")),
		CreatedAt:    ParseDateTime(First(data, "createdOn", "createdAt", "created")),
		SoldAt:       ParseDateTime(First(data, "dateSold", "soldAt", "soldDate")),
		DeliveredAt:  ParseDateTime(First(data, "dateDelivered", "deliveredAt")),
		Vertical:     OptionalString(First(data, "verticalName", "vertical")),
		Campaign:     OptionalString(First(data, "campaignName", "campaign")),
		AffiliateID:  AsString(First(data, "affiliateID", "affiliate_id")),
		SubID:        OptionalString(First(data, "subID", "sub_id", "subId", "s1")),
		ReturnReason: OptionalString(First(data, "lp_post_response", "disposition", "returnReason", "return_reason", "rejectReason")),
		Raw:          data,
	}
}

// ParseDispositions converte todas as linhas recebidas
func ParseDispositions(rows []map[string]any, source Source) []LeadDisposition {
	dispositions := make([]LeadDisposition, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		dispositions = append(dispositions, ParseDisposition(row, source))
	}
	return dispositions
}

func (d LeadDisposition) statusIn(statuses ...string) bool {
	for _, s := range statuses {
		if d.Status == s {
			return true
		}
	}
	return false
}

func (d LeadDisposition) IsSold() bool {
	return d.statusIn(StatusSold, "accepted", "approved")
}

func (d LeadDisposition) IsRejected() bool {
	return d.statusIn(StatusRejected, "declined", StatusReturned, StatusTrashed, StatusScrubbed)
}

func (d LeadDisposition) IsUnsold() bool {
	return d.statusIn(StatusUnsold, StatusTrashed, StatusScrubbed, StatusPending)
}

func (d LeadDisposition) IsPending() bool {
	return d.statusIn(StatusPending, "new", "queued")
}

// NetRevenue é a receita menos o repasse ao afiliado
func (d LeadDisposition) NetRevenue() float64 {
	return d.Revenue - d.Payout
}

// MarginPct é nil quando não há receita
func (d LeadDisposition) MarginPct() *float64 {
	if d.Revenue <= 0 {
		return nil
	}
	m := d.NetRevenue() / d.Revenue * 100
	return &m
}

func (d LeadDisposition) rawSub(n string) string {
	return AsString(First(d.Raw, "lp_s"+n, "s"+n))
}

// Atribuição do Meta gravada nos sub ids: s4 campanha, s3 conjunto, s2 anúncio, s5 plataforma
func (d LeadDisposition) MetaCampaignName() string { return d.rawSub("4") }
func (d LeadDisposition) MetaAdsetName() string    { return d.rawSub("3") }
func (d LeadDisposition) MetaAdName() string       { return d.rawSub("2") }
func (d LeadDisposition) MetaPlatform() string     { return d.rawSub("5") }

func (d LeadDisposition) HasMetaAttribution() bool {
	return d.MetaCampaignName() != ""
}

// Problems lista os indicadores de problema do lead, na ordem exibida no painel
func (d LeadDisposition) Problems() []string {
	var issues []string
	if d.IsRejected() {
		issues = append(issues, "returned")
	}
	if d.IsUnsold() {
		issues = append(issues, "unsold")
	}
	if d.Status == StatusPending {
		issues = append(issues, "pending_return")
	}
	if d.Revenue > 0 && d.NetRevenue() < 0 {
		issues = append(issues, "negative_margin")
	}
	if !d.HasMetaAttribution() {
		issues = append(issues, "no_meta_match")
	}
	if d.ReturnReason != nil && *d.ReturnReason != "" {
		issues = append(issues, "has_rejection_reason")
	}
	return issues
}
