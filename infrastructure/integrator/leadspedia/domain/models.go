package lpdomain

type Vertical struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

type Affiliate struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

// Advertiser é o comprador dos leads
type Advertiser struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Status  string  `json:"status" yaml:"status"`
	Email   *string `json:"email" yaml:"email,omitempty"`
	Company *string `json:"company" yaml:"company,omitempty"`
}

// Contract é um contrato de distribuição de leads com um comprador
type Contract struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	AdvertiserID   string  `json:"advertiser_id" yaml:"advertiser_id"`
	AdvertiserName string  `json:"advertiser_name" yaml:"advertiser_name"`
	Status         string  `json:"status" yaml:"status"`
	Price          float64 `json:"price" yaml:"price"`
	VerticalID     *string `json:"vertical_id" yaml:"vertical_id,omitempty"`
	VerticalName   *string `json:"vertical_name" yaml:"vertical_name,omitempty"`
	DailyCap       *int    `json:"daily_cap" yaml:"daily_cap,omitempty"`
	LeadsToday     *int    `json:"leads_today" yaml:"leads_today,omitempty"`
}

func statusOrActive(data map[string]any) string {
	if status := AsString(First(data, "status")); status != "" {
		return status
	}
	return "active"
}

func ParseVertical(data map[string]any) Vertical {
	return Vertical{
		ID:     AsString(First(data, "verticalID", "id")),
		Name:   AsString(First(data, "verticalName", "name")),
		Status: statusOrActive(data),
	}
}

func ParseAffiliate(data map[string]any) Affiliate {
	return Affiliate{
		ID:     AsString(First(data, "affiliateID", "id")),
		Name:   AsString(First(data, "affiliateName", "name")),
		Status: statusOrActive(data),
	}
}

func ParseAdvertiser(data map[string]any) Advertiser {
	return Advertiser{
		ID:      AsString(First(data, "advertiserID", "id")),
		Name:    AsString(First(data, "advertiserName", "name")),
		Status:  statusOrActive(data),
		Email:   OptionalString(data["email"]),
		Company: OptionalString(data["company"]),
	}
}

func ParseContract(data map[string]any) Contract {
	return Contract{
		ID:             AsString(First(data, "contractID", "id")),
		Name:           AsString(First(data, "contractName", "name")),
		AdvertiserID:   AsString(First(data, "advertiserID")),
		AdvertiserName: AsString(First(data, "advertiserName")),
		Status:         statusOrActive(data),
		Price:          SafeFloat(First(data, "price", "pricePerLead")),
		VerticalID:     OptionalString(First(data, "verticalID")),
		VerticalName:   OptionalString(data["verticalName"]),
		DailyCap:       OptionalInt(First(data, "dailyCap", "leadsDaily")),
		LeadsToday:     OptionalInt(First(data, "leadsToday", "todayLeads")),
	}
}

func objectList(raw any) []map[string]any {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	items := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// ListData extrai os itens de uma listagem (advertisers, contratos): response.data quando
// response é um objeto, senão data
func ListData(body any) []map[string]any {
	payload, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := payload["response"].(map[string]any); ok {
		return objectList(inner["data"])
	}
	return objectList(payload["data"])
}

// ReportData extrai os itens do primeiro campo preenchido entre keys; um corpo que já é
// lista é usado diretamente
func ReportData(body any, keys ...string) []map[string]any {
	if list, ok := body.([]any); ok {
		return objectList(list)
	}
	payload, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	raw := First(payload, keys...)
	if inner, ok := raw.(map[string]any); ok {
		raw = inner["data"]
	}
	return objectList(raw)
}

// PageData extrai os itens de uma página de GetPaged: response.data, response como lista
// ou, na ausência de response, data
func PageData(page map[string]any) []map[string]any {
	switch response := page["response"].(type) {
	case map[string]any:
		return objectList(response["data"])
	case []any:
		return objectList(response)
	}
	return objectList(page["data"])
}
