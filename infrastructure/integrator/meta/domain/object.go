package metadomain

import (
	"sort"
	"strings"
)

// Object representa uma campanha, conjunto de anúncios ou anúncio
type Object struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// IsLive indica se o objeto está ativo (status vazio conta como ativo)
func (o Object) IsLive() bool {
	return o.Status == "" || o.Status == "ACTIVE"
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// RawObject é o formato retornado pelos endpoints /campaigns, /adsets e /ads
type RawObject struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	EffectiveStatus string  `json:"effective_status"`
}

// ToObjects converte e ordena pelo nome, ignorando registros sem id
func ToObjects(raw []RawObject) []Object {
	objects := make([]Object, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		name := r.ID
		if r.Name != nil {
			name = *r.Name
		}
		objects = append(objects, Object{ID: r.ID, Name: name, Status: r.EffectiveStatus})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return strings.ToLower(objects[i].Name) < strings.ToLower(objects[j].Name)
	})
	return objects
}

// FilterByStatus aplica os filtros "ativos" e "pausados" do painel
func FilterByStatus(objects []Object, showLive, showPaused bool) []Object {
	if showLive && showPaused {
		return objects
	}

	filtered := make([]Object, 0, len(objects))
	for _, o := range objects {
		if (showLive && o.IsLive()) || (showPaused && !o.IsLive()) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
