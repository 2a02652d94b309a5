package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateRange é um intervalo fechado de dias
type DateRange struct {
	Since time.Time
	Until time.Time
}

func (d DateRange) SinceString() string { return d.Since.Format(DateLayout) }
func (d DateRange) UntilString() string { return d.Until.Format(DateLayout) }

// Days retorna a quantidade de dias do intervalo, contando as duas pontas
func (d DateRange) Days() int {
	return int(d.Until.Sub(d.Since).Hours()/24) + 1
}

// Previous retorna o intervalo imediatamente anterior com a mesma duração
func (d DateRange) Previous() DateRange {
	days := d.Days()
	until := d.Since.AddDate(0, 0, -1)
	return DateRange{Since: until.AddDate(0, 0, -(days - 1)), Until: until}
}

// ParseDateRange lê "since" e "until". Sem datas, usa os últimos lookbackDays até hoje.
func ParseDateRange(since, until string, lookbackDays int, now time.Time) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	r := DateRange{Since: today.AddDate(0, 0, -lookbackDays), Until: today}

	if since != "" {
		t, err := time.Parse(DateLayout, since)
		if err != nil {
			return DateRange{}, fmt.Errorf("data inicial inválida %q: %w", since, err)
		}
		r.Since = t
	}
	if until != "" {
		t, err := time.Parse(DateLayout, until)
		if err != nil {
			return DateRange{}, fmt.Errorf("data final inválida %q: %w", until, err)
		}
		r.Until = t
	}

	if r.Until.Before(r.Since) {
		return DateRange{}, fmt.Errorf("data final %s anterior à data inicial %s", r.UntilString(), r.SinceString())
	}
	return r, nil
}

// PresetRange traduz os atalhos do painel (7d, 14d, 30d) em intervalos
func PresetRange(preset string, now time.Time) (DateRange, bool) {
	days := map[string]int{"7d": 7, "14d": 14, "30d": 30}
	n, ok := days[preset]
	if !ok {
		return DateRange{}, false
	}
	r, _ := ParseDateRange("", "", n, now)
	return r, true
}
