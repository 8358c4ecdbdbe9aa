// File: internal/model/analytics.go
package model

import "strings"

// ChartPoint is one bucket of GET /analytics/sales-data.
type ChartPoint struct {
	Name     string  `json:"name"`
	Ventas   float64 `json:"ventas"`
	Usuarios float64 `json:"usuarios"`
}

// TopProduct is one slice of GET /analytics/top-products.
type TopProduct struct {
	Name   string  `json:"name"`
	Ventas float64 `json:"ventas"`
}

// ActivityEntry is one row of GET /analytics/activity.
type ActivityEntry struct {
	ID     int     `json:"id"`
	User   string  `json:"user"`
	Action string  `json:"action"`
	Amount Display `json:"amount,omitempty"`
	Time   string  `json:"time"`
}

// Initials returns the avatar letters for the entry; system entries
// without a user read "SY".
func (a ActivityEntry) Initials() string {
	if a.User == "" {
		return "SY"
	}
	var out []rune
	for _, part := range strings.Fields(a.User) {
		out = append(out, []rune(part)[0])
	}
	return string(out)
}

// Stats is the body of GET /stats.
type Stats struct {
	TotalSales  float64 `json:"totalSales"`
	TotalUsers  int     `json:"totalUsers"`
	TotalOrders int     `json:"totalOrders"`
}
