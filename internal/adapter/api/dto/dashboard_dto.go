package dto

import (
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
)

// DashboardResponse representa os números do painel e as ações do papel atual
type DashboardResponse struct {
	TotalProducts      int                `json:"total_products"`
	ActiveProducts     int                `json:"active_products"`
	TotalValue         float64            `json:"total_value"`
	ProductsByCategory map[string]int     `json:"products_by_category"`
	TotalAdmins        int                `json:"total_admins"`
	ActiveAdmins       int                `json:"active_admins"`
	RecentProducts     []ProductResponse  `json:"recent_products"`
	Capabilities       []admin.Capability `json:"capabilities"`
	Menu               []admin.MenuItem   `json:"menu"`
}

// NewDashboardResponse monta a resposta do dashboard
func NewDashboardResponse(stats *product.Stats, totalAdmins, activeAdmins int, recent []*product.Product, role admin.Role) DashboardResponse {
	byCategory := stats.ByCategory
	if byCategory == nil {
		byCategory = map[string]int{}
	}

	return DashboardResponse{
		TotalProducts:      stats.Total,
		ActiveProducts:     stats.Active,
		TotalValue:         stats.TotalValue,
		ProductsByCategory: byCategory,
		TotalAdmins:        totalAdmins,
		ActiveAdmins:       activeAdmins,
		RecentProducts:     ToProductResponses(recent),
		Capabilities:       admin.VisibleActions(role),
		Menu:               admin.MenuFor(role),
	}
}
