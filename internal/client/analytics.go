package client

import (
	"context"

	"github.com/elouannasse/youshop-client/internal/domain"
)

type dashboardEnvelope struct {
	Success bool         `json:"success"`
	Stats   dashboardDTO `json:"stats"`
}

type dashboardDTO struct {
	TotalRevenue   float64      `json:"totalRevenue"`
	TotalOrders    int          `json:"totalOrders"`
	TotalProducts  int          `json:"totalProducts"`
	TotalUsers     int          `json:"totalUsers"`
	RecentOrders   []orderDTO   `json:"recentOrders"`
	TopProducts    []productDTO `json:"topProducts"`
	RevenueByMonth []struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
	} `json:"revenueByMonth"`
	OrdersByStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	} `json:"ordersByStatus"`
}

// DashboardStats fetches the admin dashboard overview.
func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var env dashboardEnvelope
	if err := c.get(ctx, "/admin/dashboard", nil, &env); err != nil {
		return domain.DashboardStats{}, err
	}

	stats := domain.DashboardStats{
		TotalRevenue:  domain.EURFromFloat(env.Stats.TotalRevenue),
		TotalOrders:   env.Stats.TotalOrders,
		TotalProducts: env.Stats.TotalProducts,
		TotalUsers:    env.Stats.TotalUsers,
		RecentOrders:  toDomainOrders(env.Stats.RecentOrders),
		TopProducts:   toDomainProducts(env.Stats.TopProducts),
	}

	for _, m := range env.Stats.RevenueByMonth {
		stats.RevenueByMonth = append(stats.RevenueByMonth, domain.MonthlyRevenue{
			Month:   m.Month,
			Revenue: domain.EURFromFloat(m.Revenue),
		})
	}
	for _, s := range env.Stats.OrdersByStatus {
		stats.OrdersByStatus = append(stats.OrdersByStatus, domain.StatusCount{
			Status: domain.OrderStatus(s.Status),
			Count:  s.Count,
		})
	}

	return stats, nil
}
