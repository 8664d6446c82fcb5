package domain

type MonthlyRevenue struct {
	Month   string
	Revenue Money
}

type StatusCount struct {
	Status OrderStatus
	Count  int
}

// DashboardStats is the admin back-office overview, computed entirely
// by the backend.
type DashboardStats struct {
	TotalRevenue   Money
	TotalOrders    int
	TotalProducts  int
	TotalUsers     int
	RecentOrders   []Order
	TopProducts    []Product
	RevenueByMonth []MonthlyRevenue
	OrdersByStatus []StatusCount
}
