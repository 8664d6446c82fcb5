package client

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strconv"

	"github.com/elouannasse/youshop-client/internal/domain"
	"github.com/elouannasse/youshop-client/internal/port"
)

var _ port.OrderGateway = (*Client)(nil)

type ordersEnvelope struct {
	Success    bool          `json:"success"`
	Orders     []orderDTO    `json:"orders"`
	Pagination paginationDTO `json:"pagination"`
}

type orderEnvelope struct {
	Success bool     `json:"success"`
	Order   orderDTO `json:"order"`
}

type createOrderBody struct {
	Items           []orderLineDTO `json:"items"`
	ShippingAddress addressDTO     `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	Notes           string         `json:"notes,omitempty"`
}

// OrderListFilter narrows the admin order listing.
type OrderListFilter struct {
	Status    domain.OrderStatus
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (c *Client) Orders(ctx context.Context, page, limit int) ([]domain.Order, domain.Pagination, error) {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var env ordersEnvelope
	if err := c.get(ctx, "/orders", params, &env); err != nil {
		return nil, domain.Pagination{}, err
	}

	return toDomainOrders(env.Orders), toDomainPagination(env.Pagination), nil
}

func (c *Client) Order(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	var env orderEnvelope
	if err := c.get(ctx, "/orders/"+id, nil, &env); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}

func (c *Client) OrderByNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	if orderNumber == "" {
		return domain.Order{}, fmt.Errorf("orderNumber is empty")
	}

	var env orderEnvelope
	if err := c.get(ctx, "/orders/number/"+orderNumber, nil, &env); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}

// Calculate asks the backend to validate stock and recompute totals
// for the given lines. The result is the authoritative figure; locally
// computed totals are display hints only.
func (c *Client) Calculate(ctx context.Context, lines iter.Seq[domain.OrderLine]) (domain.CartTotals, error) {
	items := toOrderLineDTOs(lines)
	if len(items) == 0 {
		return domain.CartTotals{}, fmt.Errorf("no lines to calculate")
	}

	body := map[string]any{"items": items}

	var env orderEnvelope
	if err := c.send(ctx, http.MethodPost, "/orders/calculate", body, &env, nil); err != nil {
		return domain.CartTotals{}, err
	}
	return toDomainTotals(env.Order), nil
}

func (c *Client) CreateOrder(ctx context.Context, req port.CreateOrderRequest) (domain.Order, error) {
	body := createOrderBody{
		Items:           toOrderLineDTOs(req.Lines),
		ShippingAddress: toAddressDTO(req.ShippingAddress),
		PaymentMethod:   string(req.PaymentMethod),
		Notes:           req.Notes,
	}
	if len(body.Items) == 0 {
		return domain.Order{}, fmt.Errorf("no lines to order")
	}

	var headers map[string]string
	if req.IdempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": req.IdempotencyKey}
	}

	var env orderEnvelope
	if err := c.send(ctx, http.MethodPost, "/orders", body, &env, headers); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}

func (c *Client) PayOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	var env orderEnvelope
	if err := c.send(ctx, http.MethodPatch, "/orders/"+id+"/pay", nil, &env, nil); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}

func (c *Client) CancelOrder(ctx context.Context, id, reason string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}

	var env orderEnvelope
	if err := c.send(ctx, http.MethodPost, "/orders/"+id+"/cancel", body, &env, nil); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}

// Admin operations.

func (c *Client) AllOrders(ctx context.Context, filter OrderListFilter) ([]domain.Order, domain.Pagination, error) {
	params := map[string]string{}
	if filter.Status != "" {
		params["status"] = string(filter.Status)
	}
	if filter.StartDate != "" {
		params["startDate"] = filter.StartDate
	}
	if filter.EndDate != "" {
		params["endDate"] = filter.EndDate
	}
	if filter.Page > 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}

	var env ordersEnvelope
	if err := c.get(ctx, "/admin/orders", params, &env); err != nil {
		return nil, domain.Pagination{}, err
	}

	return toDomainOrders(env.Orders), toDomainPagination(env.Pagination), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	body := map[string]string{"status": string(status)}

	var env orderEnvelope
	if err := c.send(ctx, http.MethodPatch, "/orders/"+id+"/status", body, &env, nil); err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(env.Order), nil
}
