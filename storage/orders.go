package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listOrdersByRecency()
}

// listOrdersByRecency returns orders newest first. Callers must hold the lock.
func (s *MemStorage) listOrdersByRecency() []models.Order {
	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders
}

func (s *MemStorage) GetOrder(id int) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

// CreateOrder stores the order, one order item per submitted line, and, when
// the order arrives already completed, a linked income/sales ledger entry for
// the grand total. All of it happens in one critical section.
func (s *MemStorage) CreateOrder(in models.InsertOrder, lines []models.OrderLine) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	now := time.Now()
	order := models.Order{
		ID:           nextID(&s.ids.order),
		TableNumber:  in.TableNumber,
		CustomerName: in.CustomerName,
		Status:       status,
		TotalAmount:  in.TotalAmount,
		Tax:          in.Tax,
		GrandTotal:   in.GrandTotal,
		BartenderID:  in.BartenderID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.orders[order.ID] = order

	for _, line := range lines {
		s.createOrderItem(models.InsertOrderItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	if order.Status == models.OrderStatusCompleted {
		s.createTransaction(models.InsertFinancialTransaction{
			TransactionType: models.TransactionIncome,
			Amount:          order.GrandTotal,
			Description:     fmt.Sprintf("Order #%d", order.ID),
			Category:        models.CategorySales,
			PaymentMethod:   "card",
			RelatedOrderID:  order.ID,
		})
	}

	return order, nil
}

// UpdateOrder merges the patch into a copy of the order. A completed order
// cannot be demoted back to pending; that keeps every ledger entry pointing
// at an order that is still completed.
func (s *MemStorage) UpdateOrder(id int, patch models.OrderPatch) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if patch.Status != nil &&
		order.Status == models.OrderStatusCompleted && *patch.Status == models.OrderStatusPending {
		return models.Order{}, ErrInvalidTransition
	}

	if patch.TableNumber != nil {
		order.TableNumber = *patch.TableNumber
	}
	if patch.CustomerName != nil {
		order.CustomerName = *patch.CustomerName
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
	if patch.Tax != nil {
		order.Tax = *patch.Tax
	}
	if patch.GrandTotal != nil {
		order.GrandTotal = *patch.GrandTotal
	}
	if patch.BartenderID != nil {
		order.BartenderID = *patch.BartenderID
	}
	order.UpdatedAt = time.Now()

	s.orders[id] = order
	return order, nil
}

func (s *MemStorage) GetRecentOrders(limit int) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.listOrdersByRecency()
	if limit >= 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

func (s *MemStorage) GetOrderItems(orderID int) []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.OrderItem
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *MemStorage) CreateOrderItem(in models.InsertOrderItem) (models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderItem(in), nil
}

func (s *MemStorage) createOrderItem(in models.InsertOrderItem) models.OrderItem {
	item := models.OrderItem{
		ID:         nextID(&s.ids.orderItem),
		OrderID:    in.OrderID,
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		Price:      in.Price,
		Quantity:   in.Quantity,
	}
	s.orderItems[item.ID] = item
	return item
}
