package storage

import (
	"sort"
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

// stockStatus is the single derivation rule for an inventory item's status.
// Both the create and the update path go through it, always against the
// resulting stock and minLevel.
func stockStatus(stock, minLevel int) string {
	if stock <= minLevel {
		return models.StockStatusLow
	}
	return models.StockStatusNormal
}

func (s *MemStorage) GetInventoryItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listInventoryItems()
}

// listInventoryItems returns items in insertion order (ascending id).
// Callers must hold the lock.
func (s *MemStorage) listInventoryItems() []models.InventoryItem {
	items := make([]models.InventoryItem, 0, len(s.inventoryItems))
	for _, item := range s.inventoryItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *MemStorage) GetInventoryItem(id int) (models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.inventoryItems[id]
	if !ok {
		return models.InventoryItem{}, ErrNotFound
	}
	return item, nil
}

func (s *MemStorage) CreateInventoryItem(in models.InsertInventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createInventoryItem(in), nil
}

func (s *MemStorage) createInventoryItem(in models.InsertInventoryItem) models.InventoryItem {
	unitType := in.UnitType
	if unitType == "" {
		unitType = "item"
	}
	item := models.InventoryItem{
		ID:        nextID(&s.ids.inventoryItem),
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		MinLevel:  in.MinLevel,
		Price:     in.Price,
		Status:    stockStatus(in.Stock, in.MinLevel),
		UnitType:  unitType,
		UpdatedAt: time.Now(),
	}
	s.inventoryItems[item.ID] = item
	return item
}

func (s *MemStorage) UpdateInventoryItem(id int, patch models.InventoryItemPatch) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateInventoryItem(id, patch)
}

func (s *MemStorage) updateInventoryItem(id int, patch models.InventoryItemPatch) (models.InventoryItem, error) {
	item, ok := s.inventoryItems[id]
	if !ok {
		return models.InventoryItem{}, ErrNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Stock != nil {
		item.Stock = *patch.Stock
	}
	if patch.MinLevel != nil {
		item.MinLevel = *patch.MinLevel
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.UnitType != nil {
		item.UnitType = *patch.UnitType
	}
	// Status always follows the merged stock/minLevel, even when only one
	// of the two was patched.
	item.Status = stockStatus(item.Stock, item.MinLevel)
	item.UpdatedAt = time.Now()

	s.inventoryItems[id] = item
	return item, nil
}

func (s *MemStorage) DeleteInventoryItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventoryItems[id]; !ok {
		return false
	}
	delete(s.inventoryItems, id)
	return true
}

func (s *MemStorage) GetLowStockItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []models.InventoryItem
	for _, item := range s.listInventoryItems() {
		if item.Status == models.StockStatusLow {
			low = append(low, item)
		}
	}
	return low
}

func (s *MemStorage) GetInventoryActivities() []models.InventoryActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]models.InventoryActivity, 0, len(s.inventoryActivities))
	for _, activity := range s.inventoryActivities {
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool {
		if !activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].Timestamp.After(activities[j].Timestamp)
		}
		return activities[i].ID > activities[j].ID
	})
	return activities
}

// CreateInventoryActivity appends to the activity log. Restock and remove
// activities with a quantity also mutate the referenced item's stock through
// the normal update path, so the item's status is recomputed. A remove that
// would drive stock negative is rejected and no activity is recorded.
func (s *MemStorage) CreateInventoryActivity(in models.InsertInventoryActivity) (models.InventoryActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutates := (in.Action == models.ActivityRestock || in.Action == models.ActivityRemove) && in.Quantity > 0
	if mutates {
		if item, ok := s.inventoryItems[in.ItemID]; ok {
			newStock := item.Stock + in.Quantity
			if in.Action == models.ActivityRemove {
				newStock = item.Stock - in.Quantity
			}
			if newStock < 0 {
				return models.InventoryActivity{}, ErrInsufficientStock
			}
			if _, err := s.updateInventoryItem(item.ID, models.InventoryItemPatch{Stock: &newStock}); err != nil {
				return models.InventoryActivity{}, err
			}
		}
	}

	activity := models.InventoryActivity{
		ID:          nextID(&s.ids.inventoryActivity),
		ItemID:      in.ItemID,
		Action:      in.Action,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
		PerformedBy: in.PerformedBy,
		Timestamp:   time.Now(),
	}
	s.inventoryActivities[activity.ID] = activity
	return activity, nil
}
