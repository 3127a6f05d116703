package storage

import (
	"sort"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetMenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMenuItems()
}

func (s *MemStorage) listMenuItems() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		items = append(items, cloneMenuItem(item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// cloneMenuItem detaches the ingredients slice so a returned record never
// shares backing storage with the stored one.
func cloneMenuItem(item models.MenuItem) models.MenuItem {
	item.Ingredients = append([]string(nil), item.Ingredients...)
	return item
}

func (s *MemStorage) GetMenuItem(id int) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}
	return cloneMenuItem(item), nil
}

// GetMenuItemsByCategory returns active items only; soft-disabled items stay
// out of the POS picker but remain resolvable by id for old orders.
func (s *MemStorage) GetMenuItemsByCategory(category string) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.MenuItem
	for _, item := range s.listMenuItems() {
		if item.Category == category && item.IsActive {
			items = append(items, item)
		}
	}
	return items
}

func (s *MemStorage) CreateMenuItem(in models.InsertMenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createMenuItem(in), nil
}

func (s *MemStorage) createMenuItem(in models.InsertMenuItem) models.MenuItem {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	item := models.MenuItem{
		ID:          nextID(&s.ids.menuItem),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Ingredients: append([]string(nil), in.Ingredients...),
		IsActive:    isActive,
	}
	s.menuItems[item.ID] = item
	return cloneMenuItem(item)
}

func (s *MemStorage) UpdateMenuItem(id int, patch models.MenuItemPatch) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Ingredients != nil {
		item.Ingredients = append([]string(nil), patch.Ingredients...)
	}
	if patch.IsActive != nil {
		item.IsActive = *patch.IsActive
	}

	s.menuItems[id] = item
	return cloneMenuItem(item), nil
}

func (s *MemStorage) DeleteMenuItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuItems[id]; !ok {
		return false
	}
	delete(s.menuItems, id)
	return true
}
