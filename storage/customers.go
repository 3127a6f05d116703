package storage

import (
	"sort"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listCustomers()
}

func (s *MemStorage) listCustomers() []models.Customer {
	customers := make([]models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers
}

func (s *MemStorage) GetCustomer(id int) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return customer, nil
}

func (s *MemStorage) CreateCustomer(in models.InsertCustomer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vipStatus := in.VIPStatus
	if vipStatus == "" {
		vipStatus = models.VIPStatusRegular
	}
	customer := models.Customer{
		ID:            nextID(&s.ids.customer),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		DOB:           in.DOB,
		VIPStatus:     vipStatus,
		LoyaltyPoints: in.LoyaltyPoints,
		LastVisit:     in.LastVisit,
		Notes:         in.Notes,
	}
	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *MemStorage) UpdateCustomer(id int, patch models.CustomerPatch) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.DOB != nil {
		customer.DOB = patch.DOB
	}
	if patch.VIPStatus != nil {
		customer.VIPStatus = *patch.VIPStatus
	}
	if patch.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *patch.LoyaltyPoints
	}
	if patch.LastVisit != nil {
		customer.LastVisit = patch.LastVisit
	}
	if patch.Notes != nil {
		customer.Notes = *patch.Notes
	}

	s.customers[id] = customer
	return customer, nil
}

func (s *MemStorage) DeleteCustomer(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	return true
}

func (s *MemStorage) GetVIPCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var vips []models.Customer
	for _, customer := range s.listCustomers() {
		if customer.VIPStatus == models.VIPStatusVIP {
			vips = append(vips, customer)
		}
	}
	return vips
}
