package storage

import (
	"sort"
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetReservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReservationsByDate()
}

func (s *MemStorage) listReservationsByDate() []models.Reservation {
	reservations := make([]models.Reservation, 0, len(s.reservations))
	for _, reservation := range s.reservations {
		reservations = append(reservations, reservation)
	}
	sort.Slice(reservations, func(i, j int) bool {
		if !reservations[i].Date.Equal(reservations[j].Date) {
			return reservations[i].Date.Before(reservations[j].Date)
		}
		return reservations[i].ID < reservations[j].ID
	})
	return reservations
}

func (s *MemStorage) GetReservation(id int) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	return reservation, nil
}

func (s *MemStorage) CreateReservation(in models.InsertReservation) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.ReservationStatusConfirmed
	}
	reservation := models.Reservation{
		ID:          nextID(&s.ids.reservation),
		CustomerID:  in.CustomerID,
		Date:        in.Date,
		Time:        in.Time,
		PartySize:   in.PartySize,
		TableNumber: in.TableNumber,
		Status:      status,
		Notes:       in.Notes,
	}
	s.reservations[reservation.ID] = reservation
	return reservation, nil
}

func (s *MemStorage) UpdateReservation(id int, patch models.ReservationPatch) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}

	if patch.CustomerID != nil {
		reservation.CustomerID = *patch.CustomerID
	}
	if patch.Date != nil {
		reservation.Date = *patch.Date
	}
	if patch.Time != nil {
		reservation.Time = *patch.Time
	}
	if patch.PartySize != nil {
		reservation.PartySize = *patch.PartySize
	}
	if patch.TableNumber != nil {
		reservation.TableNumber = *patch.TableNumber
	}
	if patch.Status != nil {
		reservation.Status = *patch.Status
	}
	if patch.Notes != nil {
		reservation.Notes = *patch.Notes
	}

	s.reservations[id] = reservation
	return reservation, nil
}

func (s *MemStorage) DeleteReservation(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return false
	}
	delete(s.reservations, id)
	return true
}

func (s *MemStorage) GetUpcomingReservations(limit int) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	var upcoming []models.Reservation
	for _, reservation := range s.listReservationsByDate() {
		if reservation.Date.After(now) {
			upcoming = append(upcoming, reservation)
		}
	}
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
