package storage

import (
	"sort"
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEventsByDate()
}

// listEventsByDate returns events soonest first. Callers must hold the lock.
func (s *MemStorage) listEventsByDate() []models.Event {
	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
	return events
}

func (s *MemStorage) GetEvent(id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return event, nil
}

func (s *MemStorage) CreateEvent(in models.InsertEvent) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.EventStatusUpcoming
	}
	event := models.Event{
		ID:          nextID(&s.ids.event),
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Performer:   in.Performer,
		EventType:   in.EventType,
		RSVPCount:   in.RSVPCount,
		Status:      status,
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *MemStorage) UpdateEvent(id int, patch models.EventPatch) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}

	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		event.EndTime = *patch.EndTime
	}
	if patch.Performer != nil {
		event.Performer = *patch.Performer
	}
	if patch.EventType != nil {
		event.EventType = *patch.EventType
	}
	if patch.RSVPCount != nil {
		event.RSVPCount = *patch.RSVPCount
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}

	s.events[id] = event
	return event, nil
}

func (s *MemStorage) DeleteEvent(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	return true
}

// GetUpcomingEvents returns events strictly after now, soonest first.
func (s *MemStorage) GetUpcomingEvents(limit int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	var upcoming []models.Event
	for _, event := range s.listEventsByDate() {
		if event.Date.After(now) {
			upcoming = append(upcoming, event)
		}
	}
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
