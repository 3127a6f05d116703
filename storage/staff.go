package storage

import (
	"sort"
	"time"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetStaffMembers() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listStaffMembers()
}

func (s *MemStorage) listStaffMembers() []models.Staff {
	members := make([]models.Staff, 0, len(s.staffMembers))
	for _, member := range s.staffMembers {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}

func (s *MemStorage) GetStaffMember(id int) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.staffMembers[id]
	if !ok {
		return models.Staff{}, ErrNotFound
	}
	return member, nil
}

func (s *MemStorage) CreateStaffMember(in models.InsertStaff) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.StaffStatusActive
	}
	startDate := time.Now()
	if in.StartDate != nil {
		startDate = *in.StartDate
	}
	member := models.Staff{
		ID:               nextID(&s.ids.staff),
		Name:             in.Name,
		Role:             in.Role,
		Status:           status,
		Email:            in.Email,
		Phone:            in.Phone,
		EmergencyContact: in.EmergencyContact,
		StartDate:        startDate,
		EmployeeID:       in.EmployeeID,
		HourlyRate:       in.HourlyRate,
	}
	s.staffMembers[member.ID] = member
	return member, nil
}

func (s *MemStorage) UpdateStaffMember(id int, patch models.StaffPatch) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.staffMembers[id]
	if !ok {
		return models.Staff{}, ErrNotFound
	}

	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Role != nil {
		member.Role = *patch.Role
	}
	if patch.Status != nil {
		member.Status = *patch.Status
	}
	if patch.Email != nil {
		member.Email = *patch.Email
	}
	if patch.Phone != nil {
		member.Phone = *patch.Phone
	}
	if patch.EmergencyContact != nil {
		member.EmergencyContact = *patch.EmergencyContact
	}
	if patch.StartDate != nil {
		member.StartDate = *patch.StartDate
	}
	if patch.EmployeeID != nil {
		member.EmployeeID = *patch.EmployeeID
	}
	if patch.HourlyRate != nil {
		member.HourlyRate = *patch.HourlyRate
	}

	s.staffMembers[id] = member
	return member, nil
}

func (s *MemStorage) DeleteStaffMember(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staffMembers[id]; !ok {
		return false
	}
	delete(s.staffMembers, id)
	return true
}

func (s *MemStorage) GetStaffShifts() []models.StaffShift {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shifts := make([]models.StaffShift, 0, len(s.staffShifts))
	for _, shift := range s.staffShifts {
		shifts = append(shifts, shift)
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].ID < shifts[j].ID })
	return shifts
}

func (s *MemStorage) GetStaffShiftsByStaffID(staffID int) []models.StaffShift {
	var byStaff []models.StaffShift
	for _, shift := range s.GetStaffShifts() {
		if shift.StaffID == staffID {
			byStaff = append(byStaff, shift)
		}
	}
	return byStaff
}

// shiftSlotTaken reports whether another shift already occupies the same
// (staff, day, weekOf) slot. Callers must hold the lock.
func (s *MemStorage) shiftSlotTaken(staffID int, day string, weekOf *time.Time, excludeID int) bool {
	for _, shift := range s.staffShifts {
		if shift.ID == excludeID || shift.StaffID != staffID || shift.Day != day {
			continue
		}
		if (shift.WeekOf == nil) != (weekOf == nil) {
			continue
		}
		if shift.WeekOf == nil || shift.WeekOf.Equal(*weekOf) {
			return true
		}
	}
	return false
}

func (s *MemStorage) CreateStaffShift(in models.InsertStaffShift) (models.StaffShift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shiftSlotTaken(in.StaffID, in.Day, in.WeekOf, 0) {
		return models.StaffShift{}, ErrShiftConflict
	}
	shift := models.StaffShift{
		ID:      nextID(&s.ids.staffShift),
		StaffID: in.StaffID,
		Day:     in.Day,
		Shift:   in.Shift,
		WeekOf:  in.WeekOf,
	}
	s.staffShifts[shift.ID] = shift
	return shift, nil
}

func (s *MemStorage) UpdateStaffShift(id int, patch models.StaffShiftPatch) (models.StaffShift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, ok := s.staffShifts[id]
	if !ok {
		return models.StaffShift{}, ErrNotFound
	}

	if patch.StaffID != nil {
		shift.StaffID = *patch.StaffID
	}
	if patch.Day != nil {
		shift.Day = *patch.Day
	}
	if patch.Shift != nil {
		shift.Shift = *patch.Shift
	}
	if patch.WeekOf != nil {
		shift.WeekOf = patch.WeekOf
	}
	if s.shiftSlotTaken(shift.StaffID, shift.Day, shift.WeekOf, id) {
		return models.StaffShift{}, ErrShiftConflict
	}

	s.staffShifts[id] = shift
	return shift, nil
}

func (s *MemStorage) DeleteStaffShift(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staffShifts[id]; !ok {
		return false
	}
	delete(s.staffShifts, id)
	return true
}

func (s *MemStorage) GetStaffPerformance() []models.StaffPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listStaffPerformance()
}

func (s *MemStorage) listStaffPerformance() []models.StaffPerformance {
	rows := make([]models.StaffPerformance, 0, len(s.staffPerformance))
	for _, row := range s.staffPerformance {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

func (s *MemStorage) GetStaffPerformanceByStaffID(staffID int) []models.StaffPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.StaffPerformance
	for _, row := range s.listStaffPerformance() {
		if row.StaffID == staffID {
			rows = append(rows, row)
		}
	}
	return rows
}

func (s *MemStorage) CreateStaffPerformance(in models.InsertStaffPerformance) (models.StaffPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	row := models.StaffPerformance{
		ID:             nextID(&s.ids.staffPerformance),
		StaffID:        in.StaffID,
		Date:           date,
		SalesAmount:    in.SalesAmount,
		TipsEarned:     in.TipsEarned,
		CustomerRating: in.CustomerRating,
		Incidents:      in.Incidents,
		HoursWorked:    in.HoursWorked,
	}
	s.staffPerformance[row.ID] = row
	return row, nil
}

// GetTopPerformers joins every staff member with their latest performance
// snapshot (missing snapshots count as zeroes), ranks by customer rating
// descending and truncates to limit. Ties keep store order.
func (s *MemStorage) GetTopPerformers(limit int) []models.TopPerformer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[int]models.StaffPerformance)
	for _, row := range s.listStaffPerformance() {
		current, ok := latest[row.StaffID]
		if !ok || row.Date.After(current.Date) || (row.Date.Equal(current.Date) && row.ID > current.ID) {
			latest[row.StaffID] = row
		}
	}

	performers := make([]models.TopPerformer, 0, len(s.staffMembers))
	for _, member := range s.listStaffMembers() {
		entry := models.TopPerformer{
			ID:   member.ID,
			Name: member.Name,
			Role: member.Role,
		}
		if row, ok := latest[member.ID]; ok {
			entry.SalesAmount = row.SalesAmount
			entry.CustomerRating = row.CustomerRating
			entry.Incidents = row.Incidents
		}
		performers = append(performers, entry)
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].CustomerRating > performers[j].CustomerRating
	})
	if limit >= 0 && len(performers) > limit {
		performers = performers[:limit]
	}
	return performers
}
