package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
	"github.com/habiutomo/ERP-klub-bar/storage"
)

// latestPerformance picks the most recent snapshot from a staff member's
// performance rows, matching the leaderboard's join rule.
func latestPerformance(rows []models.StaffPerformance) (models.StaffPerformance, bool) {
	var latest models.StaffPerformance
	found := false
	for _, row := range rows {
		if !found || row.Date.After(latest.Date) || (row.Date.Equal(latest.Date) && row.ID > latest.ID) {
			latest = row
			found = true
		}
	}
	return latest, found
}

// staffView enriches a staff member with scheduling-screen extras.
type staffView struct {
	models.Staff
	HoursThisWeek float64 `json:"hoursThisWeek"`
	AvgRating     float64 `json:"avgRating"`
}

func (h *Handler) ListStaff(c *gin.Context) {
	latest := make(map[int]models.StaffPerformance)
	for _, member := range h.store.GetStaffMembers() {
		if row, ok := latestPerformance(h.store.GetStaffPerformanceByStaffID(member.ID)); ok {
			latest[member.ID] = row
		}
	}

	members := h.store.GetStaffMembers()
	views := make([]staffView, 0, len(members))
	for _, member := range members {
		view := staffView{Staff: member}
		if row, ok := latest[member.ID]; ok {
			view.HoursThisWeek = row.HoursWorked
			view.AvgRating = row.CustomerRating
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// staffDetail bundles a staff member with their latest performance snapshot
// and scheduled shifts.
type staffDetail struct {
	models.Staff
	Performance *models.StaffPerformance `json:"performance"`
	Shifts      []models.StaffShift      `json:"shifts"`
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	member, err := h.store.GetStaffMember(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	detail := staffDetail{
		Staff:  member,
		Shifts: h.store.GetStaffShiftsByStaffID(id),
	}
	if row, ok := latestPerformance(h.store.GetStaffPerformanceByStaffID(id)); ok {
		detail.Performance = &row
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req models.InsertStaff
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.store.CreateStaffMember(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.StaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.store.UpdateStaffMember(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteStaffMember(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListShifts(c *gin.Context) {
	if raw := c.Query("staff_id"); raw != "" {
		staffID, err := strconv.Atoi(raw)
		if err != nil || staffID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff_id"})
			return
		}
		c.JSON(http.StatusOK, h.store.GetStaffShiftsByStaffID(staffID))
		return
	}
	c.JSON(http.StatusOK, h.store.GetStaffShifts())
}

func (h *Handler) CreateShift(c *gin.Context) {
	var req models.InsertStaffShift
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shift, err := h.store.CreateStaffShift(req)
	if err != nil {
		if errors.Is(err, storage.ErrShiftConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Staff member already has a shift that day"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff shift"})
		return
	}
	c.JSON(http.StatusCreated, shift)
}

func (h *Handler) UpdateShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.StaffShiftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shift, err := h.store.UpdateStaffShift(id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrShiftConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Staff member already has a shift that day"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff shift not found"})
		return
	}
	c.JSON(http.StatusOK, shift)
}

func (h *Handler) DeleteShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteStaffShift(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff shift not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPerformance(c *gin.Context) {
	if raw := c.Query("staff_id"); raw != "" {
		staffID, err := strconv.Atoi(raw)
		if err != nil || staffID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff_id"})
			return
		}
		c.JSON(http.StatusOK, h.store.GetStaffPerformanceByStaffID(staffID))
		return
	}
	c.JSON(http.StatusOK, h.store.GetStaffPerformance())
}

func (h *Handler) CreatePerformance(c *gin.Context) {
	var req models.InsertStaffPerformance
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.store.CreateStaffPerformance(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record staff performance"})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) TopPerformers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetTopPerformers(limitQuery(c, 5)))
}
