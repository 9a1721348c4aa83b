package controllers

import (
	"net/http"
	"time"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

func (h *ReportController) GetMealCalories(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	total, err := h.Svc.MealCalories(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_id": id, "calories": total})
}

// GET /users/:id/calories/daily?date=2025-06-01 (defaults to today)
func (h *ReportController) GetDailyCalories(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	total, err := h.Svc.DailyTotal(id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  id,
		"date":     date.Format("2006-01-02"),
		"calories": total,
	})
}

// GET /users/:id/calories/weekly?end=2025-06-01 — the 7 days ending on end,
// inclusive. Defaults to today.
func (h *ReportController) GetWeeklyCalories(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	end, ok := dateQuery(c, "end")
	if !ok {
		return
	}

	total, err := h.Svc.WeeklyTotal(id, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  id,
		"from":     end.AddDate(0, 0, -6).Format("2006-01-02"),
		"to":       end.Format("2006-01-02"),
		"calories": total,
	})
}

func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	now := time.Now()
	raw := c.DefaultQuery(name, now.Format("2006-01-02"))
	d, err := time.ParseInLocation("2006-01-02", raw, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " date"})
		return time.Time{}, false
	}
	return d, true
}
