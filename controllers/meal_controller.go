package controllers

import (
	"net/http"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

func (h *MealController) LogMeal(c *gin.Context) {
	var draft services.MealDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Svc.Create(draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) GetMeal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	meal, err := h.Svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// GET /users/:id/meals?type=Lunch — the "type" parameter matches the meal
// name, exact and case-insensitive.
func (h *MealController) ListUserMeals(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	meals, err := h.Svc.ListForUser(id, c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
