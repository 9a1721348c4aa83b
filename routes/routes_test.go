package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Food{}, &models.Meal{}, &models.MealFood{},
	))

	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestUserEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	user := map[string]any{
		"name": "Maria", "email": "maria@example.com",
		"height": 165.0, "weight": 60.0, "objective": "lose weight",
	}

	w := doJSON(t, r, http.MethodPost, "/users", user)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again is a conflict.
	w = doJSON(t, r, http.MethodPost, "/users", user)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Missing required fields are rejected.
	w = doJSON(t, r, http.MethodPost, "/users", map[string]any{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Contains(t, out, "bmi")
	assert.Contains(t, out, "bmi_category")

	w = doJSON(t, r, http.MethodGet, "/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealAndReportEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"name": "João", "email": "joao@example.com",
		"height": 180.0, "weight": 80.0, "objective": "maintain",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/foods", map[string]any{
		"name": "Rice", "type": "grain", "unit": "g", "calories_per_portion": 200.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/meals", map[string]any{
		"user_id": 1, "name": "Café", "eaten_at": "2025-06-01T12:00:00Z",
		"foods": []map[string]any{{"food_id": 1, "quantity": 150.0}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The meal serializes its owner as an id, never as a nested object.
	meal := decode(t, w)
	assert.EqualValues(t, 1, meal["user_id"])
	assert.NotContains(t, meal, "user")

	w = doJSON(t, r, http.MethodGet, "/meals/1/calories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 300, decode(t, w)["calories"])

	w = doJSON(t, r, http.MethodGet, "/meals/999/calories", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/1/calories/daily?date=2025-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 300, decode(t, w)["calories"])

	w = doJSON(t, r, http.MethodGet, "/users/1/calories/weekly?end=2025-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 300, decode(t, w)["calories"])

	w = doJSON(t, r, http.MethodGet, "/users/1/calories/daily?date=junk", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting the user while the meal exists is blocked.
	w = doJSON(t, r, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/meals/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/meals/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMealFilterEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"name": "Ana", "email": "ana@example.com",
		"height": 160.0, "weight": 55.0, "objective": "maintain",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, name := range []string{"Café", "Almoço"} {
		w = doJSON(t, r, http.MethodPost, "/meals", map[string]any{
			"user_id": 1, "name": name, "eaten_at": "2025-06-01T08:00:00Z",
			"foods": []map[string]any{},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/users/1/meals?type=caf%C3%A9", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meals []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, "Café", meals[0]["name"])
}

func TestMealCreate_MissingFoodRollsBack(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"name": "Rui", "email": "rui@example.com",
		"height": 175.0, "weight": 70.0, "objective": "maintain",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/meals", map[string]any{
		"user_id": 1, "name": "Lunch", "eaten_at": "2025-06-01T12:00:00Z",
		"foods": []map[string]any{{"food_id": 42, "quantity": 10.0}},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode(t, w)["error"], "42")

	// Nothing was written.
	w = doJSON(t, r, http.MethodGet, "/users/1/meals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meals []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	assert.Empty(t, meals)
}
