package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aradhya-travels/booking-api/internal/models"
	"github.com/aradhya-travels/booking-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(bs *services.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", HealthCheck(bs))
	api.GET("/stats", GetStats(bs))
	api.POST("/bookings", CreateBooking(bs))
	api.GET("/bookings", ListBookings(bs))
	api.GET("/bookings/:id", GetBooking(bs))
	api.PATCH("/bookings/:id", UpdateBookingStatus(bs))
	api.DELETE("/bookings/:id", DeleteBooking(bs))
	return r
}

func memoryService() *services.BookingService {
	return services.NewBookingService(models.MemoryNewRepo(), services.DBTypeMemory)
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBookingBody() map[string]any {
	return map[string]any{
		"name":          "Asha",
		"contactNumber": "9876543210",
		"tripType":      "One Way",
		"pickup":        "Hitech City",
		"drop":          "Airport",
		"date":          "2025-01-10",
		"time":          "14:00",
		"carType":       "Sedan",
		"passengers":    2,
	}
}

func TestHealthReportsBackend(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["dbType"])
}

func TestCreateBooking(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodPost, "/api/bookings", validBookingBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Booking)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, models.StatusPending, resp.Booking.Status)
	assert.Equal(t, "Asha", resp.Booking.Name)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing name", func(b map[string]any) { b["name"] = "" }, "name"},
		{"missing pickup", func(b map[string]any) { b["pickup"] = "   " }, "pickup"},
		{"missing drop", func(b map[string]any) { delete(b, "drop") }, "drop"},
		{"bad phone", func(b map[string]any) { b["contactNumber"] = "12345" }, "contactNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(memoryService())
			body := validBookingBody()
			tt.mutate(body)

			rec := doJSON(router, http.MethodPost, "/api/bookings", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp models.ApiResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
			assert.Contains(t, resp.Errors, tt.field)

			// Nothing was persisted
			list := doJSON(router, http.MethodGet, "/api/bookings", nil)
			var listResp models.ListResponse
			require.NoError(t, json.NewDecoder(list.Body).Decode(&listResp))
			assert.Empty(t, listResp.Bookings)
		})
	}
}

func TestListBookingsEmptyIsArray(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookings":[]`)
}

func TestGetBookingNotFound(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodGet, "/api/bookings/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Booking not found", resp.Message)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodPost, "/api/bookings", validBookingBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = doJSON(router, http.MethodPatch, "/api/bookings/"+created.Booking.ID,
		map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodPatch, "/api/bookings/"+created.Booking.ID,
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusNotFound(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodPatch, "/api/bookings/no-such-id",
		map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEnvelope(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodPost, "/api/bookings", validBookingBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, int64(1), resp.Stats.Total)
	assert.Equal(t, int64(1), resp.Stats.Pending)
}

// Full record lifecycle through the HTTP surface: create, confirm, delete.
func TestBookingLifecycle(t *testing.T) {
	router := setupTestRouter(memoryService())

	rec := doJSON(router, http.MethodPost, "/api/bookings", validBookingBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotNil(t, created.Booking)
	id := created.Booking.ID
	assert.Equal(t, models.StatusPending, created.Booking.Status)

	rec = doJSON(router, http.MethodPatch, fmt.Sprintf("/api/bookings/%s", id),
		map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/api/bookings/%s", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, models.StatusConfirmed, fetched.Booking.Status)

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/bookings/%s", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted models.ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&deleted))
	assert.True(t, deleted.Success)
	assert.Equal(t, "Booking deleted", deleted.Message)

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/api/bookings/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/bookings/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
