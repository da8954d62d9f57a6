package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/api"
	mock_api "github.com/lighthouse-academy/lighthouse-backend/api/mocks"
	bk "github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	student = user.User{ID: "student-1", Name: "Sam", Email: "sam@example.com", Role: policy.RoleStudent}
	admin   = user.User{ID: "admin-1", Name: "Alex", Email: "alex@example.com", Role: policy.RoleAdmin}

	slotStart = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(time.Hour)
)

func setUserInContext(account user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", account)
		c.Next()
	}
}

func setupRouterWithUser(t *testing.T, account user.User) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	rg := router.Group("/api/bookings")
	rg.Use(setUserInContext(account))
	handler.Register(rg)

	return router, ctrl, mockService
}

func TestListBookingsEndpoint(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, student)
	defer ctrl.Finish()

	bookings := []bk.Booking{{
		ID:         "booking-1",
		FacilityID: "facility-1",
		UserID:     student.ID,
		StartTime:  slotStart,
		EndTime:    slotEnd,
		Status:     bk.StatusPending,
	}}

	mockService.EXPECT().
		ListBookings(gomock.Any(), student.Actor(), "facility-1", "").
		Return(bookings, nil).Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/api/bookings?facilityId=facility-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []bk.Booking
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "booking-1", got[0].ID)
}

func TestGetBookingEndpoint(t *testing.T) {

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().
			FindBookingByID(gomock.Any(), student.Actor(), "missing").
			Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		req, _ := http.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().
			FindBookingByID(gomock.Any(), student.Actor(), "booking-2").
			Return(bk.Booking{}, bk.ErrNotAllowed).Times(1)

		req, _ := http.NewRequest(http.MethodGet, "/api/bookings/booking-2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCreateBookingEndpoint(t *testing.T) {

	payload := map[string]any{
		"facilityId": "facility-1",
		"startTime":  slotStart.Format(time.RFC3339),
		"endTime":    slotEnd.Format(time.RFC3339),
	}

	t.Run("created", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		admitted := bk.Booking{
			ID:         "booking-1",
			FacilityID: "facility-1",
			UserID:     student.ID,
			StartTime:  slotStart,
			EndTime:    slotEnd,
			Status:     bk.StatusPending,
		}

		mockService.EXPECT().
			CreateBooking(gomock.Any(), student.Actor(), gomock.Any()).
			Return(admitted, nil).Times(1)

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got bk.Booking
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "booking-1", got.ID)
		assert.Equal(t, bk.StatusPending, got.Status)
	})

	t.Run("slot conflict", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), student.Actor(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrSlotConflict).Times(1)

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid time range", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), student.Actor(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrInvalidTimeRange).Times(1)

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConfirmBookingEndpoint(t *testing.T) {

	t.Run("confirmed", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().
			ConfirmBooking(gomock.Any(), admin.Actor(), "booking-1").
			Return(nil).Times(1)

		req, _ := http.NewRequest(http.MethodPut, "/api/bookings/booking-1/confirm", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden for non-admin", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, student)
		defer ctrl.Finish()

		mockService.EXPECT().
			ConfirmBooking(gomock.Any(), student.Actor(), "booking-1").
			Return(bk.ErrNotAllowed).Times(1)

		req, _ := http.NewRequest(http.MethodPut, "/api/bookings/booking-1/confirm", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("already cancelled", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().
			ConfirmBooking(gomock.Any(), admin.Actor(), "booking-1").
			Return(bk.ErrInvalidBookingState).Times(1)

		req, _ := http.NewRequest(http.MethodPut, "/api/bookings/booking-1/confirm", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelBookingEndpoint(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, student)
	defer ctrl.Finish()

	mockService.EXPECT().
		CancelBooking(gomock.Any(), student.Actor(), "booking-1").
		Return(nil).Times(1)

	req, _ := http.NewRequest(http.MethodDelete, "/api/bookings/booking-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
