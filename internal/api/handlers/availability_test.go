package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"whatsapp-crm-backend/internal/api/handlers"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/mocks"
	"whatsapp-crm-backend/internal/service"
	"whatsapp-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AvailabilityHandlerTestSuite defines the test suite for AvailabilityHandler
type AvailabilityHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAvailabilityServiceInterface
	handler     *handlers.AvailabilityHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AvailabilityHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAvailabilityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAvailabilityHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/v1/availability", suite.handler.GetFreeSlots)
}

// TearDownTest cleans up after each test
func (suite *AvailabilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetFreeSlots tests the GetFreeSlots handler
func (suite *AvailabilityHandlerTestSuite) TestGetFreeSlots() {
	tenantID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.FreeSlotsResponse{
			TenantID:        tenantID,
			CalendarKey:     "default",
			Timezone:        "America/Mexico_City",
			SlotMinutes:     30,
			DurationMinutes: 60,
			Verified:        true,
			Days: []service.DayAvailability{
				{Date: "2026-03-10", Slots: []string{"09:00", "09:30", "10:00"}},
			},
		}

		suite.mockService.EXPECT().
			FreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.FreeSlotsRequest) (*service.FreeSlotsResponse, error) {
				assert.Equal(t, tenantID, req.TenantID)
				assert.Equal(t, 7, req.Days)
				assert.Equal(t, 90, req.DurationMinutes)
				return expectedResponse, nil
			}).
			Times(1)

		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s&days=7&duration_minutes=90", tenantID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FreeSlotsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Verified)
		assert.Len(t, response.Days, 1)
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, response.Days[0].Slots)
	})

	suite.T().Run("DegradedResponse", func(t *testing.T) {
		expectedResponse := &service.FreeSlotsResponse{
			TenantID:    tenantID,
			CalendarKey: "default",
			Verified:    false,
			Days:        []service.DayAvailability{{Date: "2026-03-10", Slots: []string{"09:00"}}},
		}

		suite.mockService.EXPECT().
			FreeSlots(gomock.Any(), gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s", tenantID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FreeSlotsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.Verified)
	})

	suite.T().Run("ContactRouting", func(t *testing.T) {
		contactID := uuid.New()

		suite.mockService.EXPECT().
			FreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.FreeSlotsRequest) (*service.FreeSlotsResponse, error) {
				assert.NotNil(t, req.ContactID)
				assert.Equal(t, contactID, *req.ContactID)
				return &service.FreeSlotsResponse{TenantID: tenantID, CalendarKey: "vip"}, nil
			}).
			Times(1)

		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s&contact_id=%s", tenantID, contactID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("SingleDate", func(t *testing.T) {
		suite.mockService.EXPECT().
			FreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.FreeSlotsRequest) (*service.FreeSlotsResponse, error) {
				assert.Equal(t, "2026-03-12", req.Date)
				return &service.FreeSlotsResponse{
					TenantID:    tenantID,
					CalendarKey: "default",
					Days:        []service.DayAvailability{{Date: "2026-03-12", Slots: []string{"09:00"}}},
				}, nil
			}).
			Times(1)

		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s&date=2026-03-12", tenantID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidTenantID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/availability?tenant_id=abc", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid tenant ID")
	})

	suite.T().Run("InvalidContactID", func(t *testing.T) {
		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s&contact_id=abc", tenantID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid contact ID")
	})

	suite.T().Run("NoCalendarConfigured", func(t *testing.T) {
		suite.mockService.EXPECT().
			FreeSlots(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrNoCalendarConfigured).
			Times(1)

		url := fmt.Sprintf("/api/v1/availability?tenant_id=%s", tenantID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestAvailabilityHandlerTestSuite runs the test suite
func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}
