package service_test

import (
	"testing"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/mocks"
	"whatsapp-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TenantServiceTestSuite defines the test suite for TenantService
type TenantServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockTenantRepositoryInterface
	mockConfigRepo *mocks.MockCalendarConfigRepositoryInterface
	service        *service.TenantService
}

// SetupTest sets up the test suite
func (suite *TenantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockCalendarConfigRepositoryInterface(suite.ctrl)
	suite.service = service.NewTenantService(suite.mockRepo, suite.mockConfigRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TenantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests tenant creation
func (suite *TenantServiceTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByName("acme-motors").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(tenant *models.Tenant) error {
				tenant.ID = uuid.New()
				return nil
			}).
			Times(1)

		resp, err := suite.service.Create(&service.CreateTenantRequest{
			Name:        "acme-motors",
			DisplayName: "Acme Motors",
		})

		assert.NoError(t, err)
		assert.Equal(t, "acme-motors", resp.Name)
		assert.Equal(t, "UTC", resp.Timezone)
	})

	suite.T().Run("DuplicateName", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByName("acme-motors").
			Return(&models.Tenant{Name: "acme-motors"}, nil).
			Times(1)

		_, err := suite.service.Create(&service.CreateTenantRequest{Name: "acme-motors"})

		assert.ErrorIs(t, err, apperrors.ErrTenantExists)
	})

	suite.T().Run("MissingName", func(t *testing.T) {
		_, err := suite.service.Create(&service.CreateTenantRequest{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

// TestUpsertCalendarConfig tests calendar configuration upserts
func (suite *TenantServiceTestSuite) TestUpsertCalendarConfig() {
	tenantID := uuid.New()

	suite.T().Run("AppliesDefaults", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(tenantID).
			Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}, Name: "acme", Timezone: "UTC"}, nil).
			Times(1)
		suite.mockConfigRepo.EXPECT().
			Upsert(gomock.Any()).
			Return(nil).
			Times(1)

		config, err := suite.service.UpsertCalendarConfig(tenantID, &service.CalendarConfigRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "default", config.Key)
		assert.Equal(t, 30, config.SlotMinutes)
		assert.Equal(t, 9, config.OpenHour)
		assert.Equal(t, 18, config.CloseHour)
		assert.Equal(t, 14, config.LookaheadDays)
		assert.Equal(t, 60, config.DefaultMinutes)
		assert.Equal(t, 120, config.ExtendedMinutes)
	})

	suite.T().Run("RejectsInvertedHours", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(tenantID).
			Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}, Name: "acme", Timezone: "UTC"}, nil).
			Times(1)

		_, err := suite.service.UpsertCalendarConfig(tenantID, &service.CalendarConfigRequest{
			OpenHour:  17,
			CloseHour: 9,
		})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("TenantNotFound", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(tenantID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		_, err := suite.service.UpsertCalendarConfig(tenantID, &service.CalendarConfigRequest{})

		assert.ErrorIs(t, err, apperrors.ErrTenantNotFound)
	})
}

// TestGetByID tests tenant retrieval
func (suite *TenantServiceTestSuite) TestGetByID() {
	tenantID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(tenantID).
			Return(&models.Tenant{
				BaseModel: models.BaseModel{ID: tenantID},
				Name:      "acme-motors",
				Timezone:  "America/Mexico_City",
			}, nil).
			Times(1)

		resp, err := suite.service.GetByID(tenantID)

		assert.NoError(t, err)
		assert.Equal(t, tenantID, resp.ID)
		assert.Equal(t, "America/Mexico_City", resp.Timezone)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(tenantID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		_, err := suite.service.GetByID(tenantID)

		assert.ErrorIs(t, err, apperrors.ErrTenantNotFound)
	})
}

// TestGetAll tests paginated listing
func (suite *TenantServiceTestSuite) TestGetAll() {
	suite.T().Run("ClampsPagination", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetAll(20, 0).
			Return([]models.Tenant{{Name: "acme-motors"}}, int64(1), nil).
			Times(1)

		resp, err := suite.service.GetAll(0, 500)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Equal(t, int64(1), resp.Total)
	})
}

// TestTenantServiceTestSuite runs the test suite
func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
