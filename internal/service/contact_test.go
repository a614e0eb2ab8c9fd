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

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockContactRepositoryInterface
	mockTenantRepo     *mocks.MockTenantRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockEmployeeRepo   *mocks.MockEmployeeRepositoryInterface
	service            *service.ContactService
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewContactService(suite.mockRepo, suite.mockTenantRepo, suite.mockAssignmentRepo, suite.mockEmployeeRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests contact creation
func (suite *ContactServiceTestSuite) TestCreate() {
	tenantID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockTenantRepo.EXPECT().
			GetByID(tenantID).
			Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}, Name: "acme"}, nil).
			Times(1)
		suite.mockRepo.EXPECT().
			GetByPhone(tenantID, "+5215551112222").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(contact *models.Contact) error {
				contact.ID = uuid.New()
				return nil
			}).
			Times(1)

		resp, err := suite.service.Create(&service.CreateContactRequest{
			TenantID:    tenantID,
			Phone:       "+5215551112222",
			DisplayName: "Juan Perez",
		})

		assert.NoError(t, err)
		assert.Equal(t, "+5215551112222", resp.Phone)
		assert.False(t, resp.Suppressed)
		assert.NotNil(t, resp.Tags)
	})

	suite.T().Run("DuplicatePhone", func(t *testing.T) {
		suite.mockTenantRepo.EXPECT().
			GetByID(tenantID).
			Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}, Name: "acme"}, nil).
			Times(1)
		suite.mockRepo.EXPECT().
			GetByPhone(tenantID, "+5215551112222").
			Return(&models.Contact{Phone: "+5215551112222"}, nil).
			Times(1)

		_, err := suite.service.Create(&service.CreateContactRequest{
			TenantID: tenantID,
			Phone:    "+5215551112222",
		})

		assert.ErrorIs(t, err, apperrors.ErrContactExists)
	})

	suite.T().Run("TenantNotFound", func(t *testing.T) {
		suite.mockTenantRepo.EXPECT().
			GetByID(tenantID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		_, err := suite.service.Create(&service.CreateContactRequest{
			TenantID: tenantID,
			Phone:    "+5215551112222",
		})

		assert.ErrorIs(t, err, apperrors.ErrTenantNotFound)
	})
}

// TestAddTag tests tag addition
func (suite *ContactServiceTestSuite) TestAddTag() {
	contactID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			AddTag(contactID, "vip").
			Return(&models.Contact{
				BaseModel: models.BaseModel{ID: contactID},
				Phone:     "+5215551112222",
				Tags:      []string{"vip"},
			}, nil).
			Times(1)

		resp, err := suite.service.AddTag(contactID, "vip")

		assert.NoError(t, err)
		assert.Contains(t, resp.Tags, "vip")
	})

	suite.T().Run("StopBotMarksSuppressed", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			AddTag(contactID, models.StopBotTag).
			Return(&models.Contact{
				BaseModel: models.BaseModel{ID: contactID},
				Phone:     "+5215551112222",
				Tags:      []string{models.StopBotTag},
			}, nil).
			Times(1)

		resp, err := suite.service.AddTag(contactID, models.StopBotTag)

		assert.NoError(t, err)
		assert.True(t, resp.Suppressed)
	})

	suite.T().Run("EmptyTag", func(t *testing.T) {
		_, err := suite.service.AddTag(contactID, "")

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("ContactNotFound", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			AddTag(contactID, "vip").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		_, err := suite.service.AddTag(contactID, "vip")

		assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	})
}

// TestRemoveTag tests tag removal
func (suite *ContactServiceTestSuite) TestRemoveTag() {
	contactID := uuid.New()

	suite.T().Run("PlainTag", func(t *testing.T) {
		tenantID := uuid.New()
		suite.mockRepo.EXPECT().
			RemoveTag(contactID, "vip").
			Return(&models.Contact{
				BaseModel: models.BaseModel{ID: contactID},
				TenantID:  tenantID,
				Phone:     "+5215551112222",
				Tags:      []string{},
			}, true, nil).
			Times(1)
		suite.mockEmployeeRepo.EXPECT().
			GetByName(tenantID, "vip").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		resp, err := suite.service.RemoveTag(contactID, "vip")

		assert.NoError(t, err)
		assert.NotContains(t, resp.Tags, "vip")
	})

	suite.T().Run("MarkerTagReleasesAssignment", func(t *testing.T) {
		tenantID := uuid.New()
		employeeID := uuid.New()
		suite.mockRepo.EXPECT().
			RemoveTag(contactID, "laura").
			Return(&models.Contact{
				BaseModel: models.BaseModel{ID: contactID},
				TenantID:  tenantID,
				Phone:     "+5215551112222",
				Tags:      []string{},
			}, true, nil).
			Times(1)
		suite.mockEmployeeRepo.EXPECT().
			GetByName(tenantID, "laura").
			Return(&models.Employee{
				BaseModel: models.BaseModel{ID: employeeID},
				TenantID:  tenantID,
				Name:      "laura",
			}, nil).
			Times(1)
		suite.mockAssignmentRepo.EXPECT().
			GetActiveByContact(contactID).
			Return([]models.AssignmentRecord{
				{EmployeeID: employeeID, ContactID: contactID, Channel: "whatsapp"},
				{EmployeeID: uuid.New(), ContactID: contactID, Channel: "instagram"},
			}, nil).
			Times(1)
		suite.mockAssignmentRepo.EXPECT().
			Deactivate(contactID, "whatsapp", "laura").
			Return(&models.AssignmentRecord{
				ContactID: contactID,
				Channel:   "whatsapp",
				Status:    models.AssignmentStatusInactive,
			}, nil).
			Times(1)

		resp, err := suite.service.RemoveTag(contactID, "laura")

		assert.NoError(t, err)
		assert.NotContains(t, resp.Tags, "laura")
	})

	suite.T().Run("AbsentTagIsIdempotent", func(t *testing.T) {
		// No tag was removed, so nothing is looked up or released
		suite.mockRepo.EXPECT().
			RemoveTag(contactID, "laura").
			Return(&models.Contact{
				BaseModel: models.BaseModel{ID: contactID},
				Phone:     "+5215551112222",
				Tags:      []string{"vip"},
			}, false, nil).
			Times(1)

		resp, err := suite.service.RemoveTag(contactID, "laura")

		assert.NoError(t, err)
		assert.Equal(t, []string{"vip"}, resp.Tags)
	})
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
