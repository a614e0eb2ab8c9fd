package repository

import (
	"testing"

	"whatsapp-crm-backend/internal/database/models"
	"whatsapp-crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeRepositoryTestSuite) seedTenant() *models.Tenant {
	tenant := suite.factories.Tenant.Create()
	err := NewTenantRepository(suite.baseTestSuite.DB).Create(tenant)
	suite.NoError(err)
	return tenant
}

func (suite *EmployeeRepositoryTestSuite) seedEmployee(tenant *models.Tenant, role models.EmployeeRole) *models.Employee {
	employee := suite.factories.Employee.WithTenant(tenant.ID)
	employee.Role = role
	err := suite.repo.Create(employee)
	suite.NoError(err)
	return employee
}

func (suite *EmployeeRepositoryTestSuite) enableChannel(employee *models.Employee, weight float64) {
	setting := suite.factories.ChannelSetting.WithEmployee(employee.ID)
	setting.Weight = weight
	err := suite.repo.UpsertChannelSetting(setting)
	suite.NoError(err)
}

// TestGetChannelCandidates tests the role/channel join feeding the allocator
func (suite *EmployeeRepositoryTestSuite) TestGetChannelCandidates() {
	tenant := suite.seedTenant()

	sales := suite.seedEmployee(tenant, models.EmployeeRoleSales)
	suite.enableChannel(sales, 2)

	manager := suite.seedEmployee(tenant, models.EmployeeRoleManager)
	suite.enableChannel(manager, 1)

	// Sales employee without a channel setting stays invisible
	suite.seedEmployee(tenant, models.EmployeeRoleSales)

	candidates, err := suite.repo.GetChannelCandidates(tenant.ID, "whatsapp", models.EmployeeRoleSales)

	suite.NoError(err)
	suite.Len(candidates, 1)
	suite.Equal(sales.ID, candidates[0].Employee.ID)
	suite.Equal(float64(2), candidates[0].Weight)
	suite.Nil(candidates[0].MonthlyQuota)

	candidates, err = suite.repo.GetChannelCandidates(tenant.ID, "whatsapp", models.EmployeeRoleManager)
	suite.NoError(err)
	suite.Len(candidates, 1)
	suite.Equal(manager.ID, candidates[0].Employee.ID)
}

// TestGetChannelCandidatesExcludesDisabled tests that disabled settings and
// inactive employees are skipped
func (suite *EmployeeRepositoryTestSuite) TestGetChannelCandidatesExcludesDisabled() {
	tenant := suite.seedTenant()

	disabled := suite.seedEmployee(tenant, models.EmployeeRoleSales)
	setting := suite.factories.ChannelSetting.WithEmployee(disabled.ID)
	setting.Enabled = false
	err := suite.repo.UpsertChannelSetting(setting)
	suite.NoError(err)

	inactive := suite.seedEmployee(tenant, models.EmployeeRoleSales)
	suite.enableChannel(inactive, 1)
	inactive.IsActive = false
	err = suite.repo.Update(inactive)
	suite.NoError(err)

	candidates, err := suite.repo.GetChannelCandidates(tenant.ID, "whatsapp", models.EmployeeRoleSales)

	suite.NoError(err)
	suite.Len(candidates, 0)
}

// TestGetChannelCandidatesCarriesQuota tests that the monthly quota survives
// the join
func (suite *EmployeeRepositoryTestSuite) TestGetChannelCandidatesCarriesQuota() {
	tenant := suite.seedTenant()

	employee := suite.seedEmployee(tenant, models.EmployeeRoleSales)
	setting := suite.factories.ChannelSetting.WithQuota(20)
	setting.EmployeeID = employee.ID
	err := suite.repo.UpsertChannelSetting(setting)
	suite.NoError(err)

	candidates, err := suite.repo.GetChannelCandidates(tenant.ID, "whatsapp", models.EmployeeRoleSales)

	suite.NoError(err)
	suite.Len(candidates, 1)
	suite.NotNil(candidates[0].MonthlyQuota)
	suite.Equal(20, *candidates[0].MonthlyQuota)
}

// TestUpsertChannelSetting tests create-then-replace by (employee, channel)
func (suite *EmployeeRepositoryTestSuite) TestUpsertChannelSetting() {
	tenant := suite.seedTenant()
	employee := suite.seedEmployee(tenant, models.EmployeeRoleSales)

	suite.enableChannel(employee, 1)

	replacement := suite.factories.ChannelSetting.WithEmployee(employee.ID)
	replacement.Weight = 3
	err := suite.repo.UpsertChannelSetting(replacement)
	suite.NoError(err)

	settings, err := suite.repo.GetChannelSettings(employee.ID)
	suite.NoError(err)
	suite.Len(settings, 1)
	suite.Equal(float64(3), settings[0].Weight)
}

// TestGetActiveByTenant tests the staff roster listing
func (suite *EmployeeRepositoryTestSuite) TestGetActiveByTenant() {
	tenant := suite.seedTenant()

	active := suite.seedEmployee(tenant, models.EmployeeRoleSales)

	inactive := suite.seedEmployee(tenant, models.EmployeeRoleSales)
	inactive.IsActive = false
	err := suite.repo.Update(inactive)
	suite.NoError(err)

	roster, err := suite.repo.GetActiveByTenant(tenant.ID)

	suite.NoError(err)
	suite.Len(roster, 1)
	suite.Equal(active.ID, roster[0].ID)
}

// TestGetByName tests lookup by marker-tag name within a tenant
func (suite *EmployeeRepositoryTestSuite) TestGetByName() {
	tenant := suite.seedTenant()

	employee := suite.factories.Employee.WithName("laura")
	employee.TenantID = tenant.ID
	err := suite.repo.Create(employee)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByName(tenant.ID, "laura")
	suite.NoError(err)
	suite.Equal(employee.ID, retrieved.ID)

	_, err = suite.repo.GetByName(tenant.ID, "nobody")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
