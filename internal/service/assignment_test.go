package service

import (
	"math/rand"
	"testing"
	"time"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/logger"
	"whatsapp-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignTestNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type assignmentFixture struct {
	service     *AssignmentService
	assignRepo  *fakeAssignmentRepo
	empRepo     *fakeEmployeeRepo
	contactRepo *fakeContactRepo
	counterRepo *fakeCounterRepo

	tenantID  uuid.UUID
	contactID uuid.UUID
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		assignRepo:  &fakeAssignmentRepo{},
		empRepo:     &fakeEmployeeRepo{},
		contactRepo: &fakeContactRepo{},
		counterRepo: &fakeCounterRepo{},
		tenantID:    uuid.New(),
		contactID:   uuid.New(),
	}
	tenantRepo := &fakeTenantRepo{tenant: &models.Tenant{
		BaseModel: models.BaseModel{ID: f.tenantID},
		Name:      "acme",
		Timezone:  "UTC",
	}}
	f.contactRepo.getByID = func(id uuid.UUID) (*models.Contact, error) {
		return &models.Contact{
			BaseModel: models.BaseModel{ID: id},
			TenantID:  f.tenantID,
			Phone:     "+15550001111",
		}, nil
	}
	f.service = NewAssignmentService(f.assignRepo, f.empRepo, f.contactRepo, f.counterRepo, tenantRepo, nil, validator.New(), logger.New())
	f.service.now = func() time.Time { return assignTestNow }
	f.service.randFloat = func() float64 { return 0.5 }
	return f
}

func (f *assignmentFixture) salesCandidates(rows ...repository.ChannelCandidate) {
	f.empRepo.candidates = func(channel string, role models.EmployeeRole) ([]repository.ChannelCandidate, error) {
		if role == models.EmployeeRoleSales {
			return rows, nil
		}
		return nil, nil
	}
}

func salesEmployee(tenantID uuid.UUID, name string) models.Employee {
	return models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  tenantID,
		Name:      name,
		Role:      models.EmployeeRoleSales,
		IsActive:  true,
	}
}

func TestAssignPicksByWeight(t *testing.T) {
	f := newAssignmentFixture()
	heavy := salesEmployee(f.tenantID, "laura")
	light := salesEmployee(f.tenantID, "diego")
	f.salesCandidates(
		repository.ChannelCandidate{Employee: heavy, Weight: 2},
		repository.ChannelCandidate{Employee: light, Weight: 1},
	)

	// total effective weight 3, target 0.5*3=1.5 lands in laura's [0, 2) band
	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, heavy.ID, resp.EmployeeID)
	assert.Equal(t, "laura", resp.EmployeeName)
	assert.Equal(t, models.EmployeeRoleSales, resp.Role)
	assert.Equal(t, "2026-03", resp.Period)
	assert.True(t, resp.Created)
	assert.Equal(t, "laura", f.assignRepo.lastMarkerTag)
}

func TestAssignDrawUpperBand(t *testing.T) {
	f := newAssignmentFixture()
	heavy := salesEmployee(f.tenantID, "laura")
	light := salesEmployee(f.tenantID, "diego")
	f.salesCandidates(
		repository.ChannelCandidate{Employee: heavy, Weight: 2},
		repository.ChannelCandidate{Employee: light, Weight: 1},
	)
	f.service.randFloat = func() float64 { return 0.9 } // target 2.7 lands in diego's [2, 3) band

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, light.ID, resp.EmployeeID)
}

func TestAssignDampsWeightByAllocationCount(t *testing.T) {
	f := newAssignmentFixture()
	loaded := salesEmployee(f.tenantID, "laura")
	idle := salesEmployee(f.tenantID, "diego")
	f.salesCandidates(
		repository.ChannelCandidate{Employee: loaded, Weight: 2},
		repository.ChannelCandidate{Employee: idle, Weight: 1},
	)
	f.counterRepo.counts = func(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error) {
		return map[uuid.UUID]int{loaded.ID: 3}, nil
	}

	// laura's effective weight drops to 2/4=0.5 against diego's 1, so the
	// midpoint draw (target 0.75) now lands on diego.
	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, idle.ID, resp.EmployeeID)
}

func TestAssignFallsBackToManagerTier(t *testing.T) {
	f := newAssignmentFixture()
	manager := models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  f.tenantID,
		Name:      "marta",
		Role:      models.EmployeeRoleManager,
		IsActive:  true,
	}
	f.empRepo.candidates = func(channel string, role models.EmployeeRole) ([]repository.ChannelCandidate, error) {
		if role == models.EmployeeRoleManager {
			return []repository.ChannelCandidate{{Employee: manager, Weight: 1}}, nil
		}
		return nil, nil
	}

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, manager.ID, resp.EmployeeID)
	assert.Equal(t, models.EmployeeRoleManager, resp.Role)
}

func TestAssignSkipsQuotaExhaustedCandidates(t *testing.T) {
	f := newAssignmentFixture()
	capped := salesEmployee(f.tenantID, "diego")
	open := salesEmployee(f.tenantID, "laura")
	quota := 3
	f.salesCandidates(
		repository.ChannelCandidate{Employee: capped, Weight: 5, MonthlyQuota: &quota},
		repository.ChannelCandidate{Employee: open, Weight: 1},
	)
	f.counterRepo.counts = func(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error) {
		return map[uuid.UUID]int{capped.ID: 3}, nil
	}

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, open.ID, resp.EmployeeID)
}

func TestAssignSkipsZeroWeightCandidates(t *testing.T) {
	f := newAssignmentFixture()
	paused := salesEmployee(f.tenantID, "diego")
	active := salesEmployee(f.tenantID, "laura")
	f.salesCandidates(
		repository.ChannelCandidate{Employee: paused, Weight: 0},
		repository.ChannelCandidate{Employee: active, Weight: 1},
	)

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, active.ID, resp.EmployeeID)
}

func TestAssignNoneAvailable(t *testing.T) {
	f := newAssignmentFixture()

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNoneAvailable)
	assert.Zero(t, f.assignRepo.createActiveCalls)
}

func TestAssignIdempotentOnActiveAssignment(t *testing.T) {
	f := newAssignmentFixture()
	employee := salesEmployee(f.tenantID, "laura")
	existing := &models.AssignmentRecord{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		TenantID:         f.tenantID,
		EmployeeID:       employee.ID,
		ContactID:        f.contactID,
		Channel:          "whatsapp",
		Period:           "2026-03",
		RoleAtAssignment: models.EmployeeRoleSales,
		Status:           models.AssignmentStatusActive,
	}
	f.assignRepo.getActive = func(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error) {
		return existing, nil
	}
	f.empRepo.getByID = func(id uuid.UUID) (*models.Employee, error) {
		return &employee, nil
	}

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.ID)
	assert.Equal(t, employee.ID, resp.EmployeeID)
	assert.False(t, resp.Created)
	assert.Zero(t, f.assignRepo.createActiveCalls)
}

func TestAssignConcurrentInsertReturnsWinner(t *testing.T) {
	f := newAssignmentFixture()
	employee := salesEmployee(f.tenantID, "laura")
	f.salesCandidates(repository.ChannelCandidate{Employee: employee, Weight: 1})

	winner := &models.AssignmentRecord{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		TenantID:         f.tenantID,
		EmployeeID:       employee.ID,
		ContactID:        f.contactID,
		Channel:          "whatsapp",
		Period:           "2026-03",
		RoleAtAssignment: models.EmployeeRoleSales,
		Status:           models.AssignmentStatusActive,
	}
	f.assignRepo.createActive = func(record *models.AssignmentRecord, markerTag string) (bool, *models.AssignmentRecord, error) {
		return false, winner, nil
	}
	f.empRepo.getByID = func(id uuid.UUID) (*models.Employee, error) {
		return &employee, nil
	}

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, resp.ID)
	assert.False(t, resp.Created)
}

func TestAssignSuppressedContact(t *testing.T) {
	f := newAssignmentFixture()
	f.contactRepo.getByID = func(id uuid.UUID) (*models.Contact, error) {
		return &models.Contact{
			BaseModel: models.BaseModel{ID: id},
			TenantID:  f.tenantID,
			Phone:     "+15550001111",
			Tags:      []string{models.StopBotTag},
		}, nil
	}

	_, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	assert.ErrorIs(t, err, apperrors.ErrAutomationSuppressed)
}

func TestAssignContactFromOtherTenant(t *testing.T) {
	f := newAssignmentFixture()
	f.contactRepo.getByID = func(id uuid.UUID) (*models.Contact, error) {
		return &models.Contact{
			BaseModel: models.BaseModel{ID: id},
			TenantID:  uuid.New(),
			Phone:     "+15550001111",
		}, nil
	}

	_, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestAssignUsesTenantTimezoneForPeriod(t *testing.T) {
	f := newAssignmentFixture()
	employee := salesEmployee(f.tenantID, "laura")
	f.salesCandidates(repository.ChannelCandidate{Employee: employee, Weight: 1})

	// 2026-04-01 01:00 UTC is still 2026-03-31 in Mexico City
	tenantRepo := &fakeTenantRepo{tenant: &models.Tenant{
		BaseModel: models.BaseModel{ID: f.tenantID},
		Name:      "acme",
		Timezone:  "America/Mexico_City",
	}}
	f.service.tenantRepo = tenantRepo
	f.service.now = func() time.Time { return time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC) }

	resp, err := f.service.Assign(&AssignLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03", resp.Period)
}

func TestReleaseDeactivatesAndReportsEmployee(t *testing.T) {
	f := newAssignmentFixture()
	employee := salesEmployee(f.tenantID, "laura")
	deactivated := assignTestNow
	record := &models.AssignmentRecord{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		TenantID:         f.tenantID,
		EmployeeID:       employee.ID,
		ContactID:        f.contactID,
		Channel:          "whatsapp",
		Period:           "2026-03",
		RoleAtAssignment: models.EmployeeRoleSales,
		Status:           models.AssignmentStatusActive,
	}
	f.assignRepo.getActive = func(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error) {
		return record, nil
	}
	f.empRepo.getByID = func(id uuid.UUID) (*models.Employee, error) {
		return &employee, nil
	}
	var markerUsed string
	f.assignRepo.deactivate = func(contactID uuid.UUID, channel, markerTag string) (*models.AssignmentRecord, error) {
		markerUsed = markerTag
		released := *record
		released.Status = models.AssignmentStatusInactive
		released.DeactivatedAt = &deactivated
		return &released, nil
	}

	resp, err := f.service.Release(&ReleaseLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	require.NoError(t, err)
	assert.Equal(t, "laura", markerUsed)
	assert.Equal(t, string(models.AssignmentStatusInactive), resp.Status)
	require.NotNil(t, resp.DeactivatedAt)
	assert.Equal(t, deactivated.Format(time.RFC3339), *resp.DeactivatedAt)
}

func TestReleaseWithoutActiveAssignment(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.service.Release(&ReleaseLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
}

func TestReleaseTenantMismatch(t *testing.T) {
	f := newAssignmentFixture()
	f.assignRepo.getActive = func(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error) {
		return &models.AssignmentRecord{
			BaseModel: models.BaseModel{ID: uuid.New()},
			TenantID:  uuid.New(),
			ContactID: contactID,
			Channel:   channel,
		}, nil
	}

	_, err := f.service.Release(&ReleaseLeadRequest{
		TenantID:  f.tenantID,
		ContactID: f.contactID,
		Channel:   "whatsapp",
	})

	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
}

func TestGetActiveNotFound(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.service.GetActive(f.contactID, "whatsapp")

	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
}

func TestDrawLastCandidateOnBoundary(t *testing.T) {
	f := newAssignmentFixture()
	a := salesEmployee(f.tenantID, "laura")
	b := salesEmployee(f.tenantID, "diego")
	eligible := []candidate{
		{employee: a, weight: 1, effective: 1},
		{employee: b, weight: 1, effective: 1},
	}

	// float rounding can push the target to the exact total; the draw must
	// still return a candidate.
	f.service.randFloat = func() float64 { return 1.0 }
	picked := f.service.draw(eligible)

	require.NotNil(t, picked)
	assert.Equal(t, b.ID, picked.employee.ID)
}

func TestDrawEmptyTier(t *testing.T) {
	f := newAssignmentFixture()
	assert.Nil(t, f.service.draw(nil))
}

func TestAssignFairnessOverManyDraws(t *testing.T) {
	f := newAssignmentFixture()
	team := []models.Employee{
		salesEmployee(f.tenantID, "laura"),
		salesEmployee(f.tenantID, "diego"),
		salesEmployee(f.tenantID, "sofia"),
	}
	f.salesCandidates(
		repository.ChannelCandidate{Employee: team[0], Weight: 1},
		repository.ChannelCandidate{Employee: team[1], Weight: 1},
		repository.ChannelCandidate{Employee: team[2], Weight: 1},
	)

	rng := rand.New(rand.NewSource(7))
	f.service.randFloat = rng.Float64

	tally := map[uuid.UUID]int{}
	f.assignRepo.createActive = func(record *models.AssignmentRecord, markerTag string) (bool, *models.AssignmentRecord, error) {
		tally[record.EmployeeID]++
		record.ID = uuid.New()
		return true, nil, nil
	}

	const draws = 300
	for i := 0; i < draws; i++ {
		_, err := f.service.Assign(&AssignLeadRequest{
			TenantID:  f.tenantID,
			ContactID: uuid.New(),
			Channel:   "whatsapp",
		})
		require.NoError(t, err)
	}

	// Equal weights and zero counts: each employee should land near draws/3
	for _, member := range team {
		assert.InDelta(t, draws/3, tally[member.ID], 40, "employee %s", member.Name)
	}
}

func TestAssignQuotaCapsAllocations(t *testing.T) {
	f := newAssignmentFixture()
	capped := salesEmployee(f.tenantID, "laura")
	open := salesEmployee(f.tenantID, "diego")
	quota := 3
	f.salesCandidates(
		repository.ChannelCandidate{Employee: capped, Weight: 2, MonthlyQuota: &quota},
		repository.ChannelCandidate{Employee: open, Weight: 1},
	)

	counters := map[uuid.UUID]int{}
	f.counterRepo.counts = func(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error) {
		return counters, nil
	}
	f.assignRepo.createActive = func(record *models.AssignmentRecord, markerTag string) (bool, *models.AssignmentRecord, error) {
		counters[record.EmployeeID]++
		record.ID = uuid.New()
		return true, nil, nil
	}

	rng := rand.New(rand.NewSource(11))
	f.service.randFloat = rng.Float64

	for i := 0; i < 10; i++ {
		_, err := f.service.Assign(&AssignLeadRequest{
			TenantID:  f.tenantID,
			ContactID: uuid.New(),
			Channel:   "whatsapp",
		})
		require.NoError(t, err)
	}

	// The heavier employee is shut out once the quota is reached; everything
	// else flows to the unbounded one.
	assert.LessOrEqual(t, counters[capped.ID], quota)
	assert.Equal(t, 10, counters[capped.ID]+counters[open.ID])
	assert.GreaterOrEqual(t, counters[open.ID], 10-quota)
}
