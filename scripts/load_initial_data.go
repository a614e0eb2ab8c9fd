package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"whatsapp-crm-backend/internal/config"
	"whatsapp-crm-backend/internal/database"
	"whatsapp-crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name        string                 `yaml:"name"`
	DisplayName string                 `yaml:"display_name"`
	Timezone    string                 `yaml:"timezone"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type ChannelSettingData struct {
	Channel      string  `yaml:"channel"`
	Enabled      bool    `yaml:"enabled"`
	Weight       float64 `yaml:"weight"`
	MonthlyQuota *int    `yaml:"monthly_quota,omitempty"`
}

type EmployeeData struct {
	Name            string                 `yaml:"name"`
	TenantName      string                 `yaml:"tenant_name"`
	FullName        string                 `yaml:"full_name"`
	Email           string                 `yaml:"email,omitempty"`
	PhoneNumber     string                 `yaml:"phone_number"`
	Role            string                 `yaml:"role"`
	IsActive        bool                   `yaml:"is_active"`
	ChannelSettings []ChannelSettingData   `yaml:"channel_settings,omitempty"`
	Metadata        map[string]interface{} `yaml:"metadata,omitempty"`
}

type ContactData struct {
	TenantName  string                 `yaml:"tenant_name"`
	Phone       string                 `yaml:"phone"`
	DisplayName string                 `yaml:"display_name"`
	Tags        []string               `yaml:"tags,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type CalendarConfigData struct {
	TenantName       string   `yaml:"tenant_name"`
	Key              string   `yaml:"key"`
	SelectorTag      string   `yaml:"selector_tag,omitempty"`
	SlotMinutes      int      `yaml:"slot_minutes"`
	OpenHour         int      `yaml:"open_hour"`
	OpenMinute       int      `yaml:"open_minute"`
	CloseHour        int      `yaml:"close_hour"`
	CloseMinute      int      `yaml:"close_minute"`
	LookaheadDays    int      `yaml:"lookahead_days"`
	Timezone         string   `yaml:"timezone"`
	StaffModel       bool     `yaml:"staff_model"`
	RequireStaffPair bool     `yaml:"require_staff_pair"`
	DefaultMinutes   int      `yaml:"default_minutes"`
	ExtendedMinutes  int      `yaml:"extended_minutes"`
	ExtendedKeywords []string `yaml:"extended_keywords,omitempty"`
	ExternalCalendar string   `yaml:"external_calendar,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type CalendarConfigsFile struct {
	CalendarConfigs []CalendarConfigData `yaml:"calendar_configs"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	contacts, err := loadContacts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	calendarConfigs, err := loadCalendarConfigs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load calendar configs: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create employees with their channel settings
	employeeCreated := 0
	for _, employeeData := range employees {
		_, created, err := createEmployee(db, employeeData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Name, err)
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("Employees: %d created, %d total", employeeCreated, len(employees))

	// Create contacts
	contactCreated := 0
	for _, contactData := range contacts {
		_, created, err := createContact(db, contactData, tenantMap)
		if err != nil {
			log.Printf("Warning: failed to create contact %s: %v", contactData.Phone, err)
			continue // Continue with other contacts
		}
		if created {
			contactCreated++
		}
	}
	log.Printf("Contacts: %d created, %d total", contactCreated, len(contacts))

	// Create calendar configurations
	configCreated := 0
	for _, configData := range calendarConfigs {
		_, created, err := createCalendarConfig(db, configData, tenantMap)
		if err != nil {
			log.Printf("Warning: failed to create calendar config %s/%s: %v", configData.TenantName, configData.Key, err)
			continue // Continue with other configs
		}
		if created {
			configCreated++
		}
	}
	log.Printf("Calendar configs: %d created, %d total", configCreated, len(calendarConfigs))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadContacts(dataDir string) ([]ContactData, error) {
	var allContacts []ContactData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contacts") {
			var file ContactsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allContacts = append(allContacts, file.Contacts...)
		}
		return nil
	})

	return allContacts, err
}

func loadCalendarConfigs(dataDir string) ([]CalendarConfigData, error) {
	var allConfigs []CalendarConfigData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "calendars") {
			var file CalendarConfigsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allConfigs = append(allConfigs, file.CalendarConfigs...)
		}
		return nil
	})

	return allConfigs, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(tenantData.Metadata)

			timezone := tenantData.Timezone
			if timezone == "" {
				timezone = "UTC"
			}

			tenant = models.Tenant{
				Name:        tenantData.Name,
				DisplayName: tenantData.DisplayName,
				Timezone:    timezone,
				Metadata:    metadataJSON,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, tenantMap map[string]*models.Tenant) (*models.Employee, bool, error) {
	tenant := tenantMap[employeeData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for employee %s", employeeData.TenantName, employeeData.Name)
	}

	var employee models.Employee
	if err := db.Where("name = ? AND tenant_id = ?", employeeData.Name, tenant.ID).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(employeeData.Metadata)

			role := models.EmployeeRoleSales
			if employeeData.Role != "" {
				role = models.EmployeeRole(employeeData.Role)
			}

			employee = models.Employee{
				TenantID:    tenant.ID,
				Name:        employeeData.Name,
				FullName:    employeeData.FullName,
				Email:       employeeData.Email,
				PhoneNumber: employeeData.PhoneNumber,
				Role:        role,
				IsActive:    employeeData.IsActive,
				Metadata:    metadataJSON,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}

			// Create per-channel assignment settings
			for _, settingData := range employeeData.ChannelSettings {
				setting := models.EmployeeChannelSetting{
					EmployeeID:   employee.ID,
					Channel:      settingData.Channel,
					Enabled:      settingData.Enabled,
					Weight:       settingData.Weight,
					MonthlyQuota: settingData.MonthlyQuota,
				}
				if err := db.Create(&setting).Error; err != nil {
					log.Printf("Warning: failed to create channel setting %s for employee %s: %v", settingData.Channel, employeeData.Name, err)
				}
			}

			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createContact(db *gorm.DB, contactData ContactData, tenantMap map[string]*models.Tenant) (*models.Contact, bool, error) {
	tenant := tenantMap[contactData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for contact %s", contactData.TenantName, contactData.Phone)
	}

	var contact models.Contact
	if err := db.Where("phone = ? AND tenant_id = ?", contactData.Phone, tenant.ID).First(&contact).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(contactData.Metadata)

			contact = models.Contact{
				TenantID:    tenant.ID,
				Phone:       contactData.Phone,
				DisplayName: contactData.DisplayName,
				Tags:        contactData.Tags,
				Metadata:    metadataJSON,
			}

			if err := db.Create(&contact).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create contact: %w", err)
			}
			return &contact, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query contact: %w", err)
		}
	}

	return &contact, false, nil // created = false (existing)
}

func createCalendarConfig(db *gorm.DB, configData CalendarConfigData, tenantMap map[string]*models.Tenant) (*models.CalendarConfiguration, bool, error) {
	tenant := tenantMap[configData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for calendar config %s", configData.TenantName, configData.Key)
	}

	key := configData.Key
	if key == "" {
		key = "default"
	}

	var cfg models.CalendarConfiguration
	if err := db.Where("key = ? AND tenant_id = ?", key, tenant.ID).First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			cfg = models.CalendarConfiguration{
				TenantID:         tenant.ID,
				Key:              key,
				SelectorTag:      configData.SelectorTag,
				SlotMinutes:      orDefault(configData.SlotMinutes, 30),
				OpenHour:         configData.OpenHour,
				OpenMinute:       configData.OpenMinute,
				CloseHour:        orDefault(configData.CloseHour, 18),
				CloseMinute:      configData.CloseMinute,
				LookaheadDays:    orDefault(configData.LookaheadDays, 14),
				Timezone:         tenant.Timezone,
				StaffModel:       configData.StaffModel,
				RequireStaffPair: configData.RequireStaffPair,
				DefaultMinutes:   orDefault(configData.DefaultMinutes, 60),
				ExtendedMinutes:  orDefault(configData.ExtendedMinutes, 120),
				ExtendedKeywords: configData.ExtendedKeywords,
				ExternalCalendar: configData.ExternalCalendar,
			}
			if configData.Timezone != "" {
				cfg.Timezone = configData.Timezone
			}
			if cfg.OpenHour == 0 && cfg.OpenMinute == 0 {
				cfg.OpenHour = 9
			}

			if err := cfg.Validate(); err != nil {
				return nil, false, err
			}

			if err := db.Create(&cfg).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create calendar config: %w", err)
			}
			return &cfg, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query calendar config: %w", err)
		}
	}

	return &cfg, false, nil // created = false (existing)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
