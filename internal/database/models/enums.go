package models

// EmployeeRole represents the role of an employee within a tenant.
// Roles form an ordered tier used for assignment fallback: leads go to
// Sales first, then Managers, then Admins.
type EmployeeRole string

const (
	EmployeeRoleSales   EmployeeRole = "sales"
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleAdmin   EmployeeRole = "admin"
)

// RoleTiers lists employee roles in assignment priority order.
var RoleTiers = []EmployeeRole{
	EmployeeRoleSales,
	EmployeeRoleManager,
	EmployeeRoleAdmin,
}

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleSales, EmployeeRoleManager, EmployeeRoleAdmin:
		return true
	}
	return false
}

// AssignmentStatus represents the status of an assignment record
type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusInactive AssignmentStatus = "inactive"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusInactive:
		return true
	}
	return false
}

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// IsValid checks if the AppointmentStatus is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// StopBotTag is the contact tag that suppresses all automation for a contact.
const StopBotTag = "stop bot"

// CancelledTag is the marker tag added to a contact when their appointment is cancelled.
const CancelledTag = "cancelled"

// BookedTag is the marker tag added to a contact when an appointment is booked.
const BookedTag = "appointment booked"
