package repository

import (
	"time"

	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StaffMemberRepositoryInterface defines the interface for staff member repository operations
type StaffMemberRepositoryInterface interface {
	Create(member *models.StaffMember) error
	GetByID(id uuid.UUID) (*models.StaffMember, error)
	GetByEmail(email string) (*models.StaffMember, error)
	GetAll(limit, offset int) ([]models.StaffMember, int64, error)
	GetByRole(role models.StaffRole) ([]models.StaffMember, error)
	Update(member *models.StaffMember) error
	Delete(id uuid.UUID) error
	CheckEmailExists(email string, excludeID *uuid.UUID) (bool, error)
}

// UnitRepositoryInterface defines the interface for unit repository operations
type UnitRepositoryInterface interface {
	Create(unit *models.Unit) error
	GetByID(id uuid.UUID) (*models.Unit, error)
	GetByName(name string) (*models.Unit, error)
	GetAll(limit, offset int) ([]models.Unit, int64, error)
	GetByIDs(ids []uuid.UUID) ([]models.Unit, error)
	Update(unit *models.Unit) error
	Delete(id uuid.UUID) error
	GetWithBunks(id uuid.UUID) (*models.Unit, error)
	CheckNameExists(name string, excludeID *uuid.UUID) (bool, error)
}

// BunkRepositoryInterface defines the interface for bunk repository operations
type BunkRepositoryInterface interface {
	Create(bunk *models.Bunk) error
	GetByID(id uuid.UUID) (*models.Bunk, error)
	GetByUnitID(unitID uuid.UUID) ([]models.Bunk, error)
	GetByUnitIDs(unitIDs []uuid.UUID) ([]models.Bunk, error)
	GetByIDs(ids []uuid.UUID) ([]models.Bunk, error)
	GetAll(limit, offset int) ([]models.Bunk, int64, error)
	Update(bunk *models.Bunk) error
	Delete(id uuid.UUID) error
	SetActive(id uuid.UUID, active bool) error
}

// CamperRepositoryInterface defines the interface for camper repository operations
type CamperRepositoryInterface interface {
	Create(camper *models.Camper) error
	GetByID(id uuid.UUID) (*models.Camper, error)
	GetByIDs(ids []uuid.UUID, limit, offset int) ([]models.Camper, int64, error)
	GetAll(limit, offset int) ([]models.Camper, int64, error)
	GetWithBunkHistory(id uuid.UUID) (*models.Camper, error)
	Update(camper *models.Camper) error
	Delete(id uuid.UUID) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	GetAll() ([]models.Session, error)
	GetActiveOn(date time.Time) ([]models.Session, error)
	Update(session *models.Session) error
	Delete(id uuid.UUID) error
}

// CabinRepositoryInterface defines the interface for cabin repository operations
type CabinRepositoryInterface interface {
	Create(cabin *models.Cabin) error
	GetByID(id uuid.UUID) (*models.Cabin, error)
	GetAll() ([]models.Cabin, error)
	GetWithBunks(id uuid.UUID) (*models.Cabin, error)
	Update(cabin *models.Cabin) error
	Delete(id uuid.UUID) error
}

// StaffAssignmentRepositoryInterface defines the interface for staff assignment repository operations
type StaffAssignmentRepositoryInterface interface {
	Create(assignment *models.StaffAssignment) error
	GetByID(id uuid.UUID) (*models.StaffAssignment, error)
	GetByUnitID(unitID uuid.UUID) ([]models.StaffAssignment, error)
	GetByStaffMemberID(staffMemberID uuid.UUID) ([]models.StaffAssignment, error)
	ActiveForUnit(unitID uuid.UUID, role models.StaffRole, asOf time.Time) ([]models.StaffAssignment, error)
	ActiveForStaff(staffMemberID uuid.UUID, role models.StaffRole, asOf time.Time) ([]models.StaffAssignment, error)
	LegacyUnitIDsForStaff(staffMemberID uuid.UUID, role models.StaffRole, asOf time.Time) ([]uuid.UUID, error)
	SetPrimary(id uuid.UUID) error
	Close(id uuid.UUID, endDate time.Time) error
	ExistsForTuple(unitID, staffMemberID uuid.UUID, role models.StaffRole) (bool, error)
}

// CounselorBunkAssignmentRepositoryInterface defines the interface for counselor bunk assignment repository operations
type CounselorBunkAssignmentRepositoryInterface interface {
	Create(assignment *models.CounselorBunkAssignment) error
	GetByID(id uuid.UUID) (*models.CounselorBunkAssignment, error)
	GetByBunkID(bunkID uuid.UUID) ([]models.CounselorBunkAssignment, error)
	ActiveForCounselor(counselorID uuid.UUID, asOf time.Time) ([]models.CounselorBunkAssignment, error)
	ActiveForBunk(bunkID uuid.UUID, asOf time.Time) ([]models.CounselorBunkAssignment, error)
	SetPrimary(id uuid.UUID) error
	Close(id uuid.UUID, endDate time.Time) error
}

// CamperBunkAssignmentRepositoryInterface defines the interface for camper bunk assignment repository operations
type CamperBunkAssignmentRepositoryInterface interface {
	Create(assignment *models.CamperBunkAssignment) error
	GetByID(id uuid.UUID) (*models.CamperBunkAssignment, error)
	GetByCamperID(camperID uuid.UUID) ([]models.CamperBunkAssignment, error)
	ActiveForCamper(camperID uuid.UUID, asOf time.Time) ([]models.CamperBunkAssignment, error)
	CamperIDsForBunks(bunkIDs []uuid.UUID, activeOnly bool, asOf time.Time) ([]uuid.UUID, error)
	Close(id uuid.UUID, endDate time.Time) error
}

// BunkLogRepositoryInterface defines the interface for bunk log repository operations
type BunkLogRepositoryInterface interface {
	Create(log *models.BunkLog) error
	GetByID(id uuid.UUID) (*models.BunkLog, error)
	ExistsForBunkDate(bunkID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error)
	ListByBunks(bunkIDs []uuid.UUID, limit, offset int) ([]models.BunkLog, int64, error)
	ListAll(limit, offset int) ([]models.BunkLog, int64, error)
	GetByBunkAndDate(bunkID uuid.UUID, date time.Time) (*models.BunkLog, error)
	Update(log *models.BunkLog) error
	Delete(id uuid.UUID) error
	Redate(id uuid.UUID, date time.Time) error
}

// CounselorLogRepositoryInterface defines the interface for counselor log repository operations
type CounselorLogRepositoryInterface interface {
	Create(log *models.CounselorLog) error
	GetByID(id uuid.UUID) (*models.CounselorLog, error)
	ExistsForCounselorDate(counselorID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error)
	ListByBunks(bunkIDs []uuid.UUID, limit, offset int) ([]models.CounselorLog, int64, error)
	ListByCounselor(counselorID uuid.UUID, limit, offset int) ([]models.CounselorLog, int64, error)
	ListAll(limit, offset int) ([]models.CounselorLog, int64, error)
	Update(log *models.CounselorLog) error
	Delete(id uuid.UUID) error
	Redate(id uuid.UUID, date time.Time) error
}

// SupplyOrderRepositoryInterface defines the interface for supply order repository operations
type SupplyOrderRepositoryInterface interface {
	Create(order *models.SupplyOrder) error
	GetByID(id uuid.UUID) (*models.SupplyOrder, error)
	ListByUnits(unitIDs []uuid.UUID, limit, offset int) ([]models.SupplyOrder, int64, error)
	ListAll(limit, offset int) ([]models.SupplyOrder, int64, error)
	Update(order *models.SupplyOrder) error
	Delete(id uuid.UUID) error
	SetStatus(id uuid.UUID, status models.SupplyOrderStatus) error
}
