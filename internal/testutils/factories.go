package testutils

import (
	"time"

	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
)

// StaffMemberFactory provides methods to create test StaffMember data
type StaffMemberFactory struct{}

// NewStaffMemberFactory creates a new StaffMemberFactory
func NewStaffMemberFactory() *StaffMemberFactory {
	return &StaffMemberFactory{}
}

// Create creates a test StaffMember with default values
func (f *StaffMemberFactory) Create() *models.StaffMember {
	id := uuid.New()
	return &models.StaffMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Jordan Counselor",
		Email:    "staff-" + id.String()[:8] + "@camp.test",
		Role:     models.StaffRoleCounselor,
		IsStaff:  false,
		IsActive: true,
		Timezone: "America/New_York",
	}
}

// WithEmail sets a custom email for the staff member
func (f *StaffMemberFactory) WithEmail(email string) *models.StaffMember {
	member := f.Create()
	member.Email = email
	return member
}

// WithRole sets a custom role for the staff member
func (f *StaffMemberFactory) WithRole(role models.StaffRole) *models.StaffMember {
	member := f.Create()
	member.Role = role
	return member
}

// WithTimezone sets a custom timezone for the staff member
func (f *StaffMemberFactory) WithTimezone(tz string) *models.StaffMember {
	member := f.Create()
	member.Timezone = tz
	return member
}

// UnitFactory provides methods to create test Unit data
type UnitFactory struct{}

// NewUnitFactory creates a new UnitFactory
func NewUnitFactory() *UnitFactory {
	return &UnitFactory{}
}

// Create creates a test Unit with default values
func (f *UnitFactory) Create() *models.Unit {
	id := uuid.New()
	return &models.Unit{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Unit " + id.String()[:8],
		Description: "A test unit",
	}
}

// WithName sets a custom name for the unit
func (f *UnitFactory) WithName(name string) *models.Unit {
	unit := f.Create()
	unit.Name = name
	return unit
}

// WithLegacyUnitHead sets the deprecated unit head column
func (f *UnitFactory) WithLegacyUnitHead(staffID uuid.UUID) *models.Unit {
	unit := f.Create()
	unit.LegacyUnitHeadID = &staffID
	return unit
}

// WithLegacyCamperCare sets the deprecated camper care column
func (f *UnitFactory) WithLegacyCamperCare(staffID uuid.UUID) *models.Unit {
	unit := f.Create()
	unit.LegacyCamperCareID = &staffID
	return unit
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session with default values
func (f *SessionFactory) Create() *models.Session {
	id := uuid.New()
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Session " + id.String()[:8],
		StartDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
	}
}

// CabinFactory provides methods to create test Cabin data
type CabinFactory struct{}

// NewCabinFactory creates a new CabinFactory
func NewCabinFactory() *CabinFactory {
	return &CabinFactory{}
}

// Create creates a test Cabin with default values
func (f *CabinFactory) Create() *models.Cabin {
	id := uuid.New()
	return &models.Cabin{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Cabin " + id.String()[:8],
		Capacity: 12,
	}
}

// BunkFactory provides methods to create test Bunk data
type BunkFactory struct{}

// NewBunkFactory creates a new BunkFactory
func NewBunkFactory() *BunkFactory {
	return &BunkFactory{}
}

// Create creates a test Bunk with default values
func (f *BunkFactory) Create() *models.Bunk {
	id := uuid.New()
	return &models.Bunk{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Bunk " + id.String()[:8],
		IsActive: true,
	}
}

// WithUnit sets the unit ID for the bunk
func (f *BunkFactory) WithUnit(unitID uuid.UUID) *models.Bunk {
	bunk := f.Create()
	bunk.UnitID = &unitID
	return bunk
}

// CamperFactory provides methods to create test Camper data
type CamperFactory struct{}

// NewCamperFactory creates a new CamperFactory
func NewCamperFactory() *CamperFactory {
	return &CamperFactory{}
}

// Create creates a test Camper with default values
func (f *CamperFactory) Create() *models.Camper {
	id := uuid.New()
	birth := time.Date(2015, 3, 12, 0, 0, 0, 0, time.UTC)
	return &models.Camper{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Camper",
		LastName:  "Test " + id.String()[:8],
		BirthDate: &birth,
	}
}

// StaffAssignmentFactory provides methods to create test StaffAssignment data
type StaffAssignmentFactory struct{}

// NewStaffAssignmentFactory creates a new StaffAssignmentFactory
func NewStaffAssignmentFactory() *StaffAssignmentFactory {
	return &StaffAssignmentFactory{}
}

// Create creates a test StaffAssignment with default values. The caller must
// set UnitID and StaffMemberID to persisted rows.
func (f *StaffAssignmentFactory) Create() *models.StaffAssignment {
	return &models.StaffAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Role:      models.StaffRoleUnitHead,
		IsPrimary: false,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithWindow sets the active window for the assignment
func (f *StaffAssignmentFactory) WithWindow(start time.Time, end *time.Time) *models.StaffAssignment {
	assignment := f.Create()
	assignment.StartDate = start
	assignment.EndDate = end
	return assignment
}

// CounselorBunkAssignmentFactory provides methods to create test
// CounselorBunkAssignment data
type CounselorBunkAssignmentFactory struct{}

// NewCounselorBunkAssignmentFactory creates a new CounselorBunkAssignmentFactory
func NewCounselorBunkAssignmentFactory() *CounselorBunkAssignmentFactory {
	return &CounselorBunkAssignmentFactory{}
}

// Create creates a test CounselorBunkAssignment. The caller must set
// CounselorID and BunkID to persisted rows.
func (f *CounselorBunkAssignmentFactory) Create() *models.CounselorBunkAssignment {
	return &models.CounselorBunkAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		IsPrimary: false,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// CamperBunkAssignmentFactory provides methods to create test
// CamperBunkAssignment data
type CamperBunkAssignmentFactory struct{}

// NewCamperBunkAssignmentFactory creates a new CamperBunkAssignmentFactory
func NewCamperBunkAssignmentFactory() *CamperBunkAssignmentFactory {
	return &CamperBunkAssignmentFactory{}
}

// Create creates a test CamperBunkAssignment. The caller must set CamperID
// and BunkID to persisted rows.
func (f *CamperBunkAssignmentFactory) Create() *models.CamperBunkAssignment {
	return &models.CamperBunkAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StartDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

// BunkLogFactory provides methods to create test BunkLog data
type BunkLogFactory struct{}

// NewBunkLogFactory creates a new BunkLogFactory
func NewBunkLogFactory() *BunkLogFactory {
	return &BunkLogFactory{}
}

// Create creates a test BunkLog. The caller must set BunkID and AuthorID to
// persisted rows.
func (f *BunkLogFactory) Create() *models.BunkLog {
	return &models.BunkLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:      time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		Summary:   "Quiet day at the waterfront",
		MoodScore: 4,
	}
}

// CounselorLogFactory provides methods to create test CounselorLog data
type CounselorLogFactory struct{}

// NewCounselorLogFactory creates a new CounselorLogFactory
func NewCounselorLogFactory() *CounselorLogFactory {
	return &CounselorLogFactory{}
}

// Create creates a test CounselorLog. The caller must set CounselorID,
// AuthorID and BunkID to persisted rows.
func (f *CounselorLogFactory) Create() *models.CounselorLog {
	return &models.CounselorLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:       time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		Highlights: "Campfire singalong went well",
		HoursSlept: 7.5,
	}
}

// SupplyOrderFactory provides methods to create test SupplyOrder data
type SupplyOrderFactory struct{}

// NewSupplyOrderFactory creates a new SupplyOrderFactory
func NewSupplyOrderFactory() *SupplyOrderFactory {
	return &SupplyOrderFactory{}
}

// Create creates a test SupplyOrder. The caller must set UnitID and
// RequestedBy to persisted rows.
func (f *SupplyOrderFactory) Create() *models.SupplyOrder {
	return &models.SupplyOrder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Status: models.SupplyOrderStatusPending,
		Items:  []byte(`[{"name":"sunscreen","quantity":6}]`),
		Notes:  "Restock before the weekend",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	StaffMember             *StaffMemberFactory
	Unit                    *UnitFactory
	Session                 *SessionFactory
	Cabin                   *CabinFactory
	Bunk                    *BunkFactory
	Camper                  *CamperFactory
	StaffAssignment         *StaffAssignmentFactory
	CounselorBunkAssignment *CounselorBunkAssignmentFactory
	CamperBunkAssignment    *CamperBunkAssignmentFactory
	BunkLog                 *BunkLogFactory
	CounselorLog            *CounselorLogFactory
	SupplyOrder             *SupplyOrderFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		StaffMember:             NewStaffMemberFactory(),
		Unit:                    NewUnitFactory(),
		Session:                 NewSessionFactory(),
		Cabin:                   NewCabinFactory(),
		Bunk:                    NewBunkFactory(),
		Camper:                  NewCamperFactory(),
		StaffAssignment:         NewStaffAssignmentFactory(),
		CounselorBunkAssignment: NewCounselorBunkAssignmentFactory(),
		CamperBunkAssignment:    NewCamperBunkAssignmentFactory(),
		BunkLog:                 NewBunkLogFactory(),
		CounselorLog:            NewCounselorLogFactory(),
		SupplyOrder:             NewSupplyOrderFactory(),
	}
}
