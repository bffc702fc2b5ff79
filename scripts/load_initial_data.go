package main

import (
	"camp-records-backend/internal/config"
	"camp-records-backend/internal/database"
	"camp-records-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SessionData struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type CabinData struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

type UnitData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type StaffMemberData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	IsStaff  bool   `yaml:"is_staff"`
	IsActive bool   `yaml:"is_active"`
	Timezone string `yaml:"timezone,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
}

type BunkData struct {
	Name        string `yaml:"name"`
	UnitName    string `yaml:"unit_name,omitempty"`
	CabinName   string `yaml:"cabin_name,omitempty"`
	SessionName string `yaml:"session_name,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type CamperData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	BirthDate string `yaml:"birth_date,omitempty"`
	BunkName  string `yaml:"bunk_name,omitempty"`
	StartDate string `yaml:"start_date,omitempty"`
	Notes     string `yaml:"notes,omitempty"`
}

type StaffAssignmentData struct {
	UnitName   string `yaml:"unit_name"`
	StaffEmail string `yaml:"staff_email"`
	Role       string `yaml:"role"`
	IsPrimary  bool   `yaml:"is_primary"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date,omitempty"`
}

type CounselorAssignmentData struct {
	BunkName       string `yaml:"bunk_name"`
	CounselorEmail string `yaml:"counselor_email"`
	IsPrimary      bool   `yaml:"is_primary"`
	StartDate      string `yaml:"start_date"`
	EndDate        string `yaml:"end_date,omitempty"`
}

// File structures
type SessionsFile struct {
	Sessions []SessionData `yaml:"sessions"`
}

type CabinsFile struct {
	Cabins []CabinData `yaml:"cabins"`
}

type UnitsFile struct {
	Units []UnitData `yaml:"units"`
}

type StaffMembersFile struct {
	StaffMembers []StaffMemberData `yaml:"staff_members"`
}

type BunksFile struct {
	Bunks []BunkData `yaml:"bunks"`
}

type CampersFile struct {
	Campers []CamperData `yaml:"campers"`
}

type StaffAssignmentsFile struct {
	StaffAssignments []StaffAssignmentData `yaml:"staff_assignments"`
}

type CounselorAssignmentsFile struct {
	CounselorAssignments []CounselorAssignmentData `yaml:"counselor_assignments"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

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

	log.Println("✅ Initial data loaded successfully!")
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
	sessions, err := loadYAMLSection(dataDir, "sessions", func(data []byte) ([]SessionData, error) {
		var file SessionsFile
		err := yaml.Unmarshal(data, &file)
		return file.Sessions, err
	})
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	cabins, err := loadYAMLSection(dataDir, "cabins", func(data []byte) ([]CabinData, error) {
		var file CabinsFile
		err := yaml.Unmarshal(data, &file)
		return file.Cabins, err
	})
	if err != nil {
		return fmt.Errorf("failed to load cabins: %w", err)
	}

	units, err := loadYAMLSection(dataDir, "units", func(data []byte) ([]UnitData, error) {
		var file UnitsFile
		err := yaml.Unmarshal(data, &file)
		return file.Units, err
	})
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}

	staffMembers, err := loadYAMLSection(dataDir, "staff_members", func(data []byte) ([]StaffMemberData, error) {
		var file StaffMembersFile
		err := yaml.Unmarshal(data, &file)
		return file.StaffMembers, err
	})
	if err != nil {
		return fmt.Errorf("failed to load staff members: %w", err)
	}

	bunks, err := loadYAMLSection(dataDir, "bunks", func(data []byte) ([]BunkData, error) {
		var file BunksFile
		err := yaml.Unmarshal(data, &file)
		return file.Bunks, err
	})
	if err != nil {
		return fmt.Errorf("failed to load bunks: %w", err)
	}

	campers, err := loadYAMLSection(dataDir, "campers", func(data []byte) ([]CamperData, error) {
		var file CampersFile
		err := yaml.Unmarshal(data, &file)
		return file.Campers, err
	})
	if err != nil {
		return fmt.Errorf("failed to load campers: %w", err)
	}

	staffAssignments, err := loadYAMLSection(dataDir, "staff_assignments", func(data []byte) ([]StaffAssignmentData, error) {
		var file StaffAssignmentsFile
		err := yaml.Unmarshal(data, &file)
		return file.StaffAssignments, err
	})
	if err != nil {
		return fmt.Errorf("failed to load staff assignments: %w", err)
	}

	counselorAssignments, err := loadYAMLSection(dataDir, "counselor_assignments", func(data []byte) ([]CounselorAssignmentData, error) {
		var file CounselorAssignmentsFile
		err := yaml.Unmarshal(data, &file)
		return file.CounselorAssignments, err
	})
	if err != nil {
		return fmt.Errorf("failed to load counselor assignments: %w", err)
	}

	// Create sessions first
	sessionMap := make(map[string]*models.Session)
	sessionCreated := 0
	for _, sessionData := range sessions {
		session, created, err := createSession(db, sessionData)
		if err != nil {
			return fmt.Errorf("failed to create session %s: %w", sessionData.Name, err)
		}
		sessionMap[sessionData.Name] = session
		if created {
			sessionCreated++
		}
	}
	log.Printf("📋 Sessions: %d created, %d total", sessionCreated, len(sessions))

	// Create cabins
	cabinMap := make(map[string]*models.Cabin)
	cabinCreated := 0
	for _, cabinData := range cabins {
		cabin, created, err := createCabin(db, cabinData)
		if err != nil {
			return fmt.Errorf("failed to create cabin %s: %w", cabinData.Name, err)
		}
		cabinMap[cabinData.Name] = cabin
		if created {
			cabinCreated++
		}
	}
	log.Printf("📋 Cabins: %d created, %d total", cabinCreated, len(cabins))

	// Create units
	unitMap := make(map[string]*models.Unit)
	unitCreated := 0
	for _, unitData := range units {
		unit, created, err := createUnit(db, unitData)
		if err != nil {
			return fmt.Errorf("failed to create unit %s: %w", unitData.Name, err)
		}
		unitMap[unitData.Name] = unit
		if created {
			unitCreated++
		}
	}
	log.Printf("📋 Units: %d created, %d total", unitCreated, len(units))

	// Create staff members
	staffMap := make(map[string]*models.StaffMember)
	staffCreated := 0
	for _, staffData := range staffMembers {
		member, created, err := createStaffMember(db, staffData)
		if err != nil {
			return fmt.Errorf("failed to create staff member %s: %w", staffData.Email, err)
		}
		staffMap[staffData.Email] = member
		if created {
			staffCreated++
		}
	}
	log.Printf("📋 Staff members: %d created, %d total", staffCreated, len(staffMembers))

	// Create bunks
	bunkMap := make(map[string]*models.Bunk)
	bunkCreated := 0
	for _, bunkData := range bunks {
		bunk, created, err := createBunk(db, bunkData, unitMap, cabinMap, sessionMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create bunk %s: %v", bunkData.Name, err)
			continue // Continue with other bunks
		}
		bunkMap[bunkData.Name] = bunk
		if created {
			bunkCreated++
		}
	}
	log.Printf("📋 Bunks: %d created, %d total", bunkCreated, len(bunks))

	// Create campers with their stays
	camperCreated := 0
	for _, camperData := range campers {
		_, created, err := createCamper(db, camperData, bunkMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create camper %s %s: %v", camperData.FirstName, camperData.LastName, err)
			continue // Continue with other campers
		}
		if created {
			camperCreated++
		}
	}
	log.Printf("📋 Campers: %d created, %d total", camperCreated, len(campers))

	// Create staff assignments
	staffAssignmentCreated := 0
	for _, assignmentData := range staffAssignments {
		created, err := createStaffAssignment(db, assignmentData, unitMap, staffMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create staff assignment for %s: %v", assignmentData.StaffEmail, err)
			continue
		}
		if created {
			staffAssignmentCreated++
		}
	}
	log.Printf("📋 Staff assignments: %d created, %d total", staffAssignmentCreated, len(staffAssignments))

	// Create counselor bunk assignments
	counselorAssignmentCreated := 0
	for _, assignmentData := range counselorAssignments {
		created, err := createCounselorAssignment(db, assignmentData, bunkMap, staffMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create counselor assignment for %s: %v", assignmentData.CounselorEmail, err)
			continue
		}
		if created {
			counselorAssignmentCreated++
		}
	}
	log.Printf("📋 Counselor assignments: %d created, %d total", counselorAssignmentCreated, len(counselorAssignments))

	return nil
}

// loadYAMLSection walks dataDir and accumulates entries from every YAML file
// whose path contains the section keyword.
func loadYAMLSection[T any](dataDir, keyword string, unmarshal func([]byte) ([]T, error)) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, keyword) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			entries, err := unmarshal(data)
			if err != nil {
				return err
			}

			all = append(all, entries...)
		}
		return nil
	})

	return all, err
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func createSession(db *gorm.DB, sessionData SessionData) (*models.Session, bool, error) {
	var session models.Session
	if err := db.Where("name = ?", sessionData.Name).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			startDate, err := parseDate(sessionData.StartDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid start_date: %w", err)
			}
			endDate, err := parseDate(sessionData.EndDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid end_date: %w", err)
			}

			session = models.Session{
				Name:      sessionData.Name,
				StartDate: startDate,
				EndDate:   endDate,
			}

			if err := db.Create(&session).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create session: %w", err)
			}
			return &session, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query session: %w", err)
		}
	}

	return &session, false, nil // created = false (existing)
}

func createCabin(db *gorm.DB, cabinData CabinData) (*models.Cabin, bool, error) {
	var cabin models.Cabin
	if err := db.Where("name = ?", cabinData.Name).First(&cabin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			cabin = models.Cabin{
				Name:     cabinData.Name,
				Capacity: cabinData.Capacity,
			}

			if err := db.Create(&cabin).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create cabin: %w", err)
			}
			return &cabin, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query cabin: %w", err)
		}
	}

	return &cabin, false, nil // created = false (existing)
}

func createUnit(db *gorm.DB, unitData UnitData) (*models.Unit, bool, error) {
	var unit models.Unit
	if err := db.Where("name = ?", unitData.Name).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			unit = models.Unit{
				Name:        unitData.Name,
				Description: unitData.Description,
			}

			if err := db.Create(&unit).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create unit: %w", err)
			}
			return &unit, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query unit: %w", err)
		}
	}

	return &unit, false, nil // created = false (existing)
}

func createStaffMember(db *gorm.DB, staffData StaffMemberData) (*models.StaffMember, bool, error) {
	var member models.StaffMember
	if err := db.Where("email = ?", staffData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			timezone := staffData.Timezone
			if timezone == "" {
				timezone = "America/New_York"
			}

			member = models.StaffMember{
				Name:     staffData.Name,
				Email:    staffData.Email,
				Role:     models.StaffRole(staffData.Role),
				IsStaff:  staffData.IsStaff,
				IsActive: staffData.IsActive,
				Timezone: timezone,
				Phone:    staffData.Phone,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create staff member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query staff member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createBunk(db *gorm.DB, bunkData BunkData, unitMap map[string]*models.Unit, cabinMap map[string]*models.Cabin, sessionMap map[string]*models.Session) (*models.Bunk, bool, error) {
	var unitID *uuid.UUID
	if bunkData.UnitName != "" {
		if unit := unitMap[bunkData.UnitName]; unit != nil {
			unitID = &unit.ID
		} else {
			log.Printf("⚠️  Warning: unit %s not found for bunk %s", bunkData.UnitName, bunkData.Name)
		}
	}

	var cabinID *uuid.UUID
	if bunkData.CabinName != "" {
		if cabin := cabinMap[bunkData.CabinName]; cabin != nil {
			cabinID = &cabin.ID
		}
	}

	var sessionID *uuid.UUID
	if bunkData.SessionName != "" {
		if session := sessionMap[bunkData.SessionName]; session != nil {
			sessionID = &session.ID
		}
	}

	var bunk models.Bunk
	if err := db.Where("name = ?", bunkData.Name).First(&bunk).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			bunk = models.Bunk{
				Name:      bunkData.Name,
				UnitID:    unitID,
				CabinID:   cabinID,
				SessionID: sessionID,
				IsActive:  bunkData.IsActive,
			}

			if err := db.Create(&bunk).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create bunk: %w", err)
			}
			return &bunk, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query bunk: %w", err)
		}
	}

	return &bunk, false, nil // created = false (existing)
}

func createCamper(db *gorm.DB, camperData CamperData, bunkMap map[string]*models.Bunk) (*models.Camper, bool, error) {
	var camper models.Camper
	if err := db.Where("first_name = ? AND last_name = ?", camperData.FirstName, camperData.LastName).First(&camper).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var birthDate *time.Time
			if camperData.BirthDate != "" {
				parsed, err := parseDate(camperData.BirthDate)
				if err != nil {
					return nil, false, fmt.Errorf("invalid birth_date: %w", err)
				}
				birthDate = &parsed
			}

			camper = models.Camper{
				FirstName: camperData.FirstName,
				LastName:  camperData.LastName,
				BirthDate: birthDate,
				Notes:     camperData.Notes,
			}

			if err := db.Create(&camper).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create camper: %w", err)
			}

			// If a bunk is specified, open the camper's stay
			if camperData.BunkName != "" {
				if bunk := bunkMap[camperData.BunkName]; bunk != nil {
					startDate := time.Now().UTC().Truncate(24 * time.Hour)
					if camperData.StartDate != "" {
						if parsed, err := parseDate(camperData.StartDate); err == nil {
							startDate = parsed
						}
					}
					stay := models.CamperBunkAssignment{
						CamperID:  camper.ID,
						BunkID:    bunk.ID,
						StartDate: startDate,
					}
					if err := db.Create(&stay).Error; err != nil {
						log.Printf("⚠️  Warning: failed to create camper stay: %v", err)
					}
				} else {
					log.Printf("⚠️  Warning: bunk %s not found for camper %s %s", camperData.BunkName, camperData.FirstName, camperData.LastName)
				}
			}
			return &camper, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query camper: %w", err)
		}
	}

	return &camper, false, nil // created = false (existing)
}

func createStaffAssignment(db *gorm.DB, assignmentData StaffAssignmentData, unitMap map[string]*models.Unit, staffMap map[string]*models.StaffMember) (bool, error) {
	unit := unitMap[assignmentData.UnitName]
	if unit == nil {
		return false, fmt.Errorf("unit %s not found", assignmentData.UnitName)
	}

	member := staffMap[assignmentData.StaffEmail]
	if member == nil {
		return false, fmt.Errorf("staff member %s not found", assignmentData.StaffEmail)
	}

	role := models.StaffRole(assignmentData.Role)
	if !role.IsUnitRole() {
		return false, fmt.Errorf("role %s is not a unit role", assignmentData.Role)
	}

	startDate, err := parseDate(assignmentData.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start_date: %w", err)
	}

	var endDate *time.Time
	if assignmentData.EndDate != "" {
		parsed, err := parseDate(assignmentData.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end_date: %w", err)
		}
		endDate = &parsed
	}

	var existing models.StaffAssignment
	err = db.Where("unit_id = ? AND staff_member_id = ? AND role = ?", unit.ID, member.ID, role).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		assignment := models.StaffAssignment{
			UnitID:        unit.ID,
			StaffMemberID: member.ID,
			Role:          role,
			IsPrimary:     assignmentData.IsPrimary,
			StartDate:     startDate,
			EndDate:       endDate,
		}
		if err := db.Create(&assignment).Error; err != nil {
			return false, fmt.Errorf("failed to create staff assignment: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query staff assignment: %w", err)
	}

	return false, nil
}

func createCounselorAssignment(db *gorm.DB, assignmentData CounselorAssignmentData, bunkMap map[string]*models.Bunk, staffMap map[string]*models.StaffMember) (bool, error) {
	bunk := bunkMap[assignmentData.BunkName]
	if bunk == nil {
		return false, fmt.Errorf("bunk %s not found", assignmentData.BunkName)
	}

	counselor := staffMap[assignmentData.CounselorEmail]
	if counselor == nil {
		return false, fmt.Errorf("counselor %s not found", assignmentData.CounselorEmail)
	}

	startDate, err := parseDate(assignmentData.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start_date: %w", err)
	}

	var endDate *time.Time
	if assignmentData.EndDate != "" {
		parsed, err := parseDate(assignmentData.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end_date: %w", err)
		}
		endDate = &parsed
	}

	var existing models.CounselorBunkAssignment
	err = db.Where("counselor_id = ? AND bunk_id = ?", counselor.ID, bunk.ID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		assignment := models.CounselorBunkAssignment{
			CounselorID: counselor.ID,
			BunkID:      bunk.ID,
			IsPrimary:   assignmentData.IsPrimary,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := db.Create(&assignment).Error; err != nil {
			return false, fmt.Errorf("failed to create counselor assignment: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query counselor assignment: %w", err)
	}

	return false, nil
}
