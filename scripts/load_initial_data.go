package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studio-ops-backend/internal/config"
	"studio-ops-backend/internal/database"
	"studio-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamMemberData struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Role         string            `yaml:"role"`
	Email        string            `yaml:"email,omitempty"`
	Phone        string            `yaml:"phone,omitempty"`
	IsFreelancer bool              `yaml:"is_freelancer"`
	Availability map[string]string `yaml:"availability,omitempty"`
}

type EventData struct {
	ID                 string `yaml:"id"`
	Name               string `yaml:"name"`
	Date               string `yaml:"date"`
	StartTime          string `yaml:"start_time,omitempty"`
	EndTime            string `yaml:"end_time,omitempty"`
	Location           string `yaml:"location,omitempty"`
	ClientName         string `yaml:"client_name,omitempty"`
	ClientPhone        string `yaml:"client_phone,omitempty"`
	ClientEmail        string `yaml:"client_email,omitempty"`
	PhotographersCount int    `yaml:"photographers_count"`
	VideographersCount int    `yaml:"videographers_count"`
	Stage              string `yaml:"stage,omitempty"`
}

// YAML file structures
type TeamMembersFile struct {
	TeamMembers []TeamMemberData `yaml:"team_members"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
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

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" logs while seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
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
	var members TeamMembersFile
	if err := walkYAML(dataDir, "team_members", func(data []byte) error {
		var file TeamMembersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		members.TeamMembers = append(members.TeamMembers, file.TeamMembers...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}

	var events EventsFile
	if err := walkYAML(dataDir, "events", func(data []byte) error {
		var file EventsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		events.Events = append(events.Events, file.Events...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	membersCreated := 0
	for _, data := range members.TeamMembers {
		created, err := createTeamMember(db, data)
		if err != nil {
			return err
		}
		if created {
			membersCreated++
		}
	}

	eventsCreated := 0
	for _, data := range events.Events {
		created, err := createEvent(db, data)
		if err != nil {
			return err
		}
		if created {
			eventsCreated++
		}
	}

	log.Printf("Team members: %d created, %d existing", membersCreated, len(members.TeamMembers)-membersCreated)
	log.Printf("Events: %d created, %d existing", eventsCreated, len(events.Events)-eventsCreated)
	return nil
}

// walkYAML calls load with the contents of every .yaml file whose path contains kind
func walkYAML(dataDir, kind string, load func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := load(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createTeamMember(db *gorm.DB, data TeamMemberData) (bool, error) {
	role := models.TeamRole(data.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("team member %q: invalid role %q", data.Name, data.Role)
	}

	availability := models.Availability{}
	for date, status := range data.Availability {
		s := models.AvailabilityStatus(status)
		if !models.ValidDate(date) || !s.IsValid() {
			return false, fmt.Errorf("team member %q: invalid availability %s=%s", data.Name, date, status)
		}
		if s != models.AvailabilityAvailable {
			availability[date] = s
		}
	}

	var existing models.TeamMember
	err := db.Where("id = ?", data.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query team member: %w", err)
	}

	member := models.TeamMember{
		BaseModel:    models.BaseModel{ID: idOrNew(data.ID)},
		Name:         data.Name,
		Role:         role,
		Email:        data.Email,
		Phone:        data.Phone,
		Availability: availability,
		IsFreelancer: data.IsFreelancer,
	}
	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create team member: %w", err)
	}
	return true, nil
}

func createEvent(db *gorm.DB, data EventData) (bool, error) {
	if !models.ValidDate(data.Date) {
		return false, fmt.Errorf("event %q: invalid date %q", data.Name, data.Date)
	}
	stage := models.StagePreProduction
	if data.Stage != "" {
		stage = models.Stage(data.Stage)
		if !stage.IsValid() {
			return false, fmt.Errorf("event %q: invalid stage %q", data.Name, data.Stage)
		}
	}

	var existing models.ScheduledEvent
	err := db.Where("id = ?", data.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query event: %w", err)
	}

	event := models.ScheduledEvent{
		BaseModel:          models.BaseModel{ID: idOrNew(data.ID)},
		Name:               data.Name,
		Date:               data.Date,
		StartTime:          data.StartTime,
		EndTime:            data.EndTime,
		Location:           data.Location,
		ClientName:         data.ClientName,
		ClientPhone:        data.ClientPhone,
		ClientEmail:        data.ClientEmail,
		PhotographersCount: data.PhotographersCount,
		VideographersCount: data.VideographersCount,
		Stage:              stage,
		Assignments:        []models.EventAssignment{},
		Deliverables:       []models.Deliverable{},
		TimeTracking:       []models.TimeLogEntry{},
		Version:            1,
	}
	if err := db.Create(&event).Error; err != nil {
		return false, fmt.Errorf("failed to create event: %w", err)
	}
	return true, nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
