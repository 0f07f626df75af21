package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

//go:embed seed_data.json
var seedData []byte

// SeedJob represents a job entry in the fixture.
type SeedJob struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Requirements []string `json:"requirements"`
}

// SeedEmployer represents an employer entry with its job postings.
type SeedEmployer struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Company  string    `json:"company"`
	Jobs     []SeedJob `json:"jobs"`
}

// SeedSeeker represents a job seeker entry.
type SeedSeeker struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedFixture is the root of the embedded fixture file.
type SeedFixture struct {
	Employers []SeedEmployer `json:"employers"`
	Seekers   []SeedSeeker   `json:"seekers"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}, &model.SavedJob{}, &model.Application{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	var fixture SeedFixture
	if err := json.Unmarshal(seedData, &fixture); err != nil {
		log.Fatalf("Failed to parse seed fixture: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	ctx := context.Background()

	users, jobs, err := seed(ctx, userRepo, jobRepo, fixture)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", users)
	log.Printf("  - Jobs created: %d", jobs)
}

// seed inserts fixture users and jobs, skipping users that already exist.
func seed(ctx context.Context, userRepo repository.UserRepository, jobRepo repository.JobRepository, fixture SeedFixture) (users int, jobs int, err error) {
	for _, emp := range fixture.Employers {
		user, created, err := ensureUser(ctx, userRepo, emp.Username, emp.Email, emp.Password, model.RoleEmployer, emp.Company)
		if err != nil {
			return users, jobs, err
		}
		if created {
			users++
		}

		existing, err := jobRepo.ListByEmployer(ctx, user.ID)
		if err != nil {
			return users, jobs, fmt.Errorf("list jobs for %s: %w", emp.Username, err)
		}
		have := make(map[string]bool, len(existing))
		for _, j := range existing {
			have[j.Title] = true
		}

		for _, sj := range emp.Jobs {
			if have[sj.Title] {
				continue
			}
			job := &model.Job{
				Title:        sj.Title,
				Description:  sj.Description,
				Company:      emp.Company,
				Location:     sj.Location,
				Salary:       sj.Salary,
				Requirements: model.StringList(sj.Requirements),
				EmployerID:   user.ID,
			}
			if err := jobRepo.Create(ctx, job); err != nil {
				return users, jobs, fmt.Errorf("create job %q: %w", sj.Title, err)
			}
			jobs++
		}
	}

	for _, seeker := range fixture.Seekers {
		_, created, err := ensureUser(ctx, userRepo, seeker.Username, seeker.Email, seeker.Password, model.RoleJobSeeker, "")
		if err != nil {
			return users, jobs, err
		}
		if created {
			users++
		}
	}

	return users, jobs, nil
}

func ensureUser(ctx context.Context, repo repository.UserRepository, username, email, password, role, company string) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("check user %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password for %s: %w", email, err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Company:      company,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create user %s: %w", email, err)
	}
	return user, true, nil
}
