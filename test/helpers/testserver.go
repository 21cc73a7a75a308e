package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"recruivo_backend/internal/app"
	"recruivo_backend/internal/config"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the test database (DATABASE_URL), migrates the
// schema and starts an httptest server around the fully wired router.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init("test")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		t.Fatalf("Failed to ensure uuid-ossp extension: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.StudentProfile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
		&models.Skill{},
		&models.StudentSkill{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("Test server started against %s", cfg.Database.DSN)
	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates everything between test groups.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec(`TRUNCATE TABLE users, refresh_tokens, student_profiles,
		companies, jobs, applications, resumes, skills, student_skills
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest issues a JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
