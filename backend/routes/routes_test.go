package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"brainhub/backend/config"
	"brainhub/backend/models"
	"brainhub/backend/repository"
	"brainhub/backend/utils"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, utils.MigrateModels(db))

	cfg := &config.Config{JWTSecret: "testsecret"}
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})
	SetupRoutes(app, repository.NewGormStore(db), cfg)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestRegisterLoginEnrollScenario(t *testing.T) {
	app, db := newTestApp(t)

	course := models.Course{Title: "Philosophy 101", NiveauDifficulte: "beginner"}
	require.NoError(t, db.Create(&course).Error)

	// Register
	status, body := doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Learner registered successfully", body["message"])
	learnerID := body["learner_id"].(float64)
	require.NotZero(t, learnerID)

	// Login
	status, body = doJSON(t, app, "POST", "/login", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["token"])
	learner := body["learner"].(map[string]interface{})
	assert.Equal(t, "alice", learner["username"])
	assert.Equal(t, "beginner", learner["niveau"])
	assert.Len(t, body["progress"], 0)
	assert.Len(t, body["recommendations"], 0)

	// Enroll
	status, body = doJSON(t, app, "POST", "/add_course", map[string]interface{}{
		"learner_id": learnerID,
		"course_id":  course.ID,
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Course successfully added to learner", body["message"])
	assert.NotZero(t, body["progress_id"])

	// Enrolling again conflicts
	status, body = doJSON(t, app, "POST", "/add_course", map[string]interface{}{
		"learner_id": learnerID,
		"course_id":  course.ID,
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Learner is already enrolled in this course", body["error"])

	// The enrollment now shows in the login payload
	status, body = doJSON(t, app, "POST", "/login", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, fiber.StatusOK, status)
	progress := body["progress"].([]interface{})
	require.Len(t, progress, 1)
	entry := progress[0].(map[string]interface{})
	assert.Equal(t, "Philosophy 101", entry["course_title"])
	assert.Equal(t, float64(0), entry["progress_percentage"])
	assert.Equal(t, "in progress", entry["status"])

	// Unenroll
	status, body = doJSON(t, app, "POST", "/delete_course", map[string]interface{}{
		"learner_id": learnerID,
		"course_id":  course.ID,
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Course successfully removed from learner", body["message"])

	// Unenrolling again is a 404
	status, body = doJSON(t, app, "POST", "/delete_course", map[string]interface{}{
		"learner_id": learnerID,
		"course_id":  course.ID,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Progress record not found for this learner and course", body["error"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	// Malformed body
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Invalid JSON format", body["error"])

	// Missing fields
	status, body := doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "All fields (username, password, email) are required", body["error"])

	// Duplicate email
	status, _ = doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, body = doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice2", "email": "a@x.com", "password": "pw2",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestRegisterIgnoresExtraFields(t *testing.T) {
	app, db := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/register", map[string]interface{}{
		"username":    "alice",
		"email":       "a@x.com",
		"password":    "pw1",
		"niveau":      "expert",
		"preferences": map[string]string{"theme": "dark"},
	})
	require.Equal(t, fiber.StatusCreated, status)

	var learner models.Learner
	require.NoError(t, db.First(&learner, uint(body["learner_id"].(float64))).Error)
	assert.Equal(t, "beginner", learner.Niveau)
	assert.Empty(t, learner.Preferences)
}

func TestLoginFailures(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	// Wrong password and unknown email are the same generic 401
	status, body := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "a@x.com", "password": "nope",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["error"])

	status, body = doJSON(t, app, "POST", "/login", map[string]string{
		"email": "ghost@x.com", "password": "pw1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["error"])

	// Missing fields
	status, body = doJSON(t, app, "POST", "/login", map[string]string{"email": "a@x.com"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Email and password are required", body["error"])
}

func TestListCourses(t *testing.T) {
	app, db := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/courses", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["courses"], 0)

	require.NoError(t, db.Create(&models.Course{
		Title:            "Philosophy 101",
		Description:      "An introduction",
		NiveauDifficulte: "beginner",
		Image:            "philo101.png",
	}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Logic", NiveauDifficulte: "advanced"}).Error)

	status, body = doJSON(t, app, "GET", "/courses", nil)
	assert.Equal(t, fiber.StatusOK, status)
	courses := body["courses"].([]interface{})
	require.Len(t, courses, 2)
	first := courses[0].(map[string]interface{})
	assert.Equal(t, "Philosophy 101", first["title"])
	assert.Equal(t, "An introduction", first["description"])
	assert.Equal(t, "beginner", first["niveau_difficulte"])
	assert.Equal(t, "philo101.png", first["image"])
}

func TestEnrollmentNotFoundAndValidation(t *testing.T) {
	app, db := newTestApp(t)

	course := models.Course{Title: "Philosophy 101"}
	require.NoError(t, db.Create(&course).Error)

	status, body := doJSON(t, app, "POST", "/add_course", map[string]interface{}{
		"learner_id": 42, "course_id": course.ID,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Learner not found", body["error"])

	regStatus, regBody := doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, regStatus)
	learnerID := regBody["learner_id"].(float64)

	status, body = doJSON(t, app, "POST", "/add_course", map[string]interface{}{
		"learner_id": learnerID, "course_id": 999,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["error"])

	status, body = doJSON(t, app, "POST", "/add_course", map[string]interface{}{
		"learner_id": learnerID,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Learner ID and Course ID are required", body["error"])
}

func TestWrongMethod(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/register", nil)
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.Equal(t, "Invalid request method", body["error"])

	status, body = doJSON(t, app, "POST", "/courses", map[string]string{})
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.Equal(t, "Invalid request method", body["error"])
}

func TestProfileEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, fiber.StatusOK, status)
	token := body["token"].(string)

	// Without a token
	req := httptest.NewRequest("GET", "/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// With the login token
	req = httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&profile)
	learner := profile["learner"].(map[string]interface{})
	assert.Equal(t, "alice", learner["username"])
	assert.Equal(t, "beginner", learner["niveau"])
}
