package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/config"
	"github.com/Orbtrix-Space/Orbtrix-website/config/router"
	"github.com/Orbtrix-Space/Orbtrix-website/domain"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type IntakeAPITestSuite struct {
	suite.Suite
	driver    string
	server    *httptest.Server
	appConfig *config.ApplicationConfig
}

func (suite *IntakeAPITestSuite) newDatabase() *gorm.DB {
	if suite.driver == constants.StoreDriverMemory {
		return nil
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(models.ModelRegistry...))
	return db
}

// SetupTest gives every test a fresh store and server.
func (suite *IntakeAPITestSuite) SetupTest() {
	appLogger := log.NewLoggerWithJSONOutput()
	appCfg := &config.AppConfig{
		StoreDriver: suite.driver,
		ServiceName: constants.DefaultServiceName,
	}

	db := suite.newDatabase()
	st, err := config.NewStore(appLogger, appCfg, db)
	suite.Require().NoError(err)

	suite.appConfig = &config.ApplicationConfig{
		Store:  st,
		DB:     db,
		Logger: appLogger,
		Config: appCfg,
	}

	suite.appConfig.RouterService = router.CreateRouterService(appLogger, &router.RouterConfig{
		GinMode:        "test",
		RequestTimeout: 30 * time.Second,
		MetricsEnabled: true,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
}

func (suite *IntakeAPITestSuite) TearDownTest() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.appConfig != nil {
		suite.appConfig.Cleanup()
	}
}

func (suite *IntakeAPITestSuite) post(path string, body any) (int, map[string]any) {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.server.URL+path, "application/json", bytes.NewReader(raw))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var out map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (suite *IntakeAPITestSuite) getList(path string) []map[string]any {
	resp, err := http.Get(suite.server.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var out []map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	suite.Require().NotNil(out, "listing must be a JSON array, never null")
	return out
}

func (suite *IntakeAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.server.URL + "/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	suite.Equal(true, response["success"])
	suite.Contains(response["message"], "health check completed")

	data := response["data"].(map[string]any)
	suite.Equal(float64(1), data["store"])
	suite.Equal(suite.driver, data["store_driver"])
	suite.Contains(data, "uptime")
}

func (suite *IntakeAPITestSuite) TestContactSubmitThenList() {
	suite.Empty(suite.getList("/api/contact"))

	status, body := suite.post("/api/contact", map[string]any{
		"name":         "Ada Lovelace",
		"organization": "Analytical Engines",
		"email":        "ada@example.com",
		"message":      "Interested in a launch slot.",
	})

	suite.Equal(http.StatusCreated, status)
	suite.Equal(true, body["success"])
	suite.Equal("Contact submission received", body["message"])
	suite.NotEmpty(body["id"])

	list := suite.getList("/api/contact")
	suite.Require().Len(list, 1)
	suite.Equal(body["id"], list[0]["id"])
	suite.Equal("ada@example.com", list[0]["email"])
	suite.Equal("Analytical Engines", list[0]["organization"])
	suite.Contains(list[0], "createdAt")
}

func (suite *IntakeAPITestSuite) TestContactWithoutOrganizationStoresEmptyString() {
	status, _ := suite.post("/api/contact", map[string]any{
		"name":    "Grace",
		"email":   "grace@example.com",
		"message": "Hello",
	})
	suite.Require().Equal(http.StatusCreated, status)

	list := suite.getList("/api/contact")
	suite.Require().Len(list, 1)
	suite.Equal("", list[0]["organization"])
}

func (suite *IntakeAPITestSuite) TestContactValidationFailure() {
	status, body := suite.post("/api/contact", map[string]any{
		"name":    "   ",
		"email":   "not-an-email",
		"message": "Hi",
	})

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal(false, body["success"])
	suite.Equal("Validation error", body["message"])
	suite.NotEmpty(body["errors"])

	suite.Empty(suite.getList("/api/contact"))
}

func (suite *IntakeAPITestSuite) TestWaitlistCaseInsensitiveDuplicate() {
	status, body := suite.post("/api/waitlist", map[string]any{"email": "A@B.com"})
	suite.Equal(http.StatusCreated, status)
	suite.Equal("Successfully added to waitlist", body["message"])
	suite.NotEmpty(body["id"])

	status, body = suite.post("/api/waitlist", map[string]any{"email": "a@b.com"})
	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Equal("You're already on the waitlist!", body["message"])
	suite.NotContains(body, "id")

	list := suite.getList("/api/waitlist")
	suite.Require().Len(list, 1)
	suite.Equal("A@B.com", list[0]["email"])
}

func (suite *IntakeAPITestSuite) TestWaitlistInvalidEmail() {
	status, body := suite.post("/api/waitlist", map[string]any{"email": "nope"})

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal(false, body["success"])
	suite.Equal("Please enter a valid email address", body["message"])

	suite.Empty(suite.getList("/api/waitlist"))
}

func (suite *IntakeAPITestSuite) TestMalformedBody() {
	resp, err := http.Post(suite.server.URL+"/api/waitlist", "application/json", bytes.NewBufferString("{oops"))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (suite *IntakeAPITestSuite) TestBodyWithTrailingDataIsRejected() {
	body := `{"name":"Ada","email":"ada@example.com","message":"Hello"} trailing`
	resp, err := http.Post(suite.server.URL+"/api/contact", "application/json", bytes.NewBufferString(body))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Empty(suite.getList("/api/contact"))
}

func (suite *IntakeAPITestSuite) TestUnknownRoute() {
	resp, err := http.Get(suite.server.URL + "/api/unknown")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusNotFound, resp.StatusCode)
}

func (suite *IntakeAPITestSuite) TestMetricsCountOutcomes() {
	suite.post("/api/waitlist", map[string]any{"email": "m@example.com"})
	suite.post("/api/waitlist", map[string]any{"email": "M@example.com"})

	resp, err := http.Get(suite.server.URL + "/metrics")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	suite.Require().NoError(err)

	suite.Contains(buf.String(), `intake_submissions_total{kind="waitlist",outcome="created"} 1`)
	suite.Contains(buf.String(), `intake_submissions_total{kind="waitlist",outcome="duplicate"} 1`)
}

func TestIntakeAPI_MemoryStore(t *testing.T) {
	suite.Run(t, &IntakeAPITestSuite{driver: constants.StoreDriverMemory})
}

func TestIntakeAPI_SQLiteStore(t *testing.T) {
	suite.Run(t, &IntakeAPITestSuite{driver: constants.StoreDriverSQLite})
}
