// e2e_test.go
//
// Full-stack tests against the real container topology: MariaDB, Authorizer
// and the novelx API image on one docker network. Covers the surfaces the
// unit layer cannot: the privilege-split pools, cookie sessions and the
// public reading surface over real HTTP.
//
// Run with: go test ./tests/e2e/... (requires docker and a .env.test)

package e2e_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/database"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	apiHost, _ := tc.APIContainer.Host(ctx)
	apiPort, _ := tc.APIContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", apiHost, apiPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, tc)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("PublicCatalogAccess", func(t *testing.T) {
		testPublicCatalogAccess(t, baseURL)
	})

	t.Run("AnonymousPurchaseRejected", func(t *testing.T) {
		testAnonymousPurchaseRejected(t, baseURL)
	})

	t.Run("AnonymousStudioRejected", func(t *testing.T) {
		testAnonymousStudioRejected(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, tc *helpers.TestContainers) {
	ctx := context.Background()

	// Point at the mapped ports on localhost, not internal container names
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	dbHost, _ := tc.DBContainer.Host(ctx)
	dbPort, _ := tc.DBContainer.MappedPort(ctx, "3306")
	cfg.DBHost = dbHost
	cfg.DBPort = dbPort.Port()

	authzHost, _ := tc.AuthorizerContainer.Host(ctx)
	authzPort, _ := tc.AuthorizerContainer.MappedPort(ctx, nat.Port(os.Getenv("AUTHZ_PORT")))
	cfg.AuthzURL = fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())

	// The catalog pool is the read-only account; enough for a ping.
	gormDB, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer database.Close(gormDB)

	result := services.HealthCheck(cfg, gormDB)
	if result.Status != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}

	t.Logf("Health check passed: status=%s, database=%s, authorizer=%s",
		result.Status, result.Database, result.Authorizer)
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	defer resp.Body.Close()
	helpers.AssertStatus(t, resp, http.StatusOK)

	body, _ := io.ReadAll(resp.Body)
	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()
	helpers.AssertStatus(t, resp, http.StatusOK)
}

func testPublicCatalogAccess(t *testing.T, baseURL string) {
	// The catalog listing needs no auth
	resp, err := http.Get(baseURL + "/api/novels")
	if err != nil {
		t.Fatalf("Failed to access catalog: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var novels []map[string]interface{}
	helpers.ParseJSON(t, resp, &novels)

	// A missing novel returns 404 with the standard error envelope
	resp, err = http.Get(baseURL + "/api/novels/ffffffff-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("Failed to access missing novel: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusNotFound)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["ok"] != false {
		t.Errorf("Expected ok false in error envelope, got %v", result["ok"])
	}
}

func testAnonymousPurchaseRejected(t *testing.T, baseURL string) {
	resp, err := http.Post(baseURL+"/api/chapters/some-chapter/purchase", "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to post purchase: %v", err)
	}
	defer resp.Body.Close()
	helpers.AssertStatus(t, resp, http.StatusForbidden)
}

func testAnonymousStudioRejected(t *testing.T, baseURL string) {
	resp, err := http.Post(baseURL+"/api/studio/novels", "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to post to studio: %v", err)
	}
	defer resp.Body.Close()
	helpers.AssertStatus(t, resp, http.StatusForbidden)
}
