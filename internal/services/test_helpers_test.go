package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shag-platform/shag-api/internal/catalog"
	"github.com/shag-platform/shag-api/internal/session"
	"github.com/shag-platform/shag-api/internal/sheets"
	"github.com/shag-platform/shag-api/pkg/httpclient"
	"github.com/shag-platform/shag-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

const testBaseURL = "https://shag.test"

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func testStore() *session.Store {
	return session.NewStore(time.Minute)
}

// offlineSheets has no webhook configured, so every delivery reports as
// unconfirmed without touching the network.
func offlineSheets() *sheets.Client {
	return sheets.NewClient("", httpclient.NewStandardClient())
}
