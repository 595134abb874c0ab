// Package integration provides BDD integration tests using Godog/Cucumber.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
)

// TestFeatures runs every feature file against both storage backends. The
// two repositories must be observationally identical, so the same scenarios
// run twice.
func TestFeatures(t *testing.T) {
	for _, backend := range []string{"sql", "kv"} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			opts := godog.Options{
				Format:      "pretty",
				Paths:       []string{"features"},
				Output:      colors.Colored(os.Stdout),
				Concurrency: 1, // Scenarios share one storage instance per backend.
				Randomize:   0,
				Strict:      true,
				TestingT:    t,
			}

			if tags := os.Getenv("GODOG_TAGS"); tags != "" {
				opts.Tags = tags
			}

			suite := godog.TestSuite{
				Name: "ledgerkeep-" + backend,
				ScenarioInitializer: func(sc *godog.ScenarioContext) {
					initializeScenario(sc, backend)
				},
				Options: &opts,
			}

			if suite.Run() != 0 {
				t.Fatal("non-zero status returned, failed to run feature tests")
			}
		})
	}
}
