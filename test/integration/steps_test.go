package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/config"
	"github.com/ledgerkeep/backend/internal/infra/dependency"
	"github.com/ledgerkeep/backend/internal/integration/persistence"
	"github.com/ledgerkeep/backend/test/integration/mock"
)

// backendState holds one running API server per storage backend. Servers are
// started lazily and shared across scenarios; the clear function wipes the
// underlying storage between scenarios.
type backendState struct {
	server *httptest.Server
	clear  func() error
}

var (
	backendsMu sync.Mutex
	backends   = map[string]*backendState{}
)

func startBackend(name string) *backendState {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if state, ok := backends[name]; ok {
		return state
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Currency: config.CurrencyConfig{
			Main: "TWD",
			Rates: map[string]decimal.Decimal{
				"TWD": decimal.NewFromInt(1),
				"USD": decimal.NewFromInt(32),
			},
			Categories: []string{"餐飲", "交通", "娛樂"},
		},
	}

	state := &backendState{}
	switch name {
	case "kv":
		client := mock.NewRedis()
		ledger := persistence.NewKVLedgerRepository(client)
		state.clear = func() error { return mock.ClearRedis(client) }
		injector := dependency.NewInjector(cfg, ledger, func() bool { return true })
		state.server = httptest.NewServer(injector.Router.Setup("test"))
	default:
		db := mock.NewDB()
		ledger := persistence.NewSQLLedgerRepository(db)
		state.clear = func() error { return mock.ClearDB(db) }
		injector := dependency.NewInjector(cfg, ledger, func() bool { return true })
		state.server = httptest.NewServer(injector.Router.Setup("test"))
	}

	backends[name] = state
	return state
}

// testContext carries per-scenario state: the last HTTP response, remembered
// resource identifiers and a saved backup snapshot.
type testContext struct {
	baseURL  string
	client   *http.Client
	status   int
	body     []byte
	ids      map[string]string
	snapshot []byte
}

func initializeScenario(sc *godog.ScenarioContext, backend string) {
	state := startBackend(backend)

	tc := &testContext{
		baseURL: state.server.URL,
		client:  state.server.Client(),
	}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		if err := state.clear(); err != nil {
			return ctx, err
		}
		tc.status = 0
		tc.body = nil
		tc.ids = map[string]string{}
		tc.snapshot = nil
		return ctx, nil
	})

	sc.Step(`^I create an account named "([^"]*)" with initial balance "([^"]*)"$`, tc.createAccount)
	sc.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)"$`, tc.sendRequest)
	sc.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)" with body:$`, tc.sendRequestWithBody)
	sc.Step(`^the response status should be (\d+)$`, tc.checkStatus)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.checkField)
	sc.Step(`^the response list "([^"]*)" should have (\d+) items$`, tc.checkListLength)
	sc.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, tc.rememberField)
	sc.Step(`^the account "([^"]*)" should have balance "([^"]*)"$`, tc.checkAccountBalance)
	sc.Step(`^I export a snapshot$`, tc.exportSnapshot)
	sc.Step(`^I import the saved snapshot$`, tc.importSnapshot)
}

// expand replaces {{name}} placeholders with remembered identifiers. The
// special {{today}} placeholder expands to the current UTC date so budget
// window assertions stay valid on any day the suite runs.
func (tc *testContext) expand(s string) string {
	now := time.Now().UTC()
	s = strings.ReplaceAll(s, "{{today}}", now.Format("2006-01-02"))
	s = strings.ReplaceAll(s, "{{year}}", strconv.Itoa(now.Year()))
	s = strings.ReplaceAll(s, "{{month}}", strconv.Itoa(int(now.Month())))
	for name, id := range tc.ids {
		s = strings.ReplaceAll(s, "{{"+name+"}}", id)
	}
	return s
}

func (tc *testContext) do(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.baseURL+tc.expand(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

func (tc *testContext) sendRequest(method, path string) error {
	return tc.do(method, path, nil)
}

func (tc *testContext) sendRequestWithBody(method, path string, body *godog.DocString) error {
	return tc.do(method, path, []byte(tc.expand(body.Content)))
}

func (tc *testContext) createAccount(name, balance string) error {
	payload := fmt.Sprintf(`{"name":%q,"initial_balance":%q,"currency":"TWD"}`, name, balance)
	if err := tc.do(http.MethodPost, "/api/v1/accounts", []byte(payload)); err != nil {
		return err
	}
	if tc.status != http.StatusCreated {
		return fmt.Errorf("expected status 201 creating account %q, got %d: %s", name, tc.status, tc.body)
	}

	id, err := tc.lookup("id")
	if err != nil {
		return err
	}
	tc.ids["account:"+name] = id
	return nil
}

func (tc *testContext) checkStatus(expected int) error {
	if tc.status != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.status, tc.body)
	}
	return nil
}

// lookup resolves a dotted path like "investments.0.status" in the last
// response body. Numeric segments index into arrays.
func (tc *testContext) lookup(path string) (string, error) {
	decoder := json.NewDecoder(bytes.NewReader(tc.body))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return "", fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.body)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return "", fmt.Errorf("field %q not found in response: %s", path, tc.body)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return "", fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return "", fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}

	switch value := current.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	case nil:
		return "null", nil
	default:
		raw, err := json.Marshal(value)
		return string(raw), err
	}
}

// equalValues compares decimal-looking values numerically so "250" matches
// "250.00", and falls back to string equality otherwise.
func equalValues(expected, actual string) bool {
	wantDec, errWant := decimal.NewFromString(expected)
	gotDec, errGot := decimal.NewFromString(actual)
	if errWant == nil && errGot == nil {
		return wantDec.Equal(gotDec)
	}
	return expected == actual
}

func (tc *testContext) checkField(path, expected string) error {
	actual, err := tc.lookup(path)
	if err != nil {
		return err
	}
	expected = tc.expand(expected)
	if !equalValues(expected, actual) {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (tc *testContext) checkListLength(path string, expected int) error {
	decoder := json.NewDecoder(bytes.NewReader(tc.body))
	decoder.UseNumber()

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.body)
	}

	list, ok := doc[path].([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list in response: %s", path, tc.body)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in %q, got %d", expected, path, len(list))
	}
	return nil
}

func (tc *testContext) rememberField(path, name string) error {
	value, err := tc.lookup(path)
	if err != nil {
		return err
	}
	tc.ids[name] = value
	return nil
}

func (tc *testContext) checkAccountBalance(name, expected string) error {
	if err := tc.do(http.MethodGet, "/api/v1/accounts", nil); err != nil {
		return err
	}
	if tc.status != http.StatusOK {
		return fmt.Errorf("expected status 200 listing accounts, got %d: %s", tc.status, tc.body)
	}

	var doc struct {
		Accounts []struct {
			Name           string          `json:"name"`
			CurrentBalance decimal.Decimal `json:"current_balance"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(tc.body, &doc); err != nil {
		return err
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}

	for _, account := range doc.Accounts {
		if account.Name == name {
			if !account.CurrentBalance.Equal(want) {
				return fmt.Errorf("expected account %q balance %s, got %s", name, want, account.CurrentBalance)
			}
			return nil
		}
	}
	return fmt.Errorf("account %q not found in response: %s", name, tc.body)
}

func (tc *testContext) exportSnapshot() error {
	if err := tc.do(http.MethodGet, "/api/v1/backup/export", nil); err != nil {
		return err
	}
	if tc.status != http.StatusOK {
		return fmt.Errorf("expected status 200 exporting snapshot, got %d: %s", tc.status, tc.body)
	}
	tc.snapshot = append([]byte(nil), tc.body...)
	return nil
}

func (tc *testContext) importSnapshot() error {
	if tc.snapshot == nil {
		return fmt.Errorf("no snapshot saved, export one first")
	}
	return tc.do(http.MethodPost, "/api/v1/backup/import", tc.snapshot)
}
