package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WeekdayResponse is the response for /weekday/{date} and /weekday/random
type WeekdayResponse struct {
	Date                string `json:"date"`
	Weekday             string `json:"weekday"`
	YearDoomsdayWeekday string `json:"year_doomsday_weekday"`
	Details             struct {
		Anchor            int `json:"anchor"`
		MonthDoomsdayDate int `json:"month_doomsday_date"`
		Trace             []struct {
			Label string `json:"label"`
			Value int    `json:"value"`
		} `json:"trace"`
	} `json:"details"`
}

// AnchorsResponse is the response for /years/{year}/anchors
type AnchorsResponse struct {
	Year     int    `json:"year"`
	Leap     bool   `json:"leap"`
	Doomsday string `json:"doomsday"`
	Anchors  []struct {
		MonthName string `json:"month_name"`
		Day       int    `json:"day"`
	} `json:"anchors"`
}

// CalendarResponse is the response for /calendar/{year}/{month}
type CalendarResponse struct {
	Title        string `json:"title"`
	FirstWeekday int    `json:"first_weekday"`
	DaysInMonth  int    `json:"days_in_month"`
}

// GuessResponse is the response for POST /guess
type GuessResponse struct {
	Outcome struct {
		Correct  bool   `json:"correct"`
		Feedback string `json:"feedback"`
	} `json:"outcome"`
	Result *WeekdayResponse `json:"result,omitempty"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Doomsday API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testKnownDates()
	tr.testEdgeCases()
	tr.testRandom()
	tr.testAnchors()
	tr.testCalendar()
	tr.testGuess()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, _, err := tr.do("GET", "/health", nil)
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	cases := []struct {
		date string
		want string
	}{
		{"1776-07-04", "Thursday"},
		{"1900-01-01", "Monday"},
		{"1945-05-08", "Tuesday"},
		{"1969-07-20", "Sunday"},
		{"1999-12-31", "Friday"},
		{"2000-01-01", "Saturday"},
		{"2024-02-29", "Thursday"},
		{"2026-02-08", "Sunday"},
	}

	for _, c := range cases {
		var w WeekdayResponse
		if err := tr.getData("/api/v1/weekday/"+c.date, &w); err != nil {
			tr.recordError(c.date, err.Error())
			continue
		}
		if w.Weekday != c.want {
			tr.recordError(c.date, fmt.Sprintf("got %s, want %s", w.Weekday, c.want))
			continue
		}
		if len(w.Details.Trace) != 4 {
			tr.recordError(c.date, fmt.Sprintf("trace has %d steps, want 4", len(w.Details.Trace)))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s is %s", c.date, w.Weekday))
		if tr.verbose {
			tr.printTrace(&w)
		}
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/v1/weekday/1699-12-31", http.StatusBadRequest, "OUT_OF_RANGE"},
		{"/api/v1/weekday/2101-01-01", http.StatusBadRequest, "OUT_OF_RANGE"},
		{"/api/v1/weekday/1900-02-29", http.StatusBadRequest, "OUT_OF_RANGE"},
		{"/api/v1/weekday/2023-13-01", http.StatusBadRequest, "OUT_OF_RANGE"},
		{"/api/v1/weekday/17760704", http.StatusBadRequest, "INVALID_FORMAT"},
		{"/api/v1/weekday/1700-01-01", http.StatusOK, ""},
		{"/api/v1/weekday/2100-12-31", http.StatusOK, ""},
	}

	for _, c := range cases {
		resp, status, err := tr.do("GET", c.path, nil)
		if err != nil {
			tr.recordError(c.path, err.Error())
			continue
		}
		if status != c.status {
			tr.recordError(c.path, fmt.Sprintf("status %d, want %d", status, c.status))
			continue
		}
		if c.code != "" && (resp.Error == nil || resp.Error.Code != c.code) {
			tr.recordError(c.path, fmt.Sprintf("error %+v, want code %s", resp.Error, c.code))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %d %s", c.path, status, c.code))
	}
}

func (tr *TestRunner) testRandom() {
	tr.printSection("Random Date")

	var w WeekdayResponse
	if err := tr.getData("/api/v1/weekday/random", &w); err != nil {
		tr.recordError("Random", err.Error())
		return
	}
	if w.Date == "" || w.Weekday == "" {
		tr.recordError("Random", "empty date or weekday")
		return
	}
	tr.recordSuccess(fmt.Sprintf("Random date %s is %s", w.Date, w.Weekday))
}

func (tr *TestRunner) testAnchors() {
	tr.printSection("Month Anchors")

	var a AnchorsResponse
	if err := tr.getData("/api/v1/years/2024/anchors", &a); err != nil {
		tr.recordError("Anchors 2024", err.Error())
		return
	}
	if !a.Leap || len(a.Anchors) != 12 || a.Anchors[1].Day != 29 || a.Doomsday != "Thursday" {
		tr.recordError("Anchors 2024", fmt.Sprintf("unexpected reference: %+v", a))
		return
	}
	tr.recordSuccess("2024 anchors: leap, doomsday Thursday, February 29")
}

func (tr *TestRunner) testCalendar() {
	tr.printSection("Month Calendar")

	var c CalendarResponse
	if err := tr.getData("/api/v1/calendar/2026/2?target=8", &c); err != nil {
		tr.recordError("Calendar 2026-02", err.Error())
		return
	}
	if c.FirstWeekday != 0 || c.DaysInMonth != 28 {
		tr.recordError("Calendar 2026-02", fmt.Sprintf("unexpected grid: %+v", c))
		return
	}
	tr.recordSuccess(c.Title)
}

func (tr *TestRunner) testGuess() {
	tr.printSection("Guess")

	for _, g := range []struct {
		weekday string
		correct bool
	}{
		{"thursday", true},
		{"Monday", false},
	} {
		body := map[string]string{"date": "1776-07-04", "weekday": g.weekday}
		resp, _, err := tr.do("POST", "/api/v1/guess", body)
		if err != nil {
			tr.recordError("Guess "+g.weekday, err.Error())
			continue
		}

		var out GuessResponse
		if err := json.Unmarshal(resp.Data, &out); err != nil {
			tr.recordError("Guess "+g.weekday, err.Error())
			continue
		}
		if out.Outcome.Correct != g.correct || (out.Result != nil) != g.correct {
			tr.recordError("Guess "+g.weekday, fmt.Sprintf("unexpected outcome: %+v", out))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("Guess %s: %s", g.weekday, out.Outcome.Feedback))
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) do(method, path string, body any) (*APIResponse, int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	resp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return &apiResp, resp.StatusCode, nil
}

func (tr *TestRunner) getData(path string, target any) error {
	resp, _, err := tr.do("GET", path, nil)
	if err != nil {
		return err
	}
	if !resp.Success {
		errMsg := "unknown error"
		if resp.Error != nil {
			errMsg = resp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printTrace(w *WeekdayResponse) {
	fmt.Printf("    anchor %d, month doomsday %d, year doomsday %s\n",
		w.Details.Anchor, w.Details.MonthDoomsdayDate, w.YearDoomsdayWeekday)
	for _, step := range w.Details.Trace {
		fmt.Printf("      %-18s %d\n", step.Label, step.Value)
	}
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key sent as X-API-Key")
	verbose := flag.Bool("v", false, "Verbose output (show calculation traces)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	if _, err := client.Get(*baseURL + "/health"); err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
