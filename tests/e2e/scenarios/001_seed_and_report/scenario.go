package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	messagesPerGovernorate   = 250 // message_sent events per governorate
	complaintsPerGovernorate = 100 // complaint_submitted events per governorate
	resolvedPerGovernorate   = 42  // complaint_resolved events per governorate
	eventsPerBatch           = 50
)

var governorates = []string{"CAI", "GIZ", "ALX", "ASW"}

// ### End - fixed configs

type statEvent struct {
	Type       string            `json:"type"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Amount     int64             `json:"amount,omitempty"`
}

// main runs the e2e scenario: 001_seed_and_report
//
// This scenario tests the end-to-end flow of event ingestion, counter
// accumulation, and report generation. It seeds the default baseline, pushes a
// deterministic stream of events through the batch endpoint, and verifies the
// derived metrics the reporting endpoints return.
//
// What it tests:
//   - Explicit seeding via POST /admin/seed (idempotent on the second call)
//   - Batch event ingestion via POST /events/batch
//   - Per-governorate counter accumulation through the partitioned queue
//   - Platform summary derived metrics via GET /statistics/platform
//   - Dimensional report via GET /statistics/region
//   - Ranking determinism via GET /rankings/region/messages_total
//
// Expected results:
//   - Both seed calls succeed; the second writes zero keys
//   - Every governorate reaches messages_total=250, complaints_total=100,
//     complaints_resolved=42 (resolution_rate exactly 0.42)
//   - The ranking endpoint returns all four governorates with equal values,
//     ordered lexically by entity id
func main() {
	baseURL := "http://localhost:8080" // Base URL of the platform-stats API server
	parallel := 4                      // Number of concurrent batch requests to send

	fmt.Println("Starting e2e scenario: 001_seed_and_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	// Seed twice; the second run must not overwrite anything.
	firstSeed := postSeed(client, baseURL)
	secondSeed := postSeed(client, baseURL)
	fmt.Printf("Seed run 1: keysWritten=%v\n", firstSeed["keysWritten"])
	fmt.Printf("Seed run 2: keysWritten=%v (expected 0)\n", secondSeed["keysWritten"])
	if fmt.Sprintf("%v", secondSeed["keysWritten"]) != "0" {
		fmt.Fprintln(os.Stderr, "ERROR: second seed run wrote keys, seeding is not idempotent")
		os.Exit(1)
	}
	fmt.Println()

	// Generate deterministic batches.
	batches := generateBatches()
	fmt.Printf("Generated %d batches (%d events each)\n", len(batches), eventsPerBatch)

	// Send batches with a bounded worker pool.
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var accepted, failed int64
	for i, batch := range batches {
		wg.Add(1)
		workerChan <- struct{}{}
		go func(index int, events []statEvent) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendBatch(client, baseURL, events)
			if err != nil || statusCode != http.StatusAccepted {
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: batch %d failed (status %d): %v\n", index, statusCode, err)
				return
			}
			atomic.AddInt64(&accepted, 1)
		}(i, batch)
	}
	wg.Wait()

	fmt.Printf("Batches accepted: %d, failed: %d\n", atomic.LoadInt64(&accepted), atomic.LoadInt64(&failed))
	if atomic.LoadInt64(&failed) > 0 {
		os.Exit(1)
	}
	fmt.Println()

	// Give the partition workers a moment to drain the queue.
	fmt.Println("Waiting for queue drain...")
	time.Sleep(3 * time.Second)

	// Verify per-governorate counters and derived metrics.
	ok := true
	for _, governorate := range governorates {
		report := getJSON(client, baseURL+"/statistics/region/"+governorate)
		counters := report["counters"].(map[string]any)
		calculated := report["calculated"].(map[string]any)

		ok = expectFloat(governorate, "messages_total", counters["messages_total"], messagesPerGovernorate) && ok
		ok = expectFloat(governorate, "complaints_total", counters["complaints_total"], complaintsPerGovernorate) && ok
		ok = expectFloat(governorate, "complaints_resolved", counters["complaints_resolved"], resolvedPerGovernorate) && ok
		ok = expectFloat(governorate, "resolution_rate", calculated["resolution_rate"], 0.42) && ok
	}

	// Verify ranking determinism: equal values must order lexically.
	ranking := getJSON(client, baseURL+"/rankings/region/messages_total?top_n=10")
	entries := ranking["entries"].([]any)
	fmt.Printf("Ranking returned %d entries\n", len(entries))
	var previousID string
	for _, raw := range entries {
		entry := raw.(map[string]any)
		id := entry["entityId"].(string)
		value := entry["value"].(float64)
		if value == messagesPerGovernorate && previousID != "" && id < previousID {
			fmt.Fprintf(os.Stderr, "ERROR: tie between %s and %s not broken lexically\n", previousID, id)
			ok = false
		}
		if value == messagesPerGovernorate {
			previousID = id
		}
	}

	// Platform summary sanity: seeded baseline plus the sent events.
	summary := getJSON(client, baseURL+"/statistics/platform")
	wantMessages := float64(5000 + messagesPerGovernorate*len(governorates))
	ok = expectFloat("platform", "totalMessages", summary["totalMessages"], wantMessages) && ok

	fmt.Println()
	if !ok {
		fmt.Fprintln(os.Stderr, "Scenario FAILED")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func generateBatches() [][]statEvent {
	all := make([]statEvent, 0, len(governorates)*(messagesPerGovernorate+complaintsPerGovernorate+resolvedPerGovernorate))
	for _, governorate := range governorates {
		dims := map[string]string{"governorate": governorate}
		for i := 0; i < messagesPerGovernorate; i++ {
			all = append(all, statEvent{Type: "message_sent", Dimensions: dims})
		}
		for i := 0; i < complaintsPerGovernorate; i++ {
			all = append(all, statEvent{Type: "complaint_submitted", Dimensions: dims})
		}
		for i := 0; i < resolvedPerGovernorate; i++ {
			all = append(all, statEvent{Type: "complaint_resolved", Dimensions: dims})
		}
	}

	batches := make([][]statEvent, 0, (len(all)+eventsPerBatch-1)/eventsPerBatch)
	for start := 0; start < len(all); start += eventsPerBatch {
		end := start + eventsPerBatch
		if end > len(all) {
			end = len(all)
		}
		batches = append(batches, all[start:end])
	}
	return batches
}

func sendBatch(client *http.Client, baseURL string, events []statEvent) (int, error) {
	jsonData, err := json.Marshal(events)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/events/batch", bytes.NewReader(jsonData))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func postSeed(client *http.Client, baseURL string) map[string]any {
	resp, err := client.Post(baseURL+"/admin/seed", "application/json", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: seed request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	return decodeJSON(resp.Body)
}

func getJSON(client *http.Client, url string) map[string]any {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s failed: %v\n", url, err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s returned status %d\n", url, resp.StatusCode)
		os.Exit(1)
	}
	return decodeJSON(resp.Body)
}

func decodeJSON(r io.Reader) map[string]any {
	var m map[string]any
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to decode response: %v\n", err)
		os.Exit(1)
	}
	return m
}

func expectFloat(scope, field string, got any, want float64) bool {
	value, ok := got.(float64)
	if !ok || value != want {
		fmt.Fprintf(os.Stderr, "ERROR: %s %s = %v, want %v\n", scope, field, got, want)
		return false
	}
	fmt.Printf("%s %s = %v (ok)\n", scope, field, value)
	return true
}
