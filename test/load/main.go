package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// target is one endpoint of the mix; weight is its share of requests.
type target struct {
	Method string
	Path   string
	Body   string
	Weight int
}

var mix = []target{
	{Method: "GET", Path: "/companies", Weight: 4},
	{Method: "GET", Path: "/companies/apple", Weight: 3},
	{Method: "GET", Path: "/companies/industries", Weight: 1},
	{Method: "GET", Path: "/invoices", Weight: 3},
	{Method: "GET", Path: "/invoices/1", Weight: 3},
	{Method: "POST", Path: "/invoices", Body: `{"comp_code":"apple","amt":10}`, Weight: 1},
}

type LoadTestConfig struct {
	BaseURL           string
	RequestsPerSecond int
	DurationSeconds   int
	ConcurrentWorkers int
	WritesEnabled     bool
}

// endpointStats holds the counters of a single target.
type endpointStats struct {
	successCount  atomic.Int64
	errorCount    atomic.Int64
	mu            sync.Mutex
	responseTimes []float64
}

func (s *endpointStats) record(ok bool, d time.Duration) {
	if ok {
		s.successCount.Add(1)
	} else {
		s.errorCount.Add(1)
	}
	s.mu.Lock()
	s.responseTimes = append(s.responseTimes, d.Seconds())
	s.mu.Unlock()
}

func (s *endpointStats) snapshot() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	times := make([]float64, len(s.responseTimes))
	copy(times, s.responseTimes)
	sort.Float64s(times)
	return times
}

func sendRequest(client *http.Client, config LoadTestConfig, t target, stats *endpointStats) {
	start := time.Now()

	var body io.Reader
	if t.Body != "" {
		body = bytes.NewBufferString(t.Body)
	}
	req, err := http.NewRequest(t.Method, config.BaseURL+t.Path, body)
	if err != nil {
		stats.record(false, 0)
		return
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		stats.record(false, time.Since(start))
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	stats.record(resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated, time.Since(start))
}

func worker(client *http.Client, config LoadTestConfig, stats []*endpointStats, jobs <-chan int, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := range jobs {
		sendRequest(client, config, mix[i], stats[i])
	}
}

// schedule expands the weighted mix into a round robin of target indexes.
func schedule(writes bool) []int {
	var order []int
	for i, t := range mix {
		if t.Method != "GET" && !writes {
			continue
		}
		for n := 0; n < t.Weight; n++ {
			order = append(order, i)
		}
	}
	return order
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func main() {
	config := LoadTestConfig{
		BaseURL:           strings.TrimSuffix(getEnvOrDefault("TARGET_URL", "http://localhost:3000"), "/"),
		RequestsPerSecond: getEnvIntOrDefault("REQUESTS_PER_SECOND", 1000),
		DurationSeconds:   getEnvIntOrDefault("DURATION_SECONDS", 30),
		ConcurrentWorkers: getEnvIntOrDefault("CONCURRENT_WORKERS", 100),
		WritesEnabled:     os.Getenv("WRITES") == "true",
	}

	order := schedule(config.WritesEnabled)
	stats := make([]*endpointStats, len(mix))
	for i := range stats {
		stats[i] = &endpointStats{}
	}

	fmt.Println("Starting load test...")
	fmt.Printf("Target: %s\n", config.BaseURL)
	fmt.Printf("Target RPS: %d for %d seconds\n", config.RequestsPerSecond, config.DurationSeconds)
	fmt.Printf("Concurrent workers: %d, writes: %t\n", config.ConcurrentWorkers, config.WritesEnabled)
	fmt.Println(strings.Repeat("-", 50))

	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        config.ConcurrentWorkers,
			MaxIdleConnsPerHost: config.ConcurrentWorkers,
			IdleConnTimeout:     90 * time.Second,
		},
		Timeout: 30 * time.Second,
	}

	jobs := make(chan int, config.RequestsPerSecond)
	var wg sync.WaitGroup
	for i := 0; i < config.ConcurrentWorkers; i++ {
		wg.Add(1)
		go worker(client, config, stats, jobs, &wg)
	}

	startTime := time.Now()
	sent := 0
	for sec := 0; sec < config.DurationSeconds; sec++ {
		batchStart := time.Now()
		for j := 0; j < config.RequestsPerSecond; j++ {
			jobs <- order[sent%len(order)]
			sent++
		}

		var ok, failed int64
		for _, s := range stats {
			ok += s.successCount.Load()
			failed += s.errorCount.Load()
		}
		fmt.Printf("[%ds] Completed: %d | Success: %d | Errors: %d\n", sec+1, ok+failed, ok, failed)

		if elapsed := time.Since(batchStart); elapsed < time.Second {
			time.Sleep(time.Second - elapsed)
		}
	}

	close(jobs)
	wg.Wait()
	duration := time.Since(startTime).Seconds()

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("LOAD TEST RESULTS")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Duration: %.2f seconds, actual RPS: %.2f\n\n", duration, float64(sent)/duration)
	fmt.Printf("%-6s %-24s %8s %8s %9s %9s %9s\n", "METHOD", "PATH", "OK", "FAILED", "P50 ms", "P95 ms", "P99 ms")
	for i, t := range mix {
		s := stats[i]
		times := s.snapshot()
		if len(times) == 0 {
			continue
		}
		fmt.Printf("%-6s %-24s %8d %8d %9.2f %9.2f %9.2f\n", t.Method, t.Path,
			s.successCount.Load(), s.errorCount.Load(),
			percentile(times, 0.50)*1000, percentile(times, 0.95)*1000, percentile(times, 0.99)*1000)
	}
}
