package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	secondsInDay = 86400
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type event struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== OHD Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	if !waitForServer() {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Cached reads (GET /display, GET /opening-times) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Intn(2) == 0 {
			return call(http.MethodGet, "/display", nil, http.StatusOK)
		}
		return call(http.MethodGet, "/opening-times", nil, http.StatusOK)
	})

	fmt.Println("\n--- Phase 2: Stateless compute (POST /opening-times, POST /format) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.8 {
			return call(http.MethodPost, "/opening-times", randomSchedule(rng), http.StatusOK)
		}
		open := rng.Int63n(secondsInDay)
		body := []byte(fmt.Sprintf(`{"open":%d,"close":%d}`, open, rng.Int63n(secondsInDay)))
		return call(http.MethodPost, "/format", body, http.StatusOK)
	})

	fmt.Println("\n--- Phase 3: Mixed load (5% PUT /schedule, 95% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return call(http.MethodPut, "/schedule", randomSchedule(rng), http.StatusOK)
		case r < 0.50:
			return call(http.MethodGet, "/display", nil, http.StatusOK)
		case r < 0.90:
			return call(http.MethodGet, "/opening-times", nil, http.StatusOK)
		default:
			return call(http.MethodGet, "/schedule", nil, http.StatusOK)
		}
	})
}

func waitForServer() bool {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

// randomSchedule builds a valid week: each open day gets one interval that
// may run past midnight into the next day.
func randomSchedule(rng *rand.Rand) []byte {
	week := make(map[string][]event, len(weekdays))
	for _, day := range weekdays {
		week[day] = []event{}
	}
	for i, day := range weekdays {
		if rng.Float64() < 0.3 {
			continue
		}
		open := int64(6*3600 + rng.Intn(8)*1800)
		closeAt := open + int64(4*3600+rng.Intn(14)*1800)
		week[day] = append(week[day], event{Type: "open", Value: open})
		if closeAt < secondsInDay {
			week[day] = append(week[day], event{Type: "close", Value: closeAt})
			continue
		}
		next := weekdays[(i+1)%len(weekdays)]
		week[next] = append([]event{{Type: "close", Value: closeAt - secondsInDay}}, week[next]...)
	}
	data, _ := json.Marshal(week)
	return data
}

func call(method, path string, body []byte, want int) result {
	endpoint := method + " " + path
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return result{endpoint, 0, 0, true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	collected := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := collected[r.endpoint]
			if !ok {
				s = &stats{}
				collected[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(collected, duration)
}

func printResults(collected map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(collected))
	for ep := range collected {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := collected[ep]
		totalOps += s.count
		totalErrors += s.errors
		slices.Sort(s.latencies)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		return
	}
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := min(int(float64(len(sorted))*p), len(sorted)-1)
	return sorted[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
