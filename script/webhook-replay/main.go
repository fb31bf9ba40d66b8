package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/webhook"
)

// ReplayResult is the outcome of one delivery
type ReplayResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Outcome      string
	Error        error
}

// ReplayStats aggregates every delivery of a run
type ReplayStats struct {
	Lock            sync.Mutex
	TotalRequests   int
	Credited        int
	Duplicates      int
	Unresolved      int
	StatusCounts    map[int]int
	ErrorCounts     map[string]int
	ResponseTimes   []time.Duration
	TotalTime       time.Duration
	MinResponseTime time.Duration
	MaxResponseTime time.Duration
}

type ackBody struct {
	Data struct {
		Outcome string `json:"outcome"`
	} `json:"data"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the ledger API")
	secret := flag.String("secret", os.Getenv("WL_PAYSTACK_WEBHOOK_SECRET"), "Webhook signing secret")
	event := flag.String("event", "transfer.success", "Event type: transfer.success or charge.success")
	recipient := flag.String("recipient", "RCP_demo", "Recipient code for transfer.success")
	email := flag.String("email", "demo@example.com", "Payer email for charge.success")
	amount := flag.Int64("amount", 500000, "Amount in minor units")
	reference := flag.String("reference", "", "Event reference (random when empty)")
	concurrency := flag.Int("c", 10, "Number of concurrent senders")
	totalRequests := flag.Int("n", 100, "Total number of deliveries of the same event")
	delayMs := flag.Int("delay", 0, "Delay between deliveries per sender in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "a webhook secret is required (-secret or WL_PAYSTACK_WEBHOOK_SECRET)")
		os.Exit(2)
	}
	if *reference == "" {
		*reference = "replay-" + uuid.NewString()
	}

	body, err := buildEvent(*event, *reference, *amount, *recipient, *email)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	signature := webhook.ComputeSignature(body, []byte(*secret))

	fmt.Printf("Replaying %s %q %d times with %d senders\n", *event, *reference, *totalRequests, *concurrency)

	stats := &ReplayStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	results := make(chan ReplayResult, *totalRequests)

	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sender(*baseURL+"/webhook", body, signature, *delayMs, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.record(result)
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if stats.Credited != 1 {
		os.Exit(1)
	}
}

func buildEvent(event, reference string, amount int64, recipient, email string) ([]byte, error) {
	data := map[string]any{
		"amount":    amount,
		"reference": reference,
		"currency":  "NGN",
		"status":    "success",
	}
	switch event {
	case "transfer.success":
		data["recipient"] = map[string]any{"recipient_code": recipient}
		data["source"] = map[string]any{"details": map[string]any{"account_name": "REPLAY SENDER"}}
	case "charge.success":
		data["customer"] = map[string]any{"email": email}
	default:
		return nil, fmt.Errorf("unsupported event type %q", event)
	}
	return json.Marshal(map[string]any{"event": event, "data": data})
}

func sender(endpoint string, body []byte, signature string, delayMs int, jobs <-chan int, results chan<- ReplayResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			results <- ReplayResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(webhookSignatureHeader, signature)

		startTime := time.Now()
		resp, err := client.Do(req)
		result := ReplayResult{ResponseTime: time.Since(startTime)}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			var ack ackBody
			if err := json.Unmarshal(raw, &ack); err == nil {
				result.Outcome = ack.Data.Outcome
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		results <- result
	}
}

// webhookSignatureHeader mirrors the header the API reads
const webhookSignatureHeader = "X-Paystack-Signature"

func (s *ReplayStats) record(result ReplayResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Error != nil {
		s.ErrorCounts[result.Error.Error()]++
	}
	if result.StatusCode != 0 {
		s.StatusCounts[result.StatusCode]++
	}
	switch result.Outcome {
	case "credited":
		s.Credited++
	case "already_processed":
		s.Duplicates++
	case "unresolved":
		s.Unresolved++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *ReplayStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= REPLAY RESULTS =================")
	fmt.Printf("Deliveries:          %d\n", stats.TotalRequests)
	fmt.Printf("Credited:            %d\n", stats.Credited)
	fmt.Printf("Already processed:   %d\n", stats.Duplicates)
	fmt.Printf("Unresolved:          %d\n", stats.Unresolved)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if stats.Credited == 1 {
		fmt.Println("✅ Exactly one delivery credited the wallet")
	} else {
		fmt.Printf("❌ Expected exactly one credit, got %d\n", stats.Credited)
	}
	fmt.Println("==================================================")
}
