package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

const triples = `bom sinonimo_de agradavel
bom antonimo_de mau
mau sinonimo_de ruim
agradavel sinonimo_de simpatico
`

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Propagate
	fmt.Println("1. Propagating polarity...")
	payload := map[string]interface{}{
		"mode":    "undirected",
		"triples": triples,
		"seeds":   "bom;1\n",
		"export":  os.Getenv("EXPORT") != "",
	}

	body, ok := sendRequest("POST", "/propagate", payload)
	if !ok {
		fmt.Println("FAILED: Propagate")
		os.Exit(1)
	}
	var run struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(body, &run); err != nil || run.RunID == "" {
		fmt.Printf("FAILED: Propagate returned no run id: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("PASSED: Propagate")

	// 2. Read back
	fmt.Println("2. Reading run...")
	for _, endpoint := range []string{
		"/runs/" + run.RunID + "/stats",
		"/runs/" + run.RunID + "/words/ruim",
		"/runs/" + run.RunID + "/lexicon.csv",
	} {
		if _, ok := sendRequest("GET", endpoint, nil); !ok {
			fmt.Printf("FAILED: GET %s\n", endpoint)
			os.Exit(1)
		}
	}
	fmt.Println("PASSED: Read run")
}

func sendRequest(method, endpoint string, payload interface{}) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
