package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Manual end-to-end driver against a running server. Start the server
// first, then:
//
//	go run ./tests -base http://localhost:5050 -user user_mary
//
// It walks the main conversation paths: greeting, a health-data
// question, a symptom report, and the full booking flow.

var (
	baseURL = flag.String("base", "http://localhost:5050", "server base URL")
	userID  = flag.String("user", "user_mary", "user id to converse as")
)

func main() {
	flag.Parse()

	steps := []struct {
		label   string
		message string
	}{
		{"greeting (blank message resets the conversation)", ""},
		{"health data question", "What did I eat yesterday?"},
		{"symptom report", "I have been feeling a bit dizzy today"},
		{"ask for appointments", "I think I should book an appointment"},
		{"pick a slot", "I'll take slot 2"},
		{"confirm", "yes"},
	}

	for i, step := range steps {
		fmt.Printf("--- step %d: %s\n", i+1, step.label)
		fmt.Printf(">>> %q\n", step.message)
		reply := chat(step.message)
		fmt.Printf("<<< %s\n\n", reply)
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("--- checking follow-up queue")
	for _, f := range checkFollowups() {
		fmt.Printf("<<< followup: %s\n", f)
	}
}

func chat(message string) string {
	body, _ := json.Marshal(map[string]string{
		"message": message,
		"user_id": *userID,
	})
	resp, err := http.Post(*baseURL+"/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("chat request failed: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("decoding chat response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("chat returned status %d", resp.StatusCode)
	}
	return out.Response
}

func checkFollowups() []string {
	body, _ := json.Marshal(map[string]string{"user_id": *userID})
	resp, err := http.Post(*baseURL+"/check-followups", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("check-followups request failed: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Followups []string `json:"followups"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("decoding followups response: %v", err)
	}
	return out.Followups
}
