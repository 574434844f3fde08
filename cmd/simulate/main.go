package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000"

type queryRequest struct {
	ConversationId string `json:"conversation_id"`
	Query          string `json:"query"`
}

type queryResponse struct {
	Data struct {
		ConversationId string `json:"conversation_id"`
		Text           string `json:"text"`
		Intent         string `json:"intent"`
		Suggestions    []struct {
			Candidate struct {
				Name     string `json:"name"`
				Subtitle string `json:"subtitle"`
				Score    int    `json:"score"`
			} `json:"candidate"`
		} `json:"suggestions"`
	} `json:"data"`
}

func main() {
	color.Cyan("Catholic Discovery Assistant Simulation\n")

	conversationId := ""
	turns := []string{
		"Hi there!",
		"Find me Catholic parishes near Philadelphia",
		"Tell me more about the first one",
		"Any retreats around Denver this fall?",
	}

	for _, query := range turns {
		color.Yellow("\nUSER: %s", query)

		start := time.Now()
		res, err := sendQuery(conversationId, query)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		conversationId = res.Data.ConversationId

		color.Green("ASSISTANT (%v, intent=%s):", elapsed.Round(time.Millisecond), res.Data.Intent)
		fmt.Println(res.Data.Text)

		if len(res.Data.Suggestions) > 0 {
			color.Cyan("Suggestions:")
			for _, s := range res.Data.Suggestions {
				fmt.Printf("  - %s (%s, score %d)\n", s.Candidate.Name, s.Candidate.Subtitle, s.Candidate.Score)
			}
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func sendQuery(conversationId, query string) (*queryResponse, error) {
	payload, _ := json.Marshal(queryRequest{
		ConversationId: conversationId,
		Query:          query,
	})

	req, err := http.NewRequest("POST", baseURL+"/api/assistant/query", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
