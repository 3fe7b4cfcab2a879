// Development seeder: fills the API with fake users and posts over HTTP.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "API base URL")
	users := flag.Int("users", 10, "number of users to create")
	postsPer := flag.Int("posts", 3, "number of posts per user")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	for i := 0; i < *users; i++ {
		userID, err := createUser(*baseURL)
		if err != nil {
			log.Printf("create user: %v", err)
			continue
		}
		for j := 0; j < *postsPer; j++ {
			if err := createPost(*baseURL, userID); err != nil {
				log.Printf("create post for user %d: %v", userID, err)
			}
		}
	}

	log.Printf("seeded %d users with up to %d posts each", *users, *postsPer)
}

func createUser(baseURL string) (int, error) {
	payload := map[string]string{
		"name":  gofakeit.Name(),
		"email": gofakeit.Email(),
	}
	return post(baseURL+"/users", payload)
}

func createPost(baseURL string, userID int) error {
	payload := map[string]interface{}{
		"user_id": userID,
		"title":   gofakeit.Sentence(5),
		"content": gofakeit.Paragraph(1, 3, 12, " "),
	}
	_, err := post(baseURL+"/posts", payload)
	return err
}

func post(url string, payload interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Data struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}

	return out.Data.ID, nil
}
