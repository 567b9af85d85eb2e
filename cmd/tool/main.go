package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Load-test helper: pre-signs a batch of bearer tokens with the shared
// secret and optionally seeds one product so GET endpoints have data.
// Tokens only work against a server started with the same JWT_SECRET.
func main() {
	var (
		secret  = flag.String("secret", "your_jwt_secret", "shared JWT signing secret")
		count   = flag.Int("count", 1000, "number of tokens to generate")
		out     = flag.String("out", "tests/load/tokens.csv", "output file, one token per line")
		baseURL = flag.String("url", "http://localhost:8080", "server base URL for seeding")
		seed    = flag.Bool("seed", true, "create a seed product with the first token")
	)
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var firstToken string

	fmt.Printf("Generating %d tokens...\n", *count)
	for i := 0; i < *count; i++ {
		uid := uuid.New().String()
		claims := jwt.MapClaims{
			"iss":   "shop-service",
			"sub":   uid,
			"id":    uid,
			"email": fmt.Sprintf("loaduser-%d@example.com", i),
			"role":  "user",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(*secret))
		if err != nil {
			panic(err)
		}
		if i == 0 {
			firstToken = s
		}
		f.WriteString(s + "\n")
	}
	fmt.Println("Done generating tokens.")

	if !*seed {
		return
	}

	fmt.Println("Creating seed product...")
	requestBody, _ := json.Marshal(map[string]interface{}{
		"name":        "Load Test Product",
		"description": "Auto created by tool",
		"price":       9.99,
	})

	req, err := http.NewRequest("POST", *baseURL+"/api/products", bytes.NewBuffer(requestBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+firstToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error creating product: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var result map[string]interface{}
	json.Unmarshal(body, &result)

	if id, ok := result["id"].(string); ok {
		fmt.Printf("PRODUCT_ID:%s\n", id)
	} else {
		fmt.Printf("Unexpected response (%s): %s\n", resp.Status, string(body))
	}
}
