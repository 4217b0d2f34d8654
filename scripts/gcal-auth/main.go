// scripts/gcal-auth/main.go
//
// Run this once to authorize Google Calendar access with OAuth Desktop App
// credentials. The token is written to google_calendar.token_path.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json]

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"express-sms/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		log.Fatal("No credentials file: set google_calendar.credentials_path or pass it as an argument")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := cfg.GoogleCalendar.TokenPath
	if dir := filepath.Dir(tokenPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
}
