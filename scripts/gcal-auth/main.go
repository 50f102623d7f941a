// Command gcal-auth authorizes an OAuth Desktop client for Google Calendar
// and writes the token that pkg/gcalendar loads next to the binary.
//
// Service account credentials do not need this step.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -out token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	outPath := flag.String("out", "token.json", "where to write the OAuth token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", *credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (expected an OAuth Desktop App file)", err)
	}

	fmt.Println("1. Open this URL, sign in with the account that owns the property calendars:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("rental-ops", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	fmt.Printf("\nSaved %s. Restart the api and worker so calendar sync picks it up.\n", *outPath)
}
