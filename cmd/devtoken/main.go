// Command devtoken mints an access token for local development and manual
// API testing. Production tokens are issued by the identity service.
//
// Usage:
//
//	devtoken --user=<uuid> [--org=<uuid>] [--ttl=1h]
//
// Requires AUTH_JWT_SECRET environment variable to be set. AUTH_JWT_ISSUER
// defaults to "outcomes" like the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/auth"
)

func main() {
	user := flag.String("user", "", "user id to put in the token subject")
	org := flag.String("org", "", "optional organization id")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --user=<uuid> [--org=<uuid>]")
		os.Exit(1)
	}

	userID, err := uuid.Parse(*user)
	if err != nil {
		log.Fatalf("invalid --user: %v", err)
	}
	identity := auth.Identity{UserID: userID}
	if *org != "" {
		orgID, err := uuid.Parse(*org)
		if err != nil {
			log.Fatalf("invalid --org: %v", err)
		}
		identity.OrgID = &orgID
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "outcomes"
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(identity)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
