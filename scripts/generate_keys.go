//go:build ignore

// This script generates the secrets used by the translation service.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func mustKey(name string, length int) string {
	key, err := generateSecureKey(length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", name, err)
		os.Exit(1)
	}
	return key
}

func main() {
	fmt.Println("=== Translate Service Key Generator ===")
	fmt.Println()

	// secretbox needs exactly 32 bytes
	sealKey := mustKey("credentials seal key", 32)
	jwtSecret := mustKey("JWT secret", 32)
	apiKey := mustKey("API key", 24)

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Encrypts the provider secret key at rest")
	fmt.Printf("CREDENTIALS_SEAL_KEY=%s\n", sealKey)
	fmt.Println()
	fmt.Println("# Admin routes (POST /api/config, GET /api/jobs)")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("Mint an admin token with: translatectl token --subject ops")
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Changing CREDENTIALS_SEAL_KEY makes a sealed credentials file unreadable")
	fmt.Println("- Store production keys in a secure secret manager")
}
