package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/voyage-finance/ask-server/client"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "Base URL of the ask server")
	question := flag.String("question", "", "The question to ask")
	timeout := flag.Duration("timeout", 60*time.Second, "Request timeout")
	verbose := flag.Bool("verbose", false, "Show timing")
	flag.Parse()

	q := *question
	if q == "" {
		q = strings.Join(flag.Args(), " ")
	}
	if strings.TrimSpace(q) == "" {
		log.Fatalf("question parameter is required")
	}

	start := time.Now()
	text, err := client.New(*server, *timeout).Ask(context.Background(), q)
	fmt.Println("Answer:", text)
	if *verbose {
		fmt.Printf("\n%s\n", summary(time.Since(start), text))
	}
	if err != nil {
		log.Printf("ask failed: %v", err)
		os.Exit(1)
	}
}

func summary(elapsed time.Duration, answer string) string {
	return fmt.Sprintf("Answered in %s, %s", elapsed.Round(time.Millisecond), humanize.Bytes(uint64(len(answer))))
}
