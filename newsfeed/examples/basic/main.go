// ABOUTME: Basic example loading one page of Guardian search results with the newsfeed library
// ABOUTME: Demonstrates the one-shot Load path and a controller drained on the main goroutine

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"guardian-news-api/core/domain"
	"guardian-news-api/core/loader"
	"guardian-news-api/newsfeed"
	"guardian-news-api/pkg/guardian"
)

func main() {
	client, err := newsfeed.NewClient(newsfeed.WithTimeouts(5*time.Second, 5*time.Second))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	url, err := guardian.SearchURL(guardian.SearchParams{APIKey: "test", Section: "technology"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== One-shot load ===")
	items, err := client.Load(context.Background(), url)
	if err != nil {
		log.Printf("Error loading feed: %v\n", err)
	}
	printItems(items)

	fmt.Println("\n=== Controller ===")
	queue := loader.NewQueue(1)
	controller := client.NewController(queue)
	controller.SetObserver(loader.ObserverFuncs{
		Result:  printItems,
		Failure: func(err error) { log.Printf("Load failed: %v\n", err) },
	})
	controller.Start(url)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := queue.RunOne(ctx); err != nil {
		log.Printf("No delivery: %v\n", err)
	}
}

func printItems(items domain.FeedResult) {
	for _, item := range items {
		author, ok := item.Author()
		if !ok {
			author = "unknown"
		}
		fmt.Printf("- [%s] %s (%s)\n", item.SectionName(), item.Title(), author)
	}
}
