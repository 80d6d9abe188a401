package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/pinkstock/internal/adapter/handler"
)

const (
	initialStock  = 20
	totalRequests = 50
)

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC address of a running pinkstock server")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to connect grpc: %v", err)
	}
	defer conn.Close()
	client := handler.NewInventoryClient(conn)

	added, err := client.AddItem(ctx, &handler.AddItemRequest{
		Name:     fmt.Sprintf("stress-test-%d", time.Now().UnixNano()),
		Quantity: initialStock,
		Category: "stress-test",
	})
	if err != nil {
		log.Fatalf("failed to add item: %v", err)
	}
	itemID := added.Id
	log.Printf("added item %s with quantity %d", itemID, initialStock)

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32
	var warnCount atomic.Int32

	// Spawn concurrent decrements; more than the stock so the clamp is exercised
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := client.AdjustQuantity(ctx, &handler.AdjustQuantityRequest{Id: itemID, Delta: -1})
			if err != nil {
				failCount.Add(1)
				return
			}
			successCount.Add(1)
			if resp.Item.Quantity < 0 {
				log.Printf("negative quantity observed: %d", resp.Item.Quantity)
			}
			if resp.Warning != "" {
				warnCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Quantity: %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Not Persisted:    %d\n", warnCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	passed := true
	if success == int32(totalRequests) && fail == 0 {
		fmt.Printf("PASS: all %d adjustments succeeded\n", totalRequests)
	} else {
		fmt.Printf("FAIL: expected %d successes, got %d (%d failed)\n", totalRequests, success, fail)
		passed = false
	}

	// Verify final quantity clamped at zero
	listed, err := client.ListItems(ctx, &handler.ListItemsRequest{Category: "stress-test"})
	if err != nil {
		log.Fatalf("failed to list items: %v", err)
	}
	finalQuantity := -1
	for _, item := range listed.Items {
		if item.Id == itemID {
			finalQuantity = int(item.Quantity)
		}
	}
	fmt.Printf("Final Quantity:   %d\n", finalQuantity)

	if finalQuantity == 0 {
		fmt.Println("PASS: quantity clamped at 0")
	} else {
		fmt.Printf("FAIL: expected quantity 0, got %d\n", finalQuantity)
		passed = false
	}

	if _, err := client.DeleteItem(ctx, &handler.DeleteItemRequest{Id: itemID}); err != nil {
		log.Printf("failed to clean up item %s: %v", itemID, err)
	}

	if !passed {
		os.Exit(1)
	}
}
