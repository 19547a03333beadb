package store

import (
	"fmt"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// PrintRunStatus displays run store status information.
func PrintRunStatus(status schema.RunStoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Run tracking is disabled.")
		return
	}
	fmt.Printf("Total Runs: %d\n", status.RunCount)
	fmt.Printf("Total Smell Score Records: %d\n", status.ScoreCount)
	if status.LastRunTime != nil {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
	}
}
