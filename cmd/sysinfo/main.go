package main

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Small diagnostic helper: prints the facts about the host that matter when
// triaging a bug report against a local run of the API.
func main() {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	fmt.Printf("hostname:   %s\n", hostname)
	fmt.Printf("os/arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("cpus:       %d\n", runtime.NumCPU())
	fmt.Printf("go version: %s\n", runtime.Version())
	fmt.Printf("local time: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("utc time:   %s\n", time.Now().UTC().Format(time.RFC3339))
}
