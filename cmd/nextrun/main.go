// Command nextrun prints the next occurrences of a cron schedule.
//
// Usage: nextrun [-n count] "<cron expression>"
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	crondsl "github.com/FrancoisGib/cron-dsl"
)

func main() {
	count := flag.Int("n", 1, "number of occurrences to print")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: nextrun [-n count] \"<cron expression>\"")
		os.Exit(1)
	}

	s, err := crondsl.Parse(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing expression:", err)
		os.Exit(1)
	}

	at := time.Now()
	for i := 0; i < *count; i++ {
		next, err := s.NextOccurrence(at)
		if err != nil {
			fmt.Fprintln(os.Stderr, "No future occurrence:", err)
			os.Exit(1)
		}
		fmt.Println(next.Format(time.RFC1123Z))
		at = next
	}
}
