package runner

import (
	"fmt"
	"io"
	"time"

	"echoprobe/app"
)

type Summary struct {
	Successes int
	Total     int
}

func (s Summary) AllPassed() bool {
	return s.Successes == s.Total
}

// Run performs cfg.Repeat sequential attempts and prints a report to out.
// Every attempt runs regardless of earlier failures and is followed by
// cfg.Delay, including the last one.
func Run(cfg *app.Config, out io.Writer) Summary {
	fmt.Fprintf(out, "Testing server %s:%d\n", cfg.Address, cfg.Port)
	fmt.Fprintf(out, "Message: '%s', iterations: %d\n\n", cfg.Message, cfg.Repeat)

	summary := Summary{Total: cfg.Repeat}
	for i := 1; i <= cfg.Repeat; i++ {
		fmt.Fprintf(out, "Attempt %d/%d...\n", i, cfg.Repeat)
		if RunSingleAttempt(cfg.Address, cfg.Port, cfg.Message, cfg.Timeout, out).OK() {
			summary.Successes++
			fmt.Fprint(out, "✓ Success\n\n")
		} else {
			fmt.Fprint(out, "✗ Failed\n\n")
		}
		time.Sleep(cfg.Delay)
	}

	fmt.Fprintf(out, "Results: %d/%d successful\n", summary.Successes, summary.Total)
	if summary.AllPassed() {
		fmt.Fprintln(out, "✅ All tests passed!")
	} else {
		fmt.Fprintln(out, "❌ Some tests failed")
	}
	return summary
}
