package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mergington/signups/internal/smoke"
	"github.com/mergington/signups/pkg/logger"
)

// Default configuration constants.
const (
	defaultStudents = 25
	defaultTimeout  = 10 * time.Second
	defaultRunLimit = 2 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("base-url", "http://localhost:8000", "Base URL of the service")
		students = flag.Int("students", defaultStudents, "Number of students to sign up")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		cleanup  = flag.Bool("cleanup", true, "Remove signed-up students at the end")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL:  *baseURL,
		Students: *students,
		Timeout:  *timeout,
		Cleanup:  *cleanup,
	}

	stats, err := smoke.Run(ctx, cfg)
	if err != nil {
		logger.Get().Error(ctx, "smoke test failed",
			logger.Error(err),
			logger.Int("signups", stats.Signups),
			logger.Int("failures", stats.Failures),
		)
		os.Exit(1)
	}
}
