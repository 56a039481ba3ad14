// ABOUTME: Command line front end for the rewrite service
// ABOUTME: Fetches one URL, rewrites Yale to Fale and prints JSON or the HTML document

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"fale-proxy-api/api/dto/responses"
	"fale-proxy-api/core/interfaces"
	"fale-proxy-api/core/rewrite"
	stdhttp "fale-proxy-api/infrastructure/http/standard"
	"fale-proxy-api/infrastructure/logger/structured"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "falify",
		Usage:     "fetch a page and replace Yale with Fale",
		ArgsUsage: "<url>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "html",
				Usage: "print only the rewritten HTML document",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "fetch timeout, 0 disables",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		// Exit codes are applied in main so the app stays testable
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	target := c.Args().First()
	if target == "" {
		return cli.Exit("URL is required", 2)
	}

	logger := structured.NewWithWriter(stderr, c.String("log-level"), false)
	service := rewrite.NewService(interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(c.Duration("timeout")),
		Logger:     logger,
	})

	page, err := service.FetchAndRewrite(c.Context, target)
	if err != nil {
		logger.Error("Failed to fetch content", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return cli.Exit("Failed to fetch content: "+err.Error(), 1)
	}

	if c.Bool("html") {
		_, err := io.WriteString(stdout, page.Content)
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(responses.FromRewrittenPage(page))
}
