package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/fale"
	"golang.org/x/sync/errgroup"
)

// fetchOutput is the JSON line printed per URL with --json.
type fetchOutput struct {
	Success bool `json:"success"`
	*fale.Result
}

// Run executes the fetch command. URLs are fetched concurrently and printed
// in the order given; a failure for one URL does not stop the others.
func (c *FetchCmd) Run(deps *Dependencies) error {
	results := make([]*fale.Result, len(c.URLs))
	errs := make([]error, len(c.URLs))

	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, url := range c.URLs {
		g.Go(func() error {
			results[i], errs[i] = deps.Service.Fetch(deps.Ctx, url)
			return errs[i]
		})
	}
	_ = g.Wait()

	var failed, printed int
	enc := json.NewEncoder(deps.Stdout)
	for i, url := range c.URLs {
		if err := errs[i]; err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", url, fale.ErrorMessage(err))
			continue
		}

		if err := c.print(deps, enc, printed > 0, results[i]); err != nil {
			return err
		}
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fetches failed", failed, len(c.URLs))
	}
	return nil
}

func (c *FetchCmd) print(deps *Dependencies, enc *json.Encoder, separate bool, result *fale.Result) error {
	if c.JSON {
		return enc.Encode(&fetchOutput{Success: true, Result: result})
	}

	if separate {
		fmt.Fprintln(deps.Stdout)
	}

	content := result.Content
	if c.Markdown {
		md, err := deps.Converter.Convert(content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", result.OriginalURL, fale.ErrorMessage(err))
			return err
		}
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "URL: %s\n", result.OriginalURL)
	fmt.Fprintf(deps.Stdout, "Title: %s\n\n", result.Title)
	fmt.Fprintln(deps.Stdout, content)
	return nil
}
