package main

import (
	"fmt"

	"github.com/fwojciec/docmirror"
)

// runPreview prints the source URLs without touching the archive.
func runPreview(deps *Dependencies) error {
	urls, err := deps.Sources.LoadSources(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}

// runMirror updates the archive. Pages that fail to fetch do not fail the
// run; only setup and write errors do.
func runMirror(deps *Dependencies) error {
	if err := deps.Archive.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	result, err := deps.Mirror.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %d of %d pages\n", result.Updated, result.URLs)
	if result.Changelog != "" {
		fmt.Fprintf(deps.Stdout, "Changelog: %s\n", result.Changelog)
	}

	return nil
}
