// Command amp-sort runs sorting scenarios and prints their results.
//
// With no configuration it runs the built-in scenarios. Set SORT_SCENARIOS to
// the path of a YAML file to run those instead. Logging is configured from
// LOG_LEVEL, LOG_JSON and LOG_OUTPUT.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/amp-sort/demo"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
)

func main() {
	ctx := context.Background()

	if _, err := logger.ConfigureLogging(ctx, "amp-sort"); err != nil {
		fmt.Fprintln(os.Stderr, "configuring logging:", err)
		os.Exit(2)
	}

	scenarios := demo.Defaults()

	path := envutil.FilePath(ctx, "SORT_SCENARIOS")
	if path.HasValue() || path.Error() != nil {
		var err error

		scenarios, err = demo.LoadScenarios(path.ValueOrFatal())
		if err != nil {
			logger.Get(ctx).Error("loading scenarios", "env", path.Key(), "error", err)
			os.Exit(1)
		}
	}

	if err := demo.Run(ctx, os.Stdout, scenarios); err != nil {
		logger.Get(ctx).Error("some scenarios failed", "error", err)
		os.Exit(1)
	}
}
