package cli

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abiiranathan/hbs2ts/transform"
)

// ErrDiagnosticsFound signals a non-zero exit because at least one input
// file produced transform errors, distinct from a Go error the CLI itself
// returns. check logs an unreadable input file and reports it through this
// sentinel as well; emit returns the read error itself.
var ErrDiagnosticsFound = errors.New("one or more files produced diagnostics")

func newCheckCommand(logger *log.Logger) *cobra.Command {
	var identifiersInScope []string

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Run the transform over each file and print its diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, logger, identifiersInScope)
		},
	}

	cmd.Flags().StringSliceVar(&identifiersInScope, "identifier", nil,
		"an identifier treated as locally in scope (repeatable)")

	return cmd
}

type checkOutcome struct {
	path    string
	result  transform.TransformResult
	readErr error
}

// runCheck fans the batch of files out across a bounded worker pool
// (runtime.NumCPU() workers), since §5 guarantees disjoint inputs can be
// transformed without coordination.
func runCheck(cmd *cobra.Command, paths []string, logger *log.Logger, identifiersInScope []string) error {
	logger.Info("checking templates", "count", len(paths))

	outcomes := make([]checkOutcome, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			src, err := os.ReadFile(p)
			if err != nil {
				mu.Lock()
				outcomes[i] = checkOutcome{path: p, readErr: errors.Wrapf(err, "read %s", p)}
				mu.Unlock()
				return nil
			}

			res := transform.Transform(string(src), transform.TransformOptions{
				IdentifiersInScope: identifiersInScope,
			})
			mu.Lock()
			outcomes[i] = checkOutcome{path: p, result: res}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return an error themselves; failures are recorded per-file

	var anyDiagnostics bool
	for _, o := range outcomes {
		if o.readErr != nil {
			logger.Error("could not read file", "path", o.path, "error", o.readErr)
			anyDiagnostics = true
			continue
		}
		if len(o.result.Errors) == 0 {
			logger.Info("ok", "path", o.path)
			continue
		}
		anyDiagnostics = true
		for _, e := range o.result.Errors {
			logger.Warn("diagnostic",
				"path", o.path,
				"start", e.Location.Start,
				"end", e.Location.End,
				"message", e.Message,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s\n", o.path, e.Location.Start, e.Location.End, e.Message)
		}
	}

	if anyDiagnostics {
		return ErrDiagnosticsFound
	}
	return nil
}
