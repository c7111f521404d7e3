package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiiranathan/hbs2ts/transform"
)

func newEmitCommand(logger *log.Logger) *cobra.Command {
	var (
		identifiersInScope []string
		typeParams         string
		contextType        string
	)

	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Print the emitted code for one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, args[0], logger, transform.TransformOptions{
				IdentifiersInScope: identifiersInScope,
				TypeParams:         typeParams,
				ContextType:        contextType,
			})
		},
	}

	cmd.Flags().StringSliceVar(&identifiersInScope, "identifier", nil,
		"an identifier treated as locally in scope (repeatable)")
	cmd.Flags().StringVar(&typeParams, "type-params", "", `type-parameter clause, e.g. "<T extends string>"`)
	cmd.Flags().StringVar(&contextType, "context-type", "", "context type expression, defaults to unknown")

	return cmd
}

func runEmit(cmd *cobra.Command, path string, logger *log.Logger, opts transform.TransformOptions) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	res := transform.Transform(string(src), opts)
	for _, e := range res.Errors {
		logger.Warn("diagnostic", "path", path, "start", e.Location.Start, "message", e.Message)
	}

	if res.Result == nil {
		return fmt.Errorf("hbs2ts: %s could not be parsed", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Result.Code)

	if len(res.Errors) > 0 {
		return ErrDiagnosticsFound
	}
	return nil
}
