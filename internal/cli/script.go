package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortcuts/internal/logger"
	"shortcuts/internal/screen"
	"shortcuts/internal/ui"
)

func (a *app) newScriptCommand() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Drive the interactive view from a key script",
		Long: `Runs the interactive view without a terminal. Keys are read one per line
from file, or stdin when no file is given:

  # comment
  n                 press n
  enter             press a named key (tab, esc, up, ctrl+c, ...)
  type ctrl+t       one key press per character
  repeat j          auto-repeat of j
  release j         key release (ignored by screens)

Every frame is printed followed by a form-feed line. The run ends at the end
of the script or when the last screen closes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			nav := ui.NewNavigator(a.newState(ctx, store))
			out := &screen.WriterRenderer{W: cmd.OutOrStdout(), Width: width, Height: height}
			err = nav.Run(ctx, screen.NewScriptSource(in), out)
			if errors.Is(err, io.EOF) {
				err = nil
			}
			logger.FromContext(ctx).Debug("script finished",
				zap.Bool("running", nav.Running()),
				zap.Int("depth", nav.Depth()),
				zap.Error(err),
			)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "frame width in cells (0 grows to fit)")
	cmd.Flags().IntVar(&height, "height", 24, "frame height in lines (0 grows to fit)")
	return cmd
}
