package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortcuts/internal/logger"
	"shortcuts/internal/shortcut"
)

// maxDescriptionWidth bounds the description column of `list`.
const maxDescriptionWidth = 60

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print shortcuts ranked by lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if store.Len() == 0 {
				fmt.Fprintln(out, "No shortcuts yet. Add one with: shortcuts add <combo> <description>")
				return nil
			}
			fmt.Fprintln(out, renderTable(store))
			return nil
		},
	}
}

func renderTable(store *shortcut.Store) string {
	rows := make([][]string, 0, store.Len())
	for rank, idx := range store.SortedIndexes() {
		sc, _ := store.At(idx)
		rows = append(rows, []string{
			strconv.Itoa(rank + 1),
			sc.KeyCombo,
			truncate.StringWithTail(sc.Description, maxDescriptionWidth, "…"),
			strconv.FormatUint(uint64(sc.LookupCount), 10),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "SHORTCUT", "DESCRIPTION", "COUNT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func (a *app) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <combo> <description...>",
		Short: "Add a shortcut",
		Example: `  shortcuts add ctrl+shift+t reopen closed tab
  shortcuts add "g g" jump to first line`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			combo := strings.TrimSpace(args[0])
			desc := strings.TrimSpace(strings.Join(args[1:], " "))
			if combo == "" || desc == "" {
				return fmt.Errorf("combo and description must not be empty")
			}

			ctx := cmd.Context()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			sc := shortcut.New(combo, desc)
			store.Add(sc)
			if err := store.Save(ctx); err != nil {
				return err
			}
			logger.FromContext(ctx).Info("shortcut added", zap.String("combo", combo))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", sc)
			return nil
		},
	}
}

func (a *app) newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <rank>",
		Short: "Print a shortcut and count the lookup",
		Long:  "Looks up the shortcut at the given rank from `shortcuts list` and raises its count by lookup.increment.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			idx, err := rankIndex(store, args[0])
			if err != nil {
				return err
			}
			store.IncrementLookupCount(idx, a.cfg.Lookup.Increment)
			if err := store.Save(ctx); err != nil {
				return err
			}
			sc, _ := store.At(idx)
			logger.FromContext(ctx).Info("shortcut looked up",
				zap.String("combo", sc.KeyCombo),
				zap.Uint("count", sc.LookupCount),
			)
			fmt.Fprintln(cmd.OutOrStdout(), sc)
			return nil
		},
	}
}

func (a *app) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <rank>",
		Aliases: []string{"rm"},
		Short:   "Remove a shortcut",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			idx, err := rankIndex(store, args[0])
			if err != nil {
				return err
			}
			sc, _ := store.RemoveAt(idx)
			if err := store.Save(ctx); err != nil {
				return err
			}
			logger.FromContext(ctx).Info("shortcut removed", zap.String("combo", sc.KeyCombo))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", sc)
			return nil
		},
	}
}

// rankIndex turns a 1-based display rank into a storage index.
func rankIndex(store *shortcut.Store, arg string) (int, error) {
	n := store.Len()
	if n == 0 {
		return 0, fmt.Errorf("no shortcuts stored")
	}
	rank, err := strconv.Atoi(arg)
	if err != nil || rank < 1 || rank > n {
		return 0, fmt.Errorf("invalid rank %q: want a number from 1 to %d", arg, n)
	}
	return store.SortedIndexes()[rank-1], nil
}
