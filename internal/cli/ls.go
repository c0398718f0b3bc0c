package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/store"
	"github.com/idilsaglam/remotetodo/internal/tui"
)

func newLsCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		group  bool
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Fetch the list once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := app.source()
			if err != nil {
				return err
			}
			st := store.New(store.WithLogger(app.log))
			defer st.Close()

			if err := st.Load(cmd.Context(), src); err != nil {
				return loadError{msg: st.State().Message, err: err}
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(st.Items())
			}
			fmt.Fprintln(out, tui.RenderPlain(st.Items(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print items as JSON")
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}
