package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/formfile"
	"github.com/dmitrymomot/formrules/core/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate changed fields whenever the values file is saved",
	Long: `Validates the values file once as on submit, then watches it. On every
save only the fields whose values changed are evaluated, in the order they
would be on blur, and the result is printed. Cascades such as clearing a
confirmation field after its password changed show up in each result.

Stops on interrupt.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("values", "", "field values file to watch")
	_ = watchCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, form, log, err := loadForm(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("values")

	w := &valuesWatcher{form: form, path: path, out: cmd, log: log}
	if err := w.initial(); err != nil {
		return err
	}
	return formfile.Watch(ctx, path, w.reload)
}

// valuesWatcher keeps the last seen values so each save only evaluates
// what changed.
type valuesWatcher struct {
	form *formrules.Form
	path string
	out  *cobra.Command
	log  *slog.Logger
	prev map[string]string
}

func (w *valuesWatcher) initial() error {
	values, err := formfile.LoadValues(w.path)
	if err != nil {
		return err
	}
	w.prev = values
	return w.print(report{
		Trigger: string(formrules.TriggerSubmit),
		Result:  w.form.Submit(formrules.Values(values)),
	})
}

func (w *valuesWatcher) reload() {
	values, err := formfile.LoadValues(w.path)
	if err != nil {
		// Editors may save partial files; the next write retries.
		w.log.Warn("failed to reload values", logger.Path(w.path), logger.Error(err))
		return
	}

	changed := formfile.Changed(w.prev, values)
	w.prev = values
	if len(changed) == 0 {
		return
	}
	w.log.Debug("values changed", logger.Event("write"), logger.Path(w.path), logger.Fields(changed))

	res := w.form.Validate(formrules.Values(values), false, changed...)
	if err := w.print(report{Trigger: string(w.form.ValidateOn()), Fields: changed, Result: res}); err != nil {
		w.log.Warn("failed to print report", logger.Error(err))
	}
}

func (w *valuesWatcher) print(r report) error {
	r.Time = time.Now().UTC()
	r.Errors = w.form.Errors()
	return printReport(w.out.OutOrStdout(), r)
}
