package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules"
)

// errFormInvalid makes the command exit non-zero after printing the result.
var errFormInvalid = errors.New("form is invalid")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate values once and print the result",
	Long: `Validates the values file (or the definition's [values] table) and prints
the result as JSON. Without --field every field is evaluated as on submit;
with --field only the named fields are evaluated, as on blur or keyup.

Exits with status 1 when the form is not valid.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("values", "", "field values file (default: [values] in the form file)")
	checkCmd.Flags().StringSlice("field", nil, "validate only these fields")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	def, form, _, err := loadForm(cmd)
	if err != nil {
		return err
	}
	values, err := loadValues(cmd, def)
	if err != nil {
		return err
	}
	fields, _ := cmd.Flags().GetStringSlice("field")

	in := formrules.Values(values)
	r := report{Trigger: string(formrules.TriggerSubmit), Time: time.Now().UTC()}
	if len(fields) > 0 {
		r.Trigger = string(form.ValidateOn())
		r.Fields = fields
		r.Result = form.Validate(in, false, fields...)
	} else {
		r.Result = form.Submit(in)
	}
	r.Errors = form.Errors()

	if err := printReport(cmd.OutOrStdout(), r); err != nil {
		return err
	}
	if !r.Result.FormValid {
		return errFormInvalid
	}
	return nil
}
