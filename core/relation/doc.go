// Package relation tracks inter-field relationships declared by rule strings.
//
// Four kinds of relationships are recorded while rules are parsed:
//
//   - same:<target>      the declaring field mirrors target
//   - different:<target> the declaring field must differ from target
//   - enable:<source>    the declaring field is gated by source
//   - clear:<target>     target is reset when the declaring field moves away from it
//
// The [Tracker] turns one field's outcome into a [Cascade]: dependents and
// clear targets to reset, gated fields to enable or disable.
//
//	table := relation.NewTable()
//	table.AddSame("password", "confirm")
//	table.AddEnable("coupon", "coupon_code")
//
//	tracker := relation.NewTracker(table)
//	c := tracker.OnFieldChanged("password", true)
//	// c.Clear == []string{"confirm"}
package relation
