// Package formfile loads form definitions and field values from TOML files
// and watches value files for changes. It backs the formcheck command.
package formfile
