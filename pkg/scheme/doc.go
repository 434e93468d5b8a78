// Package scheme holds the 14 predefined hash-table configurations
// spec.md §6.3 specifies, so the CLI's "--scheme N" flag and the
// sweep harness can both resolve a scheme id to a config.Configuration
// without duplicating the table.
package scheme
