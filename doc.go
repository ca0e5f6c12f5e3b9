// Package tradecal provides a single-year trading calendar: for each trading day it
// records the underlying that was traded, the profit and the number of trades, and
// summarizes every month.
//
// The core functionalities include:
//   - Date classification: a Calendar knows the market holidays of its year and
//     tells whether a day is a holiday, a weekend, in the future or an active
//     trading day.
//   - Record storage: a Store keeps one Record per date, fields are edited one at
//     a time and the raw text of each field is preserved.
//   - Monthly statistics: total profit, days without trades, profit and loss days,
//     always recomputed from the records of the active days.
//   - Data persistence: the records are encoded to and decoded from a flat CSV
//     text, the same for exports and for the local save.
//
// This package serves as the foundational logic for the `tcal` command-line tool.
package tradecal
