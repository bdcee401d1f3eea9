// Package tabapi defines the tabcalc.v1.TabService wire contract: request and
// response messages, the JSON codec they travel with, and Connect handler and
// client constructors.
//
// Amounts are carried as decimal strings with two fractional digits. Inputs
// are carried exactly as the user typed them; the server parses them
// leniently, so a blank or malformed field counts as zero.
package tabapi
