// Package seeding runs the generate-validate-upload pipeline.
//
// A run for one kind (items or skills):
//   - sends the kind's fixed prompt to the text generator
//   - archives and decodes the raw response as a JSON array
//   - stages every entry with a non-empty string "id" in one batch
//   - commits the batch once
//
// Disqualified entries are logged at WARN and skipped. Decoding and commit
// failures abort the run; nothing is retried.
package seeding
