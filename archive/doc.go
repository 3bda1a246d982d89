// Package archive keeps raw model responses in Cloud Storage so a run that
// produced malformed output can be inspected afterwards.
package archive
