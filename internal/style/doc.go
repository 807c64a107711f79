// Package style provides styled byte ranges of a document and the theme
// that turns them into terminal styles.
//
// Spans are produced by a syntax parse or by a semantic overlay supplied by
// the caller. Between parses they are shifted through every edit with
// ApplyShape so unaffected spans keep pointing at the right text without
// recomputation. LineStyles cuts the spans of one line out as line-relative
// ranges for layout.
package style
