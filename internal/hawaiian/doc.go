// Package hawaiian normalizes Hawaiian song titles and composer names for
// matching across sources with inconsistent orthography.
//
// Songbook scans and typed catalogs disagree on macrons (kahakō), on which
// Unicode code point stands in for the ʻokina, and on punctuation. The
// Normalizer maps all of those renderings onto a single comparison form:
// macrons are stripped, every ʻokina variant is deleted outright, punctuation
// and whitespace runs collapse, and the result is lowercased. Composer names
// additionally expand common abbreviations ("Chas" -> "charles") through a
// static alias table.
//
// Normalization is total and idempotent. Empty or absent input yields the
// empty string rather than an error.
package hawaiian
