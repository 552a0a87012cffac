// Package similarity computes a sequence similarity ratio between two
// strings using greedy longest-matching-block decomposition.
//
// The ratio is 2*M/T where M is the total length of matching blocks and T is
// the combined length of both inputs. It is symmetric, 1.0 exactly when the
// inputs are equal, and 0.0 when they share no characters. Lengths are
// counted in runes so multi-byte text compares the same as ASCII.
package similarity
