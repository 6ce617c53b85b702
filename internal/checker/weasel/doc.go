// Package weasel flags vague intensifiers and hedges ("very", "various",
// "is a number of") that weaken a claim's precision. The word list is
// user-configurable; entries are regex fragments combined into a single
// boundary-anchored alternation.
package weasel
