// Package passive flags passive-voice constructions: a "to be" verb
// directly followed by an irregular past participle, with only whitespace
// or quote characters in between.
package passive
