// Package dupword flags the same word repeated in immediate succession,
// case-insensitively. The batch scan streams word by word; live highlighting
// uses a single self-referential pattern. Both use the same separator class,
// so they agree on every input.
package dupword
