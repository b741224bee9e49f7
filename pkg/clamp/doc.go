// Package clamp keeps a numeric string inside an inclusive bound while it is
// being typed. Clamp walks the input one digit at a time against the digits of
// the bound's endpoints: digits are emitted unchanged until the prefix proves
// the value would leave the range, at which point the remaining positions are
// frozen to the breached endpoint. Emitted digits never change as more digits
// are appended, so a text field can write the canonical text back on every
// keystroke without moving the caret unexpectedly.
//
// Bounds are validated once by NewBound; Clamp itself is total over digit-only
// input and does no allocation beyond the output text.
package clamp
