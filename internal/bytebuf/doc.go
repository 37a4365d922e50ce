// Package bytebuf owns the variable-length binary container used across binctl.
//
// A Buffer is an ordered, resizable sequence of bytes that also serves as:
// - a hex codec (FromHex / Hex)
// - a big-endian unsigned integer view of up to 8 bytes (U16, U32, U64)
// - a bit-addressable array (Bit, SetBit, ResetBit, WriteBit)
// - a fixed-width big-endian counter (Increment, Decrement)
//
// Buffers are not safe for concurrent mutation; callers serialize access.
package bytebuf
