// Package stream implements byte-order-aware primitive decoding and
// encoding over forward-only streams. Multi-byte primitives are composed
// from single-byte transfers through the order codec, so the arrangement is
// explicit rather than delegated to the source's native multi-byte reads.
//
// There is no seek or peek here: when a source runs out partway through a
// primitive the operation fails and no rollback is possible.
package stream
