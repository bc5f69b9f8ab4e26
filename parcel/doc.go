// package parcel provides low-level encoding and decoding helpers to
// construct and parse parcel payloads, the flat byte-stream format
// used to ship structured hardware state between processes.
//
// The provided encoder and decoder are very low level, and do not
// encode any payload semantics. Every field in a parcel occupies a
// multiple of 4 bytes; it is the caller's responsibility to write and
// read fields in the same order on both sides of the transport.
package parcel
