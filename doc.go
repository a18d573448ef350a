// Package qvortex implements the Qvortex-Lite hash primitive: a
// 256-entry data-dependent S-box derived from a SHAKE-128 XOF, mixed
// into an 8-word ARX compression function, driven by a Merkle–Damgård
// streaming framework over 64-byte blocks. Digests are fixed at 32
// bytes.
//
// Qvortex makes no cryptographic security claim. It is a compression
// and mixing exercise, not a vetted MAC or general-purpose hash.
package qvortex
