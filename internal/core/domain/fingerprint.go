package domain

// Fingerprint is an opaque identity derived from a computation and its
// arguments. Two fingerprints are equal iff the computation and arguments are
// considered identical; no structure beyond equality is relied upon.
type Fingerprint string
