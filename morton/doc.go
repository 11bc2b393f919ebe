// Package morton computes 3D Morton (Z-order) codes over a 10-bit-per-axis
// integer coordinate and sorts payloads by Morton key with a 3-pass LSD
// radix sort.
package morton
