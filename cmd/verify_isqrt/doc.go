// Package main provides a program that verifies the integer square root against
// float64 reference values, over a prefix of the uint32 range or over all of it.
package main
