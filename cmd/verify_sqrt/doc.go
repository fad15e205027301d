// Package main provides a program that checks the float32 square root on edge cases,
// perfect squares and random radicands, and reports the host CPU features that
// affect float32 rounding.
package main
