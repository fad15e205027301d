// Package main provides a small command that prints square roots of its arguments.
// Float arguments go through the Newton-Raphson float32 root, with -int the arguments
// are parsed as uint32 and get their exact integer square root.
package main
