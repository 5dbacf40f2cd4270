// Package utils provides small shared helpers for the CLI layer.
package utils
