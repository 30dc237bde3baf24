// Package utils provides a collection of helper functions and utilities for common tasks,
// such as file handling, filename sanitizing, and content type detection.
package utils
