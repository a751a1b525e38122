//go:build !release

// Package log routes tapetovac's diagnostics through the standard logger.
package log

import (
	"fmt"
	"log"
)

const debugPrefix = "[DEBUG] "

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Fatal(v...)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Debug prints v with a [DEBUG] prefix.
func Debug(v ...interface{}) {
	log.Output(2, debugPrefix+fmt.Sprint(v...))
}

// Debugf prints a formatted message with a [DEBUG] prefix.
func Debugf(format string, v ...interface{}) {
	log.Output(2, debugPrefix+fmt.Sprintf(format, v...))
}
