package fmte

import (
	"io"
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var p *message.Printer

var mx sync.Mutex // Shared mutex across stdout and stderr to ensure ordering across

var normalPrint = true

func init() {
	p = message.NewPrinter(language.English)
}

// Off function turns off print functions within fmte package
func Off() {
	normalPrint = false
}

// Printf is goroutine-safe fmt.Printf for English
func Printf(format string, a ...any) {
	if !normalPrint {
		return
	}
	mx.Lock()
	_, _ = p.Printf(format, a...)
	mx.Unlock()
}

// Println is a goroutine-safe fmt.Println for English
func Println(a ...any) {
	if !normalPrint {
		return
	}
	mx.Lock()
	_, _ = p.Println(a...)
	mx.Unlock()
}

// Fprintf is goroutine-safe fmt.Fprintf for English
func Fprintf(w io.Writer, format string, a ...any) {
	mx.Lock()
	_, _ = p.Fprintf(w, format, a...)
	mx.Unlock()
}

// PrintfErr is goroutine-safe fmt.Printf to StdErr for English
func PrintfErr(format string, a ...any) {
	mx.Lock()
	_, _ = p.Fprintf(os.Stderr, format, a...)
	mx.Unlock()
}
