package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/smartwalle/xlist"
)

func main() {
	var logger = hclog.New(&hclog.LoggerOptions{
		Name:   "xlist",
		Level:  hclog.Trace,
		Output: os.Stderr,
	})

	var l = xlist.New[string](xlist.WithLogger(logger))
	l.PushBack("Goodbye, World!")
	l.PushFront("Hello, World!")
	l.PushFront("Woah!")

	var removed, err = l.Front()
	if err != nil {
		logger.Error("front", "error", err)
		os.Exit(1)
	}
	l.PopFront()
	l.PushBack("Hello, Again!!")

	if l.Len() != 3 {
		logger.Error("unexpected size", "want", 3, "got", l.Len())
		os.Exit(1)
	}
	if removed != "Woah!" {
		logger.Error("unexpected removed element", "want", "Woah!", "got", removed)
		os.Exit(1)
	}

	for c, end := l.Begin(), l.End(); !c.Equal(end); c.Next() {
		var v, _ = c.Value()
		fmt.Println(v)
	}
	fmt.Println()

	for c, end := l.RBegin(), l.REnd(); !c.Equal(end); c.Next() {
		var v, _ = c.Value()
		fmt.Println(v)
	}
	fmt.Println()

	l.Reverse()
	for v := range l.All() {
		fmt.Println(v)
	}

	if err = l.Check(); err != nil {
		logger.Error("check", "error", err)
		os.Exit(1)
	}
	if err = l.Release(); err != nil {
		logger.Error("release", "error", err)
		os.Exit(1)
	}
}
