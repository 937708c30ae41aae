package xlist_test

import (
	"fmt"

	"github.com/smartwalle/xlist"
)

func Example() {
	var l = xlist.New[string]()
	l.PushBack("Goodbye, World!")
	l.PushFront("Hello, World!")
	l.PushFront("Woah!")

	var front, _ = l.Front()
	fmt.Println(front)

	l.PopFront()
	l.PushBack("Hello, Again!!")
	fmt.Println(l.Len())

	for v := range l.All() {
		fmt.Println(v)
	}
	for v := range l.Backward() {
		fmt.Println(v)
	}

	l.Reverse()
	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// Woah!
	// 3
	// Hello, World!
	// Goodbye, World!
	// Hello, Again!!
	// Hello, Again!!
	// Goodbye, World!
	// Hello, World!
	// Hello, Again!!
	// Goodbye, World!
	// Hello, World!
}

func ExampleCursor() {
	var l = xlist.New[int]()
	for i := 1; i <= 3; i++ {
		l.PushBack(i)
	}

	var c = l.Begin()
	c.Next()
	fmt.Println(c.Value())

	// turning around steps back onto the node the cursor came from
	c.Prev()
	fmt.Println(c.Value())

	c.Prev()
	fmt.Println(c.Value())

	// Output:
	// 2 <nil>
	// 1 <nil>
	// 0 xlist: null dereference
}
