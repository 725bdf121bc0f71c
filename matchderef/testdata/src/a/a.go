package a

import "fmt"

func describe(five *int) {
	switch *five { // want `Dereferencing in a match expression is discouraged`
	case 5, 6, 7:
		fmt.Println("It's 5, 6, or 7!")
	default:
		fmt.Println("It's not 5, 6, or 7!")
	}
}

func parenthesized(p *string) {
	switch (*p) { // want `Dereferencing in a match expression is discouraged`
	case "a":
	}
}

func defaultOnly(p *int) {
	switch *p { // want `Dereferencing in a match expression is discouraged`
	default:
	}
}

func empty(p *int) {
	switch *p { // want `Dereferencing in a match expression is discouraged`
	}
}

func withInit(p *int) {
	switch v := 1; *p + v { // not a dereference at the top level
	case 2:
	}
}

func value(x int) {
	switch x {
	case 5:
	}
}

func boundFirst(p *int) {
	switch x := *p; x {
	case 1:
	}
}

func tagless(p *int) {
	switch {
	case *p > 0:
	}
}

func typeSwitch(p *any) {
	switch (*p).(type) {
	case int:
	}
}

func call(f func() *int) {
	switch *f() { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}

type box struct{ v *int }

func field(b box) {
	switch *b.v { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}

func innerSwitch(p *int, q **int) {
	switch *p { // want `Dereferencing in a match expression is discouraged`
	case 1:
		switch **q { // want `Dereferencing in a match expression is discouraged`
		case 2:
		}
	}
}

func suppressed(p *int) {
	switch *p { //nolint:matchderef // comparing against the pointee on purpose
	case 1:
	}

	//nolint:all
	switch *p {
	case 1:
	}

	//nolint:golint-sl
	switch *p {
	case 1:
	}

	//nolint:othercheck
	switch *p { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}

func trailingDirective(p *int) {
	_ = 1 //nolint:matchderef
	switch *p { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}
