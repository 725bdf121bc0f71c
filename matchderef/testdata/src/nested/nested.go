package nested

func twice(pp **int) {
	switch **pp { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}

func explicit(pp **int) {
	switch *(*pp) { // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}

func innerOnly(pp **int) {
	switch len([]int{**pp}) {
	case 1:
	}
}
