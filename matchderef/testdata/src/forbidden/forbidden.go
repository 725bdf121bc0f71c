package forbidden

func describe(five *int) {
	switch *five { // want `Dereferencing in a match expression is discouraged`
	case 5, 6, 7:
	}

	switch *five { //nolint:matchderef // want `Dereferencing in a match expression is discouraged`
	case 1:
	}
}
