package allowed

func describe(five *int) {
	switch *five {
	case 5, 6, 7:
	default:
	}
}
