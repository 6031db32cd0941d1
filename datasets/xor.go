package datasets

// XOR gets the four sample exclusive-or table.
func XOR() (*Matrix, Labels) {
	return MustFromRows([][]bool{
		{true, false},
		{false, true},
		{true, true},
		{false, false},
	}), Labels{true, true, false, false}
}
