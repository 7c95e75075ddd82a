package conf

// DefaultLeetTable returns the conventional leet substitution table:
// each substitution rune maps to the letters it commonly stands for.
func DefaultLeetTable() map[rune][]rune {
	return map[rune][]rune{
		'4': {'a'},
		'@': {'a'},
		'8': {'b'},
		'(': {'c'},
		'{': {'c'},
		'[': {'c'},
		'<': {'c'},
		'3': {'e'},
		'6': {'g'},
		'9': {'g'},
		'#': {'h'},
		'1': {'i', 'l'},
		'!': {'i'},
		'|': {'i', 'l'},
		'0': {'o'},
		'$': {'s'},
		'5': {'s'},
		'+': {'t'},
		'7': {'t'},
		'%': {'x'},
		'2': {'z'},
	}
}
