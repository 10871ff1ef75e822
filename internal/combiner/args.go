package combiner

// ArgumentSet names the two source images and the destination file.
type ArgumentSet struct {
	FirstImagePath  string
	SecondImagePath string
	OutputPath      string
}

var argumentRoles = [...]string{
	1: "first image path",
	2: "second image path",
	3: "output path",
}

// FromProcessArguments reads positions 1, 2 and 3 of args. Position 0 is the
// program name, anything after position 3 is ignored. Whether the files exist
// is left to the decoder.
func FromProcessArguments(args []string) (ArgumentSet, error) {
	for pos := 1; pos < len(argumentRoles); pos++ {
		if len(args) <= pos {
			return ArgumentSet{}, missingArgument(pos, argumentRoles[pos])
		}
	}
	return ArgumentSet{
		FirstImagePath:  args[1],
		SecondImagePath: args[2],
		OutputPath:      args[3],
	}, nil
}
