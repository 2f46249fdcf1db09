package runner

// Fake records every command and plays back scripted outputs in order. Once
// the script is exhausted it keeps returning the zero Output, which callers
// read as success.
type Fake struct {
	Commands []string
	Outputs  []Output
	Errs     []error
}

func (f *Fake) Run(command string) (Output, error) {
	i := len(f.Commands)
	f.Commands = append(f.Commands, command)
	var out Output
	var err error
	if i < len(f.Outputs) {
		out = f.Outputs[i]
	}
	if i < len(f.Errs) {
		err = f.Errs[i]
	}
	return out, err
}
