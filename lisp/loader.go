package lisp

// Load a program into the environment, for its definitions only.
func (l Lisp) Load(data string) error {
	roots, err := l.Read(data)
	if err != nil {
		return err
	}
	for _, def := range roots {
		if _, err := l.EvalExpr(def); err != nil {
			return err
		}
	}
	return nil
}
