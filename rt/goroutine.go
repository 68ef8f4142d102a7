package rt

// Go runs fn on a new goroutine and returns immediately; nothing ever
// joins it. A panic that fn does not recover terminates the process
// through the installed handler.
func Go(fn func()) {
	go func() {
		defer func() {
			if v := recover(); v != nil {
				Terminate(AsError(v))
			}
		}()
		fn()
	}()
}
