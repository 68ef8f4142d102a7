package rt

import "sync"

func resetHandler() {
	installOnce = sync.Once{}
	handler.Store(nil)
}
