// Package contracts defines the interfaces domain packages expose to the
// application assembly.
package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every domain handler; the application registers
// each one on the shared router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
