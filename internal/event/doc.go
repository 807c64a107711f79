// Package event delivers messages from background workers to the goroutine
// that owns their target.
//
// Every receiver registers a mailbox under a stable uuid. Workers hold only
// a Sink and the target id; they never touch the receiver's state. The owner
// drains its mailbox on its own goroutine:
//
//	router := event.NewRouter()
//	box, _ := router.Register(doc.ID())
//
//	// worker goroutine
//	_ = router.Submit(doc.ID(), result)
//
//	// owner goroutine
//	box.Drain(func(m event.Message) { handle(m.Payload) })
//
// Submit never blocks. When a mailbox is full the message is dropped and
// ErrQueueFull is returned.
package event
