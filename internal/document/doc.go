// Package document holds the mutable state of one open text document.
//
// A Document owns the text buffer, the syntax result of the latest parse,
// an optional semantic style overlay, and two line caches derived from
// them: per-line style spans and per-line measured layouts. Every edit
// flows through the Document so that, in order, the style spans are
// shifted through the applied delta, both caches are cleared, and a
// background reparse is scheduled.
//
// # Ownership
//
// A Document is confined to the goroutine that owns it; none of its
// methods lock. The only work done elsewhere is parsing: each edit starts a
// goroutine holding a snapshot of the text and the buffer's atomic revision
// mirror. A worker delivers its result as a SyntaxUpdated message through
// an event.Sink addressed by the document's ID, and only if the revision it
// parsed is still current. The owner hands delivered messages back with
// HandleMessage, which checks the revision again before adopting them.
//
//	router := event.NewRouter()
//	doc := document.New(document.File("main.go"), router)
//	mbox, _ := router.Register(doc.ID())
//
//	doc.LoadContent(src)
//	c := cursor.New(cursor.Normal{})
//	doc.MoveCursor(c, movement.Of(movement.WordForward), 1, false)
//
//	for msg := range mbox.C() {
//		doc.HandleMessage(msg)
//	}
//
// # Motions
//
// MoveOffset resolves an abstract movement to a new offset and an optional
// horizontal hint without side effects. MoveCursor applies it to a cursor
// according to its mode, running a pending motion-mode operator when one
// is waiting.
package document
