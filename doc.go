// Package saddle validates a scoped-borrowing discipline over a compiled
// program: functions or logical regions ("scopes") declare that they
// borrow named abstract resources ("components") immutably or mutably,
// call other scopes, or grant a component so callers holding it are not
// flagged for the call.
//
// Building a graph
//
// A Graph is built by calling its Push*/Annotate* methods, typically via
// Load, which decodes a byte buffer for directive markers and builds the
// graph from the resulting record stream:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    // handle IoFailure
//	}
//	g, err := saddle.Load(data)
//	if err != nil {
//	    // a *saddle.Error of Kind Malformed or NoDirectives
//	}
//
// Validating
//
// Validate runs the cycle check and the potentially-borrowed-set
// propagation over the frozen graph, returning nil on success or a
// *saddle.Error describing every cycle or borrow conflict found:
//
//	if err := g.Validate(); err != nil {
//	    var serr *saddle.Error
//	    if errors.As(err, &serr) {
//	        fmt.Println(serr.Kind, serr.Message)
//	    }
//	}
package saddle
