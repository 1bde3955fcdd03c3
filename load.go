package saddle

import "github.com/radbuglet/saddle-go/internal/decoder"

// unknownDefPath is used for every BorrowSite/CallMeta produced by Load,
// since the marker convention carries no source-location payload; a
// collaborator that injects richer markers (e.g. one that also encodes a
// call site) can build a Graph directly with the Push*/Annotate* API
// instead of going through Load.
const unknownDefPath = "<unknown>"

// Load decodes data for directive markers and builds a Graph from the
// resulting record stream. It returns a Malformed error if the scan could
// not be completed, or a NoDirectives error if the scan completed without
// finding a single record.
func Load(data []byte) (*Graph, error) {
	records, err := decoder.Decode(data)
	if err != nil {
		return nil, wrapError(Malformed, err, "failed to decode directives")
	}
	if len(records) == 0 {
		return nil, newError(NoDirectives, "no directives found while scanning the input")
	}

	g := NewGraph()
	for _, rec := range records {
		scopeID := ScopeID(Normalize(rec.Arg1))
		g.AnnotateScope(scopeID, ScopeMeta{Name: rec.Arg1, DefinedAt: ""})

		switch rec.Kind {
		case decoder.DepRef, decoder.DepMut:
			mutability := mutabilityOf(rec.Kind == decoder.DepMut)
			componentID := ComponentID(Normalize(rec.Arg2))
			g.AnnotateComponent(componentID, ComponentMeta{Name: rec.Arg2})
			g.PushAccess(scopeID, componentID, mutability, BorrowSite{
				DefPath:    unknownDefPath,
				Mutability: mutability,
			})

		case decoder.GrantRef, decoder.GrantMut:
			mutability := mutabilityOf(rec.Kind == decoder.GrantMut)
			componentID := ComponentID(Normalize(rec.Arg2))
			g.AnnotateComponent(componentID, ComponentMeta{Name: rec.Arg2})
			g.PushGrant(scopeID, componentID, mutability, BorrowSite{
				DefPath:    unknownDefPath,
				Mutability: mutability,
			})

		case decoder.Call:
			calleeID := ScopeID(Normalize(rec.Arg2))
			g.AnnotateScope(calleeID, ScopeMeta{Name: rec.Arg2, DefinedAt: ""})
			g.PushCallEdge(scopeID, calleeID, CallMeta{DefPath: unknownDefPath})
		}
	}

	return g, nil
}

func mutabilityOf(mutable bool) Mutability {
	if mutable {
		return Mutable
	}
	return Immutable
}
