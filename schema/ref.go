package schema

// SafeRef rewrites a fragment that carries sibling keys next to $ref into a
// composition-safe form: the reference moves into allOf and the siblings
// stay on the outer fragment. The rewrite also runs in reverse: a fragment
// whose only content is an allOf wrapping a lone reference collapses back to
// the bare reference. A ref-only fragment passes through unchanged, so
// repeated normalization is a no-op.
func SafeRef(fragment *Fragment) *Fragment {
	if fragment == nil {
		return fragment
	}

	if fragment.Ref == "" {
		if inner, ok := loneRef(fragment); ok {
			return inner
		}
		return fragment
	}

	siblings := *fragment
	siblings.Ref = ""
	if siblings.IsEmpty() {
		return fragment
	}

	siblings.AllOf = append([]*Fragment{{Ref: fragment.Ref}}, fragment.AllOf...)
	return &siblings
}

// loneRef reports whether fragment is nothing but an allOf holding a single
// reference, returning that reference member when so.
func loneRef(fragment *Fragment) (*Fragment, bool) {
	if len(fragment.AllOf) != 1 {
		return nil, false
	}
	inner := fragment.AllOf[0]
	if inner == nil || inner.Ref == "" {
		return nil, false
	}

	rest := *inner
	rest.Ref = ""
	outer := *fragment
	outer.AllOf = nil
	if !rest.IsEmpty() || !outer.IsEmpty() {
		return nil, false
	}
	return inner, true
}
