package buffer

// Style is the visual treatment an annotation rule applies to its matches.
// Color values are terminal color names or hex strings understood by the
// rendering layer.
type Style struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Underline  bool   `json:"underline,omitempty"`
}

// AnnotationRule flags every match of Pattern with Style and Tooltip.
type AnnotationRule struct {
	Pattern Pattern
	Style   Style
	Tooltip string
}

// RuleID is a stable handle for a registered annotation rule. Removal goes
// through the handle, never through value equality of regenerated patterns.
type RuleID int

// Annotation is one evaluated match of a registered rule.
type Annotation struct {
	Span
	Style   Style
	Tooltip string
}

// AddRule registers r and returns its handle.
func (b *Buffer) AddRule(r AnnotationRule) RuleID {
	b.nextID++
	id := b.nextID
	b.rules[id] = r
	b.order = append(b.order, id)
	return id
}

// RemoveRule unregisters the rule behind id. It reports whether the rule was
// present; removing an unknown handle is a no-op.
func (b *Buffer) RemoveRule(id RuleID) bool {
	if _, ok := b.rules[id]; !ok {
		return false
	}
	delete(b.rules, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// RuleIDs returns the handles of all registered rules in registration order.
func (b *Buffer) RuleIDs() []RuleID {
	out := make([]RuleID, len(b.order))
	copy(out, b.order)
	return out
}

// AnnotationsIn evaluates every registered rule over [start, end) and returns
// the resulting annotations. Rules are evaluated in registration order; when
// spans from different rules overlap, the earlier-registered rule wins and
// the overlapping later span is dropped.
func (b *Buffer) AnnotationsIn(start, end int) []Annotation {
	start, end = b.Range(start, end)

	var anns []Annotation
	for _, id := range b.order {
		rule := b.rules[id]
		for _, span := range b.FindAll(rule.Pattern, start, end) {
			if overlapsAny(anns, span) {
				continue
			}
			anns = append(anns, Annotation{Span: span, Style: rule.Style, Tooltip: rule.Tooltip})
		}
	}
	sortAnnotations(anns)
	return anns
}

// AnnotationAt returns the annotation covering off, if any.
func (b *Buffer) AnnotationAt(off int) (Annotation, bool) {
	for _, ann := range b.AnnotationsIn(0, b.Len()) {
		if off >= ann.Start && off < ann.End {
			return ann, true
		}
	}
	return Annotation{}, false
}

func overlapsAny(anns []Annotation, s Span) bool {
	for _, a := range anns {
		if s.Start < a.End && a.Start < s.End {
			return true
		}
	}
	return false
}

func sortAnnotations(anns []Annotation) {
	// insertion sort; annotation counts are small
	for i := 1; i < len(anns); i++ {
		for j := i; j > 0 && anns[j].Start < anns[j-1].Start; j-- {
			anns[j], anns[j-1] = anns[j-1], anns[j]
		}
	}
}
