package jumper

// Effect is an active timed power-up.
type Effect struct {
	Kind    PowerKind
	UntilMs int64 // Clock value at which the effect expires
}

// Effects is the set of active effects, at most one per kind.
type Effects []Effect

// Apply starts an effect or restarts its timer. Durations never stack.
func (e *Effects) Apply(kind PowerKind, now, durationMs int64) {
	for i := range *e {
		if (*e)[i].Kind == kind {
			(*e)[i].UntilMs = now + durationMs
			return
		}
	}
	*e = append(*e, Effect{Kind: kind, UntilMs: now + durationMs})
}

// Expire removes effects whose time is up and returns their kinds.
func (e *Effects) Expire(now int64) []PowerKind {
	var expired []PowerKind
	active := (*e)[:0]
	for _, eff := range *e {
		if eff.UntilMs <= now {
			expired = append(expired, eff.Kind)
		} else {
			active = append(active, eff)
		}
	}
	*e = active
	return expired
}

// Has reports whether the effect is active.
func (e Effects) Has(kind PowerKind) bool {
	for _, eff := range e {
		if eff.Kind == kind {
			return true
		}
	}
	return false
}

// Remaining returns milliseconds left on an effect, or 0 if inactive.
func (e Effects) Remaining(kind PowerKind, now int64) int64 {
	for _, eff := range e {
		if eff.Kind == kind {
			if left := eff.UntilMs - now; left > 0 {
				return left
			}
			return 0
		}
	}
	return 0
}
