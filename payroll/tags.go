package payroll

// Day-level tags. Spanish, matching the report vocabulary the product uses.
const (
	TagNocturno      = "NOCTURNO"
	TagFestivo       = "FESTIVO"
	TagDomingo       = "DOMINGO"
	TagDiurno        = "DIURNO"
	TagColchon       = "COLCHÓN"
	TagExtra         = "EXTRA"
	TagExtraNocturna = "EXTRA NOCTURNA"
	TagDomFestivo    = "DOMINICAL/FESTIVO"
	TagNoNightPay    = "⚠ NO PAGO NOCTURNO"
)

// tagSet is an insertion-order-preserving set of day tags.
type tagSet struct {
	order []string
	seen  map[string]bool
}

func newTagSet() *tagSet {
	return &tagSet{seen: make(map[string]bool)}
}

func (t *tagSet) add(tag string) {
	if t.seen[tag] {
		return
	}
	t.seen[tag] = true
	t.order = append(t.order, tag)
}

func (t *tagSet) list() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
