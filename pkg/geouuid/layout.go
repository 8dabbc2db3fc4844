package geouuid

// The bit arrangement of a UUID is described declaratively by a layout:
// an ordered list of interleaved segments, an ordered list of tail
// segments, and a set of reserved marker bits. A single schedule is derived
// from that description, and both pack and unpack walk the same schedule,
// so the two directions cannot drift apart.

// field names one logical payload field of the layout.
type field int

const (
	fieldTimestamp field = iota
	fieldLongitude
	fieldLatitude
	fieldRandom
	numFields
)

// fieldValues holds the unsigned integer value of every payload field.
type fieldValues [numFields]uint64

// segment is one payload field and its width in bits.
type segment struct {
	field field
	width int
}

// reservedBit pins one absolute bit position (0 = most significant of the
// 128) to a constant value written on every encode and skipped on decode.
type reservedBit struct {
	pos int
	set bool
}

// slot maps one payload stream position to the field bit it carries and the
// absolute bit position it occupies.
type slot struct {
	field field
	shift int // bit index within the field value, 0 = least significant
	abs   int // absolute position within the 128 bits, 0 = most significant
}

// layout is the complete declarative description of a 128-bit arrangement.
type layout struct {
	interleaved []segment
	tail        []segment
	reserved    []reservedBit
	unitMillis  int64 // duration of one timestamp unit

	widths   [numFields]int
	schedule []slot
}

// canonical is the one deployed layout: 48-bit millisecond timestamp,
// 25-bit longitude, 24-bit latitude, 25-bit random, with the UUID version
// nibble 0111 at bits 48-51 and variant 10 at bits 64-65. The lineage also
// contains a 32-bit-second/41-bit-random arrangement; nothing in the 128
// bits distinguishes the two, so only this one is ever constructed.
var canonical = mustLayout(layout{
	interleaved: []segment{
		{fieldTimestamp, 48},
		{fieldLongitude, 25},
		{fieldLatitude, 24},
	},
	tail:       []segment{{fieldRandom, 25}},
	unitMillis: 1,
	reserved: []reservedBit{
		{48, false}, {49, true}, {50, true}, {51, true},
		{64, true}, {65, false},
	},
})

// mustLayout derives the schedule and validates the description. Layouts
// are package constants, so a bad one is a programmer error.
func mustLayout(l layout) layout {
	for _, s := range append(append([]segment{}, l.interleaved...), l.tail...) {
		if s.width <= 0 || s.width > 64 {
			panic("geouuid: segment width out of range")
		}
		if l.widths[s.field] != 0 {
			panic("geouuid: duplicate segment field")
		}
		l.widths[s.field] = s.width
	}

	reserved := make(map[int]bool, len(l.reserved))
	for _, rb := range l.reserved {
		if rb.pos < 0 || rb.pos > 127 || reserved[rb.pos] {
			panic("geouuid: invalid reserved bit position")
		}
		reserved[rb.pos] = true
	}

	// Absolute positions available to payload, most significant first.
	abs := make([]int, 0, 128-len(l.reserved))
	for p := 0; p < 128; p++ {
		if !reserved[p] {
			abs = append(abs, p)
		}
	}

	// Round-robin over the interleaved segments, MSB first. A segment
	// narrower than the widest contributes nothing until the round counter
	// enters its width window, which aligns every field's MSB with the
	// widest field's MSB round.
	widest := 0
	for _, s := range l.interleaved {
		if s.width > widest {
			widest = s.width
		}
	}
	sched := make([]slot, 0, len(abs))
	for i := widest - 1; i >= 0; i-- {
		for _, s := range l.interleaved {
			shift := i - (widest - s.width)
			if shift >= 0 {
				sched = append(sched, slot{field: s.field, shift: shift})
			}
		}
	}
	for _, s := range l.tail {
		for i := s.width - 1; i >= 0; i-- {
			sched = append(sched, slot{field: s.field, shift: i})
		}
	}

	if len(sched) != len(abs) {
		panic("geouuid: payload bits do not fill the non-reserved positions")
	}
	for k := range sched {
		sched[k].abs = abs[k]
	}
	l.schedule = sched
	return l
}

// pack maps the field values onto the 128 absolute bit positions and writes
// the reserved marker bits.
func (l layout) pack(vals fieldValues) UUID {
	var u UUID
	for _, rb := range l.reserved {
		if rb.set {
			u[rb.pos/8] |= 1 << (7 - uint(rb.pos)%8)
		}
	}
	for _, s := range l.schedule {
		if vals[s.field]>>uint(s.shift)&1 == 1 {
			u[s.abs/8] |= 1 << (7 - uint(s.abs)%8)
		}
	}
	return u
}

// unpack recovers the field values from a UUID. It reads only the scheduled
// positions, so reserved-bit content never influences the result. The
// random field is recovered bit-for-bit but carries no meaning.
func (l layout) unpack(u UUID) fieldValues {
	var vals fieldValues
	for _, s := range l.schedule {
		if u[s.abs/8]>>(7-uint(s.abs)%8)&1 == 1 {
			vals[s.field] |= 1 << uint(s.shift)
		}
	}
	return vals
}

// mask returns a bit mask of width w.
func mask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(w) - 1
}
