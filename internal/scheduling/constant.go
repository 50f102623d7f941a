package scheduling

// Fixed business clock times, in the location of the reference instant.
const (
	urgentCutoffHour   = 22
	urgentFallbackHour = 8

	highCutoffHour   = 17
	highFallbackHour = 10

	mediumCheckoutHour = 14
	mediumFallbackHour = 12

	lowSlotHour = 10
)

const (
	// LookaheadDays bounds the vacant-day search for low urgency tasks.
	LookaheadDays = 30

	// lowFallbackDays is used when the whole lookahead horizon is booked.
	lowFallbackDays = 7
)
