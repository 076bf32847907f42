package components

// Weather is the world state shared by every cell.
// Exactly one instance exists per simulation and only the tick driver mutates it.
type Weather struct {
	Hour      int // hour of day in [0, 25)
	Temp      int // temperature in [-10, 10]
	Direction int // +1 while warming, -1 while cooling
	HourDelay int // ticks between hour changes
	TempDelay int // ticks between temperature steps
	Cycle     int // tick counter, wrapped at 2000
}
